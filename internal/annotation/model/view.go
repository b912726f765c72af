package model

type LabelRow struct {
	Description string  `json:"description"`
	Percent     float64 `json:"percent"`
}

type EntityRow struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Percent     float64 `json:"percent"`
}

type PageMatchRow struct {
	Title    string  `json:"title"`
	PageURL  string  `json:"pageUrl"`
	ImageURL *string `json:"imageUrl"`
}

// ViewModel is the render-ready form of an AnnotationResult. Empty slices
// mean the section has nothing to show.
type ViewModel struct {
	BestGuess       *string        `json:"bestGuess"`
	LabelRows       []LabelRow     `json:"labelRows"`
	EntityRows      []EntityRow    `json:"entityRows"`
	VisuallySimilar []ImageRef     `json:"visuallySimilar"`
	PartialMatches  []ImageRef     `json:"partialMatches"`
	PageMatches     []PageMatchRow `json:"pageMatches"`
}
