package model

// LabelAnnotation is a label classification with a probability score in [0,1].
type LabelAnnotation struct {
	MID         string  `json:"mid,omitempty"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Topicality  float64 `json:"topicality,omitempty"`
}

// WebEntity is an entity found by reverse image search. Score is a relative
// magnitude and is not bounded by 1.
type WebEntity struct {
	EntityID    string  `json:"entityId,omitempty"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type ImageRef struct {
	URL string `json:"url"`
}

// PageMatch is a web page that contains images matching the analysed one.
// PageTitle may carry inline <b> markup.
type PageMatch struct {
	URL                   string     `json:"url"`
	PageTitle             string     `json:"pageTitle"`
	PartialMatchingImages []ImageRef `json:"partialMatchingImages,omitempty"`
	FullMatchingImages    []ImageRef `json:"fullMatchingImages,omitempty"`
}

type BestGuessLabel struct {
	Label        string `json:"label"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type WebDetection struct {
	BestGuessLabels         []BestGuessLabel `json:"bestGuessLabels,omitempty"`
	WebEntities             []WebEntity      `json:"webEntities"`
	VisuallySimilarImages   []ImageRef       `json:"visuallySimilarImages"`
	PartialMatchingImages   []ImageRef       `json:"partialMatchingImages"`
	PagesWithMatchingImages []PageMatch      `json:"pagesWithMatchingImages"`
}

// AnnotationResult is the vision analysis stored for one image.
type AnnotationResult struct {
	LabelAnnotations []LabelAnnotation `json:"labelAnnotations"`
	WebDetection     WebDetection      `json:"webDetection"`
}
