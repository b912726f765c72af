// Package annotation turns a stored vision analysis into the view model the
// image page renders: score bars, filtered web entities and one image per
// matching page.
package annotation

import "github.com/Kellan-Anderson/Vision-Media/internal/annotation/model"

// Transform builds a fresh ViewModel from result. It never mutates result
// and never fails: missing optional data becomes nil or an empty slice.
func Transform(result model.AnnotationResult) model.ViewModel {
	web := result.WebDetection

	// maxScore must include the entities FilterEntities is about to drop.
	maxScore := MaxScore(web.WebEntities)

	return model.ViewModel{
		BestGuess:       bestGuess(web.BestGuessLabels),
		LabelRows:       NormalizeLabels(result.LabelAnnotations),
		EntityRows:      NormalizeEntities(FilterEntities(web.WebEntities), maxScore),
		VisuallySimilar: copyRefs(web.VisuallySimilarImages),
		PartialMatches:  copyRefs(web.PartialMatchingImages),
		PageMatches:     pageMatches(web.PagesWithMatchingImages),
	}
}

func bestGuess(labels []model.BestGuessLabel) *string {
	if len(labels) == 0 {
		return nil
	}
	label := labels[0].Label
	return &label
}

func pageMatches(pages []model.PageMatch) []model.PageMatchRow {
	rows := make([]model.PageMatchRow, 0, len(pages))
	for _, p := range pages {
		rows = append(rows, model.PageMatchRow{
			Title:    SanitizeTitle(p.PageTitle),
			PageURL:  p.URL,
			ImageURL: ResolveImage(p),
		})
	}
	return rows
}

func copyRefs(refs []model.ImageRef) []model.ImageRef {
	out := make([]model.ImageRef, len(refs))
	copy(out, refs)
	return out
}
