package annotation

import "github.com/Kellan-Anderson/Vision-Media/internal/annotation/model"

// ResolveImage picks the one image shown for a matching page: the first
// partial match, else the first full match, else nil.
func ResolveImage(page model.PageMatch) *string {
	if len(page.PartialMatchingImages) > 0 {
		url := page.PartialMatchingImages[0].URL
		return &url
	}
	if len(page.FullMatchingImages) > 0 {
		url := page.FullMatchingImages[0].URL
		return &url
	}
	return nil
}
