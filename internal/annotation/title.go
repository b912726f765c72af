package annotation

import "strings"

var boldTags = strings.NewReplacer("<b>", "", "</b>", "")

// SanitizeTitle strips <b> and </b> from a page title. Nothing else is
// touched; this is not an HTML sanitizer.
func SanitizeTitle(title string) string {
	// Repeat until stable so "<<b>b>" cannot leave a tag behind.
	for strings.Contains(title, "<b>") || strings.Contains(title, "</b>") {
		title = boldTags.Replace(title)
	}
	return title
}
