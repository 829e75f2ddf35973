package analysis

import "strings"

const titleDelimiters = ";,:|"

// SummarizeTitle cuts the title at the first delimiter and trims the rest.
func SummarizeTitle(title string) string {
	if idx := strings.IndexAny(title, titleDelimiters); idx >= 0 {
		title = title[:idx]
	}
	return strings.TrimSpace(title)
}
