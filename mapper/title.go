package mapper

import (
	"strings"
)

const noTitle = "No title"

func isHexToken(s string) bool {
	if len(s) < 8 {
		return false
	}
	for _, c := range strings.ToLower(s) {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false
		}
	}
	return true
}

// TidyTitle turns an Easynews subject line into a release title.
// The quoted file name wins, then a parenthesized release name. Dots and underscores become spaces.
func TidyTitle(subject string) string {
	title := subject
	parts := strings.Fields(title)
	if len(parts) > 1 && isHexToken(parts[0]) {
		title = strings.Join(parts[1:], " ")
	}

	if first := strings.Index(title, `"`); first >= 0 {
		if second := strings.Index(title[first+1:], `"`); second > 0 {
			title = title[first+1 : first+1+second]
		}
	} else if idx := strings.Index(title, "("); idx >= 0 && len(title)-idx > 10 {
		title = strings.TrimSuffix(title[idx+1:], ")")
	}

	title = strings.NewReplacer(".", " ", "_", " ").Replace(title)
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return noTitle
	}
	return title
}
