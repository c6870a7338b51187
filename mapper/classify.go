package mapper

import (
	"regexp"
	"strings"

	"github.com/benkelly/easyznab/categories"
	"github.com/benkelly/easyznab/easynews"
)

var (
	episodePattern = regexp.MustCompile(`(?i)\bS\d{1,2}[ ._-]?E\d{1,3}\b|\b\d{1,2}x\d{2}\b`)
	dailyPattern   = regexp.MustCompile(`\b(19|20)\d{2}[ ._-]\d{2}[ ._-]\d{2}\b`)
	uhdPattern     = regexp.MustCompile(`(?i)\b(2160p|4k|uhd)\b`)
	hdPattern      = regexp.MustCompile(`(?i)\b(720p|1080p|1080i)\b`)
)

// Classify picks the category of a result from its groups, then its file extension.
// Results that match neither are Other.
func Classify(r easynews.Result) categories.Category {
	for _, tags := range [][]string{r.Groups, r.Tags} {
		for _, tag := range tags {
			if cat, ok := categories.ForGroup(tag); ok {
				return cat
			}
		}
	}

	cat, class := categories.ForExtension(r.Extension)
	switch class {
	case categories.Direct:
		return cat
	case categories.Video:
		name := r.Filename
		if name == "" {
			name = r.Subject
		}
		return classifyVideo(name)
	}
	return categories.CategoryOther
}

// classifyVideo tells episodes from movies by the release name and grades the resolution.
func classifyVideo(name string) categories.Category {
	name = strings.ReplaceAll(name, "_", ".")
	tv := episodePattern.MatchString(name) || dailyPattern.MatchString(name)
	switch {
	case uhdPattern.MatchString(name):
		if tv {
			return categories.CategoryTVUHD
		}
		return categories.CategoryMoviesUHD
	case hdPattern.MatchString(name):
		if tv {
			return categories.CategoryTVHD
		}
		return categories.CategoryMoviesHD
	}
	if tv {
		return categories.CategoryTVSD
	}
	return categories.CategoryMoviesSD
}
