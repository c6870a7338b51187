package indexer

import (
	log "github.com/sirupsen/logrus"
	releaseinfo "github.com/sp0x/mediareleaseinfo"

	"github.com/benkelly/easyznab/newznab"
)

// SeriesMatcher tells if a release title belongs to a series.
type SeriesMatcher func(series, title string) bool

// MatchesSeries parses the release name and compares its series title.
// Titles that can't be parsed don't match.
func MatchesSeries(series, title string) bool {
	info, err := releaseinfo.Parse(title)
	if err != nil {
		log.
			WithFields(log.Fields{"title": title}).
			WithError(err).
			Debug("Failed to parse show title")
		return false
	}
	return info != nil && info.SeriesTitleInfo.Equal(series)
}

func (ix *Indexer) filterSeries(items []newznab.Item, req newznab.Request) []newznab.Item {
	tv, ok := req.(*newznab.TVSearchRequest)
	if !ok {
		return items
	}
	series := tv.Series
	if series == "" {
		series = tv.Query
	}
	if series == "" {
		return items
	}
	filtered := items[:0:0]
	for _, item := range items {
		if !ix.seriesMatch(series, item.Title) {
			ix.logger.
				WithFields(log.Fields{"title": item.Title, "expected": series}).
				Debug("Series search skipping non-matching series")
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
