package indexer

import (
	"time"

	"github.com/benkelly/easyznab/categories"
	"github.com/benkelly/easyznab/mapper"
	"github.com/benkelly/easyznab/newznab"
)

const probeLink = "https://members.easynews.com/dummy.nzb"

// probeFeed is the fixed answer to a search without terms.
// Indexer managers send those to check the connection, so Easynews isn't asked.
func (ix *Indexer) probeFeed() *newznab.Feed {
	return &newznab.Feed{
		Info: ix.info,
		Items: []newznab.Item{{
			Title:       "Easynews test item",
			GUID:        mapper.GUID(probeLink),
			Link:        probeLink,
			Description: "Placeholder result for indexer tests",
			Category:    categories.CategoryMovies,
			PublishDate: time.Date(2025, time.March, 25, 12, 0, 0, 0, time.UTC),
			Size:        1048576,
		}},
		Total: 1,
	}
}
