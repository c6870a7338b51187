package indexer

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/benkelly/easyznab/categories"
	"github.com/benkelly/easyznab/newznab"
	"github.com/benkelly/easyznab/translate"
)

// Search runs one newznab search against Easynews and builds the result feed.
func (ix *Indexer) Search(ctx context.Context, req newznab.Request) (*newznab.Feed, error) {
	if req.Kind() == newznab.KindCaps {
		return nil, newznab.IncorrectParameter("t", "caps is not a search function")
	}
	base := req.Base()
	limit := ix.limit(base.Limit)
	logger := ix.logger.WithFields(log.Fields{"t": req.Kind(), "offset": base.Offset, "limit": limit})

	if ix.enricher != nil {
		if err := ix.enrich(ctx, req); err != nil {
			logger.WithError(err).Warn("Couldn't resolve the ids of the request, searching without them")
		}
	} else if tv, ok := req.(*newznab.TVSearchRequest); ok && tv.Query == "" && tv.HasIDs() {
		return nil, newznab.MissingParameter("q", "id lookups are turned off, the show has to be named")
	}

	q, err := ix.translator.Translate(req)
	if errors.Is(err, translate.ErrProbe) {
		logger.Debug("Search without terms, answering with the test feed")
		return ix.probeFeed(), nil
	}
	if err != nil {
		return nil, err
	}
	logger = logger.WithFields(log.Fields{"terms": q.Terms, "page": q.Page + 1})
	if q.Truncated {
		logger.
			WithFields(log.Fields{"skip": q.Skip, "pageSize": q.PageSize}).
			Info("Offset isn't aligned to the page size, the window ends with the page")
	}

	results, err := ix.fetcher.Fetch(ctx, q, ix.creds)
	if err != nil {
		return nil, err
	}
	if q.Skip >= len(results) {
		results = nil
	} else {
		results = results[q.Skip:]
	}

	items := ix.mapper.Map(results)
	items = filterCategories(items, base.Categories)
	if ix.seriesFilter {
		items = ix.filterSeries(items, req)
	}
	if len(items) > limit {
		items = items[:limit]
	}
	logger.WithField("items", len(items)).Debug("Search done")

	return &newznab.Feed{
		Info:   ix.info,
		Items:  items,
		Offset: base.Offset,
		Total:  base.Offset + len(items),
	}, nil
}

// limit clamps the requested limit to a page; zero asks for the default.
func (ix *Indexer) limit(requested int) int {
	most := ix.caps.Limits.Max
	if requested <= 0 || requested > most {
		return most
	}
	return requested
}

// filterCategories keeps the items in one of the requested categories or their parents.
// Unknown category ids are ignored, and if none is known nothing is dropped.
func filterCategories(items []newznab.Item, ids []int) []newznab.Item {
	requested := categories.AllCategories.Subset(ids...)
	if requested.Len() == 0 {
		return items
	}
	filtered := items[:0:0]
	for _, item := range items {
		if requested.Matches(item.Category) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// enrich runs the id lookup, which calls services without timeouts of their own, under the enrich timeout.
func (ix *Indexer) enrich(ctx context.Context, req newznab.Request) error {
	ctx, cancel := context.WithTimeout(ctx, ix.enrichWait)
	defer cancel()
	return ix.enricher.Enrich(ctx, req)
}
