package indexer

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/benkelly/easyznab/categories"
	"github.com/benkelly/easyznab/easynews"
	"github.com/benkelly/easyznab/mapper"
	"github.com/benkelly/easyznab/newznab"
	"github.com/benkelly/easyznab/translate"
)

//go:generate mockgen -destination=mocks/mock_fetcher.go -package=mocks . Fetcher
type Fetcher interface {
	Fetch(ctx context.Context, q easynews.Query, creds easynews.Credentials) ([]easynews.Result, error)
}

//go:generate mockgen -destination=mocks/mock_enricher.go -package=mocks . Enricher
type Enricher interface {
	Enrich(ctx context.Context, req newznab.Request) error
}

// Options configure an Indexer.
type Options struct {
	PageSize    int
	Credentials easynews.Credentials
	// Enricher resolves external ids, nil turns the lookups off.
	Enricher Enricher
	// EnrichTimeout bounds the id lookups, DefaultEnrichTimeout when zero.
	EnrichTimeout time.Duration
	// SeriesFilter drops tv search results of other shows.
	SeriesFilter bool
	// BaseURL resolves relative download references.
	BaseURL string
	Version string
}

const DefaultEnrichTimeout = 10 * time.Second

// Indexer answers newznab searches from Easynews.
type Indexer struct {
	fetcher      Fetcher
	enricher     Enricher
	enrichWait   time.Duration
	translator   *translate.Translator
	mapper       *mapper.Mapper
	creds        easynews.Credentials
	seriesFilter bool
	seriesMatch  SeriesMatcher
	caps         newznab.Capabilities
	info         newznab.Info
	logger       *log.Entry
}

func New(fetcher Fetcher, opts Options) (*Indexer, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("an easynews fetcher is required")
	}
	m, err := mapper.New(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	tr := translate.New(opts.PageSize)
	ix := &Indexer{
		fetcher:      fetcher,
		enricher:     opts.Enricher,
		enrichWait:   opts.EnrichTimeout,
		translator:   tr,
		mapper:       m,
		creds:        opts.Credentials,
		seriesFilter: opts.SeriesFilter,
		seriesMatch:  MatchesSeries,
		info:         defaultInfo,
		logger:       log.WithField("component", "indexer"),
	}
	ix.caps = newznab.NewCapabilities(
		newznab.ServerInfo{
			Title:     "easyznab",
			Strapline: "Easynews global search as a newznab indexer",
			URL:       "https://members.easynews.com",
			Version:   opts.Version,
		},
		newznab.Limits{Max: tr.PageSize(), Default: tr.PageSize()},
		categories.Producible().WithParents(),
	)
	if ix.enricher == nil {
		ix.caps.WithoutParams(newznab.KindTVSearch, newznab.ShowIDParams...)
	}
	if ix.enrichWait <= 0 {
		ix.enrichWait = DefaultEnrichTimeout
	}
	return ix, nil
}

var defaultInfo = newznab.Info{
	ID:          "easynews",
	Title:       "Easynews via easyznab",
	Description: "Easynews global search proxied as Newznab",
	Link:        "https://members.easynews.com",
	Language:    "en-us",
	Category:    "search",
}

func (ix *Indexer) Info() newznab.Info {
	return ix.info
}

// Capabilities is built once, every mode and category in it can be searched and produced.
func (ix *Indexer) Capabilities() newznab.Capabilities {
	return ix.caps
}
