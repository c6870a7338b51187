package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/benkelly/easyznab/config"
	"github.com/benkelly/easyznab/easynews"
	"github.com/benkelly/easyznab/indexer"
	"github.com/benkelly/easyznab/metadata"
)

// newIndexer builds the indexer, and its easynews client, from the settings.
func newIndexer(settings *config.Settings) (*indexer.Indexer, error) {
	client, err := easynews.NewClient(easynews.ClientConfig{
		URL:       settings.Easynews.URL,
		Timeout:   settings.Easynews.Timeout,
		Proxy:     settings.Easynews.Proxy,
		DebugHTTP: settings.Easynews.DebugHTTP,
	})
	if err != nil {
		return nil, err
	}
	creds := easynews.Credentials{
		Username: settings.Easynews.Username,
		Password: settings.Easynews.Password,
	}
	if !creds.IsSet() {
		log.Warn("No Easynews credentials configured, searches will be refused upstream")
	}
	opts := indexer.Options{
		PageSize:     settings.Easynews.PageSize,
		Credentials:  creds,
		SeriesFilter: settings.SeriesFilter,
		Version:      version,
	}
	if settings.MetadataEnabled {
		opts.Enricher = metadata.New()
		opts.EnrichTimeout = settings.MetadataTimeout
	}
	return indexer.New(client, opts)
}
