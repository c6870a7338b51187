package metadata

import (
	"context"
	"errors"
	"fmt"

	imdbscraper "github.com/cardigann/go-imdb-scraper"
	"github.com/mrobinsn/go-tvmaze/tvmaze"
	log "github.com/sirupsen/logrus"

	"github.com/benkelly/easyznab/newznab"
)

var ErrBlankTitle = errors.New("resolved title was blank")

// ShowSource looks shows up by the ids newznab clients send.
type ShowSource interface {
	ByTVDBID(id string) (*tvmaze.Show, error)
	ByTVMazeID(id string) (*tvmaze.Show, error)
	ByTVRageID(id string) (*tvmaze.Show, error)
}

// MovieSource looks titles up by imdb id.
type MovieSource interface {
	FindByID(imdbID string) (*imdbscraper.Movie, error)
}

type tvmazeShows struct{}

func (tvmazeShows) ByTVDBID(id string) (*tvmaze.Show, error) {
	return tvmaze.DefaultClient.GetShowWithTVDBID(id)
}

func (tvmazeShows) ByTVMazeID(id string) (*tvmaze.Show, error) {
	return tvmaze.DefaultClient.GetShowWithID(id)
}

func (tvmazeShows) ByTVRageID(id string) (*tvmaze.Show, error) {
	return tvmaze.DefaultClient.GetShowWithTVRageID(id)
}

type imdbMovies struct{}

func (imdbMovies) FindByID(imdbID string) (*imdbscraper.Movie, error) {
	return imdbscraper.FindByID(imdbID)
}

// Enricher resolves external ids of a request into search keywords.
type Enricher struct {
	shows  ShowSource
	movies MovieSource
	logger *log.Entry
}

// New uses TVMaze for shows and IMDB for titles.
func New() *Enricher {
	return NewWithSources(tvmazeShows{}, imdbMovies{})
}

func NewWithSources(shows ShowSource, movies MovieSource) *Enricher {
	return &Enricher{
		shows:  shows,
		movies: movies,
		logger: log.WithField("component", "metadata"),
	}
}

// Enrich fills in the series of a tv search and the title and year of a movie search.
// Requests that already carry a query, or no ids, are left alone.
func (e *Enricher) Enrich(ctx context.Context, req newznab.Request) error {
	switch r := req.(type) {
	case *newznab.TVSearchRequest:
		if r.Query != "" || !r.HasIDs() {
			return nil
		}
		name, err := e.seriesName(ctx, r)
		if err != nil {
			return err
		}
		r.Series = name
	case *newznab.MovieRequest:
		if r.Query != "" || r.NormalizedIMDBID() == "" {
			return nil
		}
		movie, err := e.movie(ctx, r.NormalizedIMDBID())
		if err != nil {
			return err
		}
		r.Title = movie.Title
		r.Year = movie.Year
	}
	return nil
}

func (e *Enricher) seriesName(ctx context.Context, r *newznab.TVSearchRequest) (string, error) {
	var lookup func(string) (*tvmaze.Show, error)
	var source, id string
	switch {
	case r.TVDBID != "" && r.TVDBID != "0":
		source, id, lookup = "tvdb", r.TVDBID, e.shows.ByTVDBID
	case r.TVMazeID != "" && r.TVMazeID != "0":
		source, id, lookup = "tvmaze", r.TVMazeID, e.shows.ByTVMazeID
	case r.TVRageID != "" && r.TVRageID != "0":
		source, id, lookup = "tvrage", r.TVRageID, e.shows.ByTVRageID
	case r.IMDBID != "":
		movie, err := e.movie(ctx, (&newznab.MovieRequest{IMDBID: r.IMDBID}).NormalizedIMDBID())
		if err != nil {
			return "", err
		}
		return movie.Title, nil
	default:
		return "", nil
	}

	var show *tvmaze.Show
	err := await(ctx, func() (err error) {
		show, err = lookup(id)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%s lookup of %s: %w", source, id, err)
	}
	if show == nil || show.Name == "" {
		return "", fmt.Errorf("%s lookup of %s: %w", source, id, ErrBlankTitle)
	}
	e.logger.WithFields(log.Fields{"source": source, "id": id, "series": show.Name}).Debug("Resolved show")
	return show.Name, nil
}

func (e *Enricher) movie(ctx context.Context, imdbID string) (*imdbscraper.Movie, error) {
	var movie *imdbscraper.Movie
	err := await(ctx, func() (err error) {
		movie, err = e.movies.FindByID(imdbID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("imdb error. %s", err)
	}
	if movie == nil || movie.Title == "" {
		return nil, fmt.Errorf("imdb lookup of %s: %w", imdbID, ErrBlankTitle)
	}
	e.logger.WithFields(log.Fields{"imdbid": imdbID, "title": movie.Title, "year": movie.Year}).Debug("Resolved movie")
	return movie, nil
}
