package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/benkelly/easyznab/newznab"
)

const shutdownTimeout = 10 * time.Second

// Searcher is the indexer behind the api.
type Searcher interface {
	Info() newznab.Info
	Capabilities() newznab.Capabilities
	Search(ctx context.Context, req newznab.Request) (*newznab.Feed, error)
}

type Params struct {
	APIKey     []byte
	Passphrase string
	Version    string
	// Pprof exposes the profiling handlers under /debug/pprof.
	Pprof bool
}

type Server struct {
	searcher Searcher
	Params   Params
	key      []byte
	logger   *log.Entry
}

func NewServer(searcher Searcher, params Params) *Server {
	s := &Server{
		searcher: searcher,
		Params:   params,
		logger:   log.WithField("component", "server"),
	}
	s.key = s.sharedKey()
	return s
}

// Router builds the gin engine with every route of the server.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	s.setupRoutes(r)
	return r
}

// Listen serves on addr until ctx is done, then shuts the server down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.WithField("addr", addr).Info("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// requestLogger logs every request without its query string, which carries the api key.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.logger.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"t":       c.Query("t"),
			"status":  c.Writer.Status(),
			"latency": time.Since(started).String(),
			"client":  c.ClientIP(),
		}).Info("Request")
	}
}
