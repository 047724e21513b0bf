// Package server exposes ladder search over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/ladder"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeInternalError  = "internal_error"
)

// WordCounter reports the size of the loaded dictionary.
type WordCounter interface {
	Len() int
}

// Server serves the ladder, neighbors and health endpoints.
type Server struct {
	provider ladder.Provider
	dict     WordCounter
	log      *logrus.Logger
	maxDepth int
}

// New creates a Server with the given dependencies. maxDepth caps every
// search; requests may only lower it.
func New(provider ladder.Provider, dict WordCounter, log *logrus.Logger, maxDepth int) *Server {
	return &Server{provider: provider, dict: dict, log: log, maxDepth: maxDepth}
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ladderResponse is the JSON payload returned by the ladder endpoint.
type ladderResponse struct {
	Path     []string `json:"path"`
	Steps    int      `json:"steps"`
	Found    bool     `json:"found"`
	Expanded int      `json:"expanded"`
	Visited  int      `json:"visited"`
}

// neighborsResponse is the JSON payload returned by the neighbors endpoint.
type neighborsResponse struct {
	Word      string   `json:"word"`
	Neighbors []string `json:"neighbors"`
}

// healthResponse is the JSON payload returned by the health endpoint.
type healthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.GET("/ladder", s.Ladder)
	v1.GET("/neighbors", s.Neighbors)

	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Words: s.dict.Len()})
}

// Ladder handles GET /v1/ladder?from=&to=[&max_depth=&any_length=].
func (s *Server) Ladder(c *gin.Context) {
	from := strings.ToLower(strings.TrimSpace(c.Query("from")))
	to := strings.ToLower(strings.TrimSpace(c.Query("to")))
	if from == "" || to == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "from and to are required")
		return
	}

	depth := s.maxDepth
	if v := c.Query("max_depth"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d < 0 {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "max_depth must be a non-negative integer")
			return
		}
		if s.maxDepth == 0 || (d > 0 && d < s.maxDepth) {
			depth = d
		}
	}

	anyLen, err := anyLength(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "any_length must be a boolean")
		return
	}

	opts := append(metrics.Hooks(),
		ladder.WithContext(c.Request.Context()),
		ladder.WithMaxDepth(depth),
	)
	if anyLen {
		opts = append(opts, ladder.WithAnyLength())
	}

	res, err := ladder.Search(s.provider, from, to, opts...)
	metrics.ObserveSearch(res, err)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"from": from, "to": to}).Error("ladder search failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, ladderResponse{
		Path:     res.Path,
		Steps:    res.Len(),
		Found:    res.Found(),
		Expanded: res.Expanded,
		Visited:  res.Visited,
	})
}

// Neighbors handles GET /v1/neighbors?word=[&any_length=].
func (s *Server) Neighbors(c *gin.Context) {
	word := strings.ToLower(strings.TrimSpace(c.Query("word")))
	if word == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "word is required")
		return
	}

	anyLen, err := anyLength(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "any_length must be a boolean")
		return
	}

	nbrs, err := s.provider.DistanceOne(word, !anyLen)
	if err != nil {
		s.log.WithError(err).WithField("word", word).Error("neighbor lookup failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		return
	}
	if nbrs == nil {
		nbrs = []string{}
	}

	c.JSON(http.StatusOK, neighborsResponse{Word: word, Neighbors: nbrs})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}

// anyLength parses the optional any_length query flag.
func anyLength(c *gin.Context) (bool, error) {
	v := c.Query("any_length")
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorBody{Error: errorDetail{Code: code, Message: message}})
}
