// Package server serves the gallery page over HTTP. Projects are loaded
// once at startup; every request gets its own session.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jakoblorz/go-gallery/internal/catalog"
	"github.com/jakoblorz/go-gallery/internal/gallery"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/site"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

// Options configures the server
type Options struct {
	Title    string
	TagOrder catalog.TagOrder
	Logger   *zap.Logger

	// RateLimit caps requests per second across all clients; zero
	// disables limiting
	RateLimit float64
}

// Server renders the gallery for HTTP clients
type Server struct {
	projects []models.Project
	loadErr  error
	opts     Options
	logger   *zap.Logger
	metrics  *metrics
	engine   *gin.Engine
}

// New creates a server over the result of a single load
func New(projects []models.Project, loadErr error, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		projects: projects,
		loadErr:  loadErr,
		opts:     opts,
		logger:   logger,
		metrics:  newMetrics(),
	}
	s.metrics.projects.Set(float64(len(projects)))

	engine := gin.New()
	engine.Use(gin.Recovery(), s.metrics.middleware(), s.logRequests())
	if opts.RateLimit > 0 {
		burst := max(1, int(opts.RateLimit))
		engine.Use(limitRequests(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}

	engine.GET("/", s.handlePage)
	engine.GET(site.ToggleThemePath, s.handleToggleTheme)
	engine.GET("/projects.json", s.handleProjects)
	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	s.engine = engine
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Serving gallery", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// session builds the per-request session: theme from the cookie, the
// shared project list, then the filter from the query string.
func (s *Server) session(c *gin.Context) *gallery.Session {
	sess := gallery.NewSession(NewCookieStore(c),
		gallery.WithLogger(s.logger),
		gallery.WithTagOrder(s.opts.TagOrder))
	sess.InitTheme()

	if s.loadErr != nil {
		sess.Fail(s.loadErr)
		return sess
	}
	sess.Bind(s.projects)

	state := site.DecodeQuery(c.Request.URL.Query())
	if state.Search != "" {
		s.dispatch(sess, gallery.Search(state.Search))
	}
	for _, tag := range state.SortedActiveTags() {
		s.dispatch(sess, gallery.ToggleTag(tag))
	}
	return sess
}

func (s *Server) dispatch(sess *gallery.Session, ev gallery.Event) {
	if err := sess.Dispatch(ev); err != nil {
		s.logger.Debug("Event failed", zap.Stringer("event", ev.Kind), zap.Error(err))
	}
}

func (s *Server) handlePage(c *gin.Context) {
	sess := s.session(c)
	s.recordFilter(sess)

	links := site.QueryLinks{Current: c.Request.URL.RequestURI()}

	var buf bytes.Buffer
	if err := site.Render(&buf, site.NewPage(s.opts.Title, sess, links)); err != nil {
		s.logger.Error("Failed to render page", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	status := http.StatusOK
	if sess.LoadErr() != nil {
		status = http.StatusServiceUnavailable
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	sess := gallery.NewSession(NewCookieStore(c), gallery.WithLogger(s.logger))
	sess.InitTheme()
	if err := sess.Dispatch(gallery.ToggleTheme()); err != nil {
		s.logger.Warn("Theme toggle not saved", zap.Error(err))
	}
	s.metrics.themeToggles.WithLabelValues(sess.Theme().String()).Inc()

	c.Redirect(http.StatusSeeOther, safeReturn(c.Query("return")))
}

func (s *Server) handleProjects(c *gin.Context) {
	sess := s.session(c)
	if sess.LoadErr() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": gallery.LoadErrorMessage})
		return
	}
	c.JSON(http.StatusOK, sess.Results())
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.loadErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": s.loadErr.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "projects": len(s.projects)})
}

// recordFilter counts searches and tag filters. Only catalog tags become
// label values, so arbitrary query tags cannot add series.
func (s *Server) recordFilter(sess *gallery.Session) {
	state := sess.Filter()
	if state.Search != "" {
		s.metrics.searches.Inc()
	}
	tags := sess.Catalog()
	for _, tag := range state.SortedActiveTags() {
		if !tags.Contains(tag) {
			continue
		}
		s.metrics.tagFilters.WithLabelValues(tag).Inc()
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}

func limitRequests(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// safeReturn only allows local absolute paths as redirect targets
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
