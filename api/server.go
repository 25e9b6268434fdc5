package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api")

// MetricView is the host-facing rendering of one metric field. Every field of
// the registry is always present; Available tells the host to mark the
// metric stale when the snapshot did not populate it.
type MetricView struct {
	Value     string `json:"value,omitempty"`
	Kind      string `json:"kind"`
	Category  string `json:"category"`
	Source    string `json:"source,omitempty"`
	Available bool   `json:"available"`
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ListenAddress string
	Provider      ResultProvider
}

type server struct {
	router     *gin.Engine
	httpServer *http.Server
	provider   ResultProvider
	listenAddr string
	wg         sync.WaitGroup
}

// NewServer initializes the Gin engine and mounts all routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Provider) {
		return nil, errors.New("nil result provider")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &server{
		router:     router,
		provider:   args.Provider,
		listenAddr: args.ListenAddress,
	}

	s.setupRoutes()
	return s, nil
}

func (s *server) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/status", s.handleStatus)
	api.GET("/metrics", s.handleMetrics)
}

func (s *server) handleStatus(c *gin.Context) {
	result, found := s.provider.LatestResult()
	if !found {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no poll cycle completed yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"health":            result.Health,
		"timestamp":         result.Snapshot.Timestamp,
		"outcomes":          result.Outcomes,
		"unreachableFields": result.UnreachableFields,
	})
}

func (s *server) handleMetrics(c *gin.Context) {
	result, found := s.provider.LatestResult()
	if !found {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no poll cycle completed yet"})
		return
	}

	views := make(map[string]MetricView, len(metrics.Registry()))
	for _, field := range metrics.Registry() {
		view := MetricView{
			Kind:     string(field.Kind),
			Category: string(field.Category),
		}

		fieldValue, populated := result.Snapshot.Fields[field.Key]
		if populated && !fieldValue.Unavailable {
			view.Value = fieldValue.Value
			view.Source = fieldValue.Source
			view.Available = true
		}

		views[field.Key] = view
	}

	c.JSON(http.StatusOK, gin.H{
		"timestamp": result.Snapshot.Timestamp,
		"health":    result.Health,
		"metrics":   views,
	})
}

// Start listens and serves connections
func (s *server) Start() {
	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: s.router,
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.Error("failed to listen", "error", err)
		return
	}
	s.listenAddr = ln.Addr().String()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", s.listenAddr)

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
		}
	}()
}

// Address returns the actual listen address
func (s *server) Address() string {
	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.wg.Wait()

	return nil
}
