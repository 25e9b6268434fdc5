package factory

import (
	"context"
	"sync"
	"time"

	"github.com/iulianpascalau/arris-modem-monitoring/api"
	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/config"
	"github.com/iulianpascalau/arris-modem-monitoring/engine"
	"github.com/iulianpascalau/arris-modem-monitoring/fetcher"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("factory")

type componentsHandler struct {
	engine       Engine
	server       Server
	holder       *resultHolder
	pollInterval time.Duration
	mutCancel    sync.Mutex
	cancel       func()
}

// NewComponentsHandler creates a new components handler: it validates the
// config and wires the fetcher, the poll engine, the result holder and the
// API server together.
func NewComponentsHandler(cfg config.Config) (*componentsHandler, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	requestTimeout := time.Duration(cfg.RequestTimeoutInSeconds) * time.Second
	deviceFetcher, err := fetcher.NewHTTPFetcher(cfg.Host, requestTimeout)
	if err != nil {
		return nil, err
	}

	monitorEngine, err := engine.NewMonitorEngine(deviceFetcher, cfg.EndpointTable(), requestTimeout)
	if err != nil {
		return nil, err
	}

	holder := &resultHolder{}
	server, err := api.NewServer(api.ArgsWebServer{
		ListenAddress: cfg.APIListenAddress,
		Provider:      holder,
	})
	if err != nil {
		return nil, err
	}

	return &componentsHandler{
		engine:       monitorEngine,
		server:       server,
		holder:       holder,
		pollInterval: time.Duration(cfg.PollIntervalInSeconds) * time.Second,
	}, nil
}

// GetEngine returns the engine component
func (ch *componentsHandler) GetEngine() Engine {
	return ch.engine
}

// GetServer returns the API server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// Start starts the inner components
func (ch *componentsHandler) Start() {
	ch.mutCancel.Lock()
	defer ch.mutCancel.Unlock()

	if ch.cancel != nil {
		return
	}

	var ctx context.Context
	ctx, ch.cancel = context.WithCancel(context.Background())

	err := ch.engine.VerifyConnection(ctx)
	if err != nil {
		log.Warn("device connection check failed, polling will start anyway", "error", err)
	}

	ch.server.Start()
	common.CronJobStarter(ctx, ch.pollCycle, ch.pollInterval)
}

func (ch *componentsHandler) pollCycle(ctx context.Context) {
	result := ch.engine.Poll(ctx)
	ch.holder.store(result)
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	ch.mutCancel.Lock()
	defer ch.mutCancel.Unlock()

	if ch.cancel == nil {
		return
	}

	ch.cancel()
	ch.cancel = nil

	err := ch.server.Close()
	if err != nil {
		log.Warn("error closing the API server", "error", err)
	}
}
