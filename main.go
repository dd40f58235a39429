package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"prodsearch/internal/catalog"
	"prodsearch/internal/config"
	"prodsearch/internal/eventbus"
	"prodsearch/internal/logger"
	"prodsearch/internal/session"
	"prodsearch/internal/ui"
)

// envE2E makes the program announce readiness on stdout for the pty tests
const envE2E = "PRODSEARCH_E2E_TEST"

func main() {
	var (
		configPath string
		apiURL     string
		regionID   string
		limit      int
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&apiURL, "api", "", "Catalog base URL")
	flag.StringVar(&regionID, "region", "", "Region id (en, en-ie, de-de)")
	flag.IntVar(&limit, "limit", 0, "Items per page (12, 24, 36)")
	flag.Parse()

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))

	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, source, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over file and environment
	if apiURL != "" {
		cfg.Catalog.BaseURL = apiURL
	}
	if regionID != "" {
		cfg.Search.DefaultRegion = regionID
	}
	if limit != 0 {
		cfg.Search.DefaultLimit = limit
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	}
	defer func() { _ = logger.Sync() }()

	bus := newEventBus(source, cfg)
	defer bus.Close()

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := catalog.NewHTTPClient(cfg.Catalog.BaseURL, catalog.WithTimeout(cfg.Timeout()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	sess := session.New(session.WithPublisher(bus))
	if err := sess.SetRegion(cfg.Search.DefaultRegion); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := sess.SetLimit(cfg.Search.DefaultLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	sess.SetQuery(query)

	logger.Info("starting",
		zap.String("session", sess.ID()),
		zap.String("api", cfg.Catalog.BaseURL),
		zap.String("region", sess.Region().ID),
		zap.Int("limit", sess.Limit()))

	uiModel := ui.NewModel(ctx, cfg, sess, client)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Status line updates travel through the bus into the update loop
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventPageRequested,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventResponseDiscarded,
	} {
		bus.Subscribe(t, forward)
	}

	if os.Getenv(envE2E) != "" {
		fmt.Println("__READY__")
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("exited", zap.String("session", sess.ID()))
}

// loadConfig reads the config file, then applies environment overrides.
// It also returns the path the file was read from.
func loadConfig(path string) (*config.Config, string, error) {
	var svc config.ConfigService
	if path != "" {
		svc = config.NewConfigServiceWithPath(path, nil)
	} else {
		svc = config.NewConfigService()
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, "", err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, "", err
	}
	return cfg, svc.Path(), nil
}

// newEventBus creates the bus, attaches the log subscribers and announces
// the loaded config. Call it after logger.Init so nothing is logged to the
// discard logger.
func newEventBus(source string, cfg *config.Config) eventbus.EventBus {
	bus := eventbus.New()
	subscribeLogging(bus)
	bus.Publish(config.LoadedEvent(source, cfg))
	return bus
}

// subscribeLogging records every domain event in the log file
func subscribeLogging(bus eventbus.EventBus) {
	log := func(e eventbus.DomainEvent) {
		logger.Debug("event", zap.String("type", string(e.Type())), zap.Any("payload", e))
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventPageRequested,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventResponseDiscarded,
	} {
		bus.Subscribe(t, log)
	}

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logger.Info("config loaded",
				zap.String("path", ev.Path),
				zap.String("base_url", ev.BaseURL),
				zap.String("region", ev.Region),
				zap.Int("limit", ev.Limit))
		}
	})
}
