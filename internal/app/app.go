package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mdlocal/internal/common"
	"github.com/ternarybob/mdlocal/internal/httpclient"
	"github.com/ternarybob/mdlocal/internal/services/images"
	"github.com/ternarybob/mdlocal/internal/services/localizer"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	Fetcher    *images.Fetcher
	Downloader *images.Downloader
	Localizer  *localizer.Service
}

// New wires the application services from configuration
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	timeout, err := cfg.Download.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize downloader: %w", err)
	}

	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.Fetcher = images.NewFetcher(
		images.WithHTTPClient(httpclient.NewDefaultHTTPClient(timeout)),
		images.WithLogger(logger),
		images.WithUserAgent(cfg.Download.UserAgent),
		images.WithMaxSize(cfg.Download.MaxImageSize),
		images.WithRateLimit(cfg.Download.RateLimit),
	)
	a.Downloader = images.NewDownloader(a.Fetcher, cfg.Output.AssetsDir, logger)
	a.Localizer = localizer.NewService(a.Downloader, cfg.Output.Suffix, logger)

	logger.Debug().
		Str("timeout", timeout.String()).
		Str("assets_dir", cfg.Output.AssetsDir).
		Str("suffix", cfg.Output.Suffix).
		Msg("Application services initialized")

	return a, nil
}
