package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mdlocal/internal/app"
	"github.com/ternarybob/mdlocal/internal/common"
	"github.com/ternarybob/mdlocal/internal/services/localizer"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	assetsDir    = flag.String("assets", "", "Asset directory name beside the document (overrides config)")
	logLevel     = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path, TOML or YAML (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: mdlocal [flags] <file.md>\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Downloads remote images referenced by a markdown file and writes <name>_local.md beside it.\n\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("mdlocal version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("mdlocal.toml"); err == nil {
			configFiles = append(configFiles, "mdlocal.toml")
		}
	}

	// 1. Load configuration (default -> file1 -> file2 -> ... -> env -> CLI)
	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := common.GetLogger()
		tempLogger.Error().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	// 2. Apply command-line flag overrides (highest priority), then validate the final result
	common.ApplyFlagOverrides(config, *logLevel, *assetsDir)
	if err := config.Validate(); err != nil {
		common.GetLogger().Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	// 3. Initialize logger with final configuration
	logger := common.SetupLogger(config)

	// 4. Print banner
	common.PrintBanner(common.GetVersion())

	inputPath, err := resolveInputPath(flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		logger.Error().Err(err).Msg("No input file")
		os.Exit(1)
	}

	application, err := app.New(config, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, application.Localizer, inputPath, logger))
}

// run localizes one document and returns the process exit code
func run(ctx context.Context, service *localizer.Service, inputPath string, logger arbor.ILogger) int {
	result, err := service.Localize(ctx, inputPath)
	if err != nil {
		var readErr *localizer.InputReadError
		var writeErr *localizer.OutputWriteError
		switch {
		case errors.As(err, &readErr):
			logger.Error().Str("path", readErr.Path).Err(readErr.Err).Msg("Failed to read markdown file")
		case errors.As(err, &writeErr):
			logger.Error().Str("path", writeErr.Path).Err(writeErr.Err).Msg("Failed to write localized file")
		default:
			logger.Error().Err(err).Msg("Localize failed")
		}
		return 1
	}

	if result.Found == 0 {
		fmt.Println("No remote images found, nothing to do.")
		return 0
	}

	fmt.Printf("Converted %d of %d images. Output: %s\n", result.Converted, result.Found, result.OutputPath)
	return 0
}
