package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvierd/prank-cli/internal/adapters/i18n"
	"github.com/xvierd/prank-cli/internal/adapters/notification"
	"github.com/xvierd/prank-cli/internal/adapters/platform"
	"github.com/xvierd/prank-cli/internal/adapters/tui"
	"github.com/xvierd/prank-cli/internal/clock"
	"github.com/xvierd/prank-cli/internal/config"
	"github.com/xvierd/prank-cli/internal/domain"
	"github.com/xvierd/prank-cli/internal/log"
	"github.com/xvierd/prank-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	logFile    *os.File
	logger     zerolog.Logger
	translator *i18n.Translator
	notifier   *notification.Notifier
	platform   *platform.Detector
	display    *tui.Display
	controller *services.SessionController
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.configPath = configPath
	if app.configPath == "" {
		app.configPath, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}
	var loadErr error
	app.config, loadErr = loadConfig(app.configPath)

	if err := initializeLogging(); err != nil {
		return err
	}
	app.logger = log.WithComponent("cmd")
	if loadErr != nil {
		warnConfigFallback(app.logger, app.configPath, loadErr)
	}

	// Resolve locale: --locale flag > config > system
	locale := app.config.Locale
	if localeFlag != "" {
		if _, ok := i18n.ResolveLocale(localeFlag); !ok {
			return fmt.Errorf("%w %q", domain.ErrUnsupportedLocale, localeFlag)
		}
		locale = localeFlag
	}
	if locale == "" {
		locale = i18n.DetectSystemLocale(os.Getenv)
		// The first detected language sticks; a broken file is left alone.
		if loadErr == nil {
			saveLocale(locale)
		}
	}
	app.translator = i18n.New(locale)

	// Resolve settings: flags > config
	settings, err := app.config.ToSettings()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := applyFlags(&settings); err != nil {
		return err
	}

	// Initialize adapters
	app.notifier = notification.New(&app.config.Notifications, log.WithComponent("notification"))
	app.platform = platform.NewDetector()
	app.display = tui.NewDisplay()
	app.notifier.SetSink(app.display.ShowToast)

	// Initialize the session controller; an empty variant keeps the detected one
	app.controller = services.NewSessionController(services.ControllerDeps{
		Host:       app.display,
		Clock:      clock.New(app.display),
		Notifier:   app.notifier,
		Translator: app.translator,
		Platform:   app.platform,
		Logger:     log.WithComponent("session"),
	},
		services.WithLoopCycle(time.Duration(app.config.LoopCycle)),
		services.WithInitialSettings(func(s *domain.Settings) {
			s.Mode = settings.Mode
			s.Hours = settings.Hours
			s.Minutes = settings.Minutes
			if settings.Variant != "" {
				s.Variant = settings.Variant
			}
		}),
	)

	return nil
}

// loadConfig reads the config file, falling back to defaults when it cannot be
// read. The error is returned so it can be logged once logging is set up.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return config.DefaultConfig(), err
	}
	return cfg, nil
}

func warnConfigFallback(logger zerolog.Logger, path string, err error) {
	logger.Warn().Err(err).Str("path", path).Msg("config unreadable, using defaults")
}

// initializeLogging routes logs to the log file when --debug is set or a log
// file is configured. The screen owns stdout, so logs are discarded otherwise.
func initializeLogging() error {
	level := app.config.Log.Level
	if debugFlag {
		level = "debug"
	}
	if !debugFlag && app.config.Log.File == "" {
		log.Configure(log.Config{Level: level})
		return nil
	}

	f, err := log.OpenFile(config.GetLogPath(app.config))
	if err != nil {
		return err
	}
	app.logFile = f
	log.Configure(log.Config{Level: level, Output: f})
	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.logFile != nil {
		err := app.logFile.Close()
		app.logFile = nil
		return err
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
