package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/movie-form/internal/config"
	"github.com/ytget/movie-form/internal/logging"
	"github.com/ytget/movie-form/internal/movies"
	"github.com/ytget/movie-form/internal/platform"
	"github.com/ytget/movie-form/internal/store"
	"github.com/ytget/movie-form/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.movie-form"
	AppName = "Movie Form"

	// StartupTimeout bounds opening the store
	StartupTimeout = 10 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "movie-form",
		Short:   "Desktop form for managing a movies table",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is "+config.ConfigFilePath()+")")
	flags.String("store", store.DriverMemory, "store driver: memory or postgres")
	flags.String("dsn", "", "PostgreSQL connection string")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", logging.FormatConsole, "log format: console or json")

	_ = v.BindPFlag("store.driver", flags.Lookup("store"))
	_ = v.BindPFlag("store.dsn", flags.Lookup("dsn"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	logger = logger.With().Str("version", version).Logger()
	logger.Info().Msgf("%s v%s starting...", AppName, version)

	if _, err := platform.EnsureConfigDir(); err != nil {
		logger.Warn().Err(err).Msg("config directory unavailable")
	}

	openCtx, cancel := context.WithTimeout(ctx, StartupTimeout)
	defer cancel()

	movieStore, err := store.Open(openCtx, cfg.StoreOptions(), logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open store")
		return fmt.Errorf("open store: %w", err)
	}

	myWindow, dataModel, err := setupApp(newApp, movieStore, cfg, logger)
	if err != nil {
		return err
	}

	myWindow.ShowAndRun()

	// ShowAndRun returns once the event loop ends; shutdown is idempotent
	dataModel.Shutdown()
	logger.Info().Msg("exited")
	return nil
}

// newApp creates the desktop app and makes it current
var newApp = func() fyne.App {
	return app.NewWithID(AppID)
}

// setupApp creates the app, builds the form window and loads the rows.
// Row bindings notify through the current app, so the first load runs after createApp.
func setupApp(createApp func() fyne.App, movieStore store.Store, cfg *config.Config, logger zerolog.Logger) (fyne.Window, *movies.DataModel, error) {
	myApp := createApp()
	myApp.Settings().SetTheme(ui.NewFormTheme())

	settings := config.NewSettings(myApp)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(settings.GetWindowSize())
	myWindow.SetMaster()

	dataModel := movies.NewDataModel(movieStore, logger, movies.WithTimeout(cfg.Store.Timeout))
	ui.NewMovieForm(myWindow, myApp, dataModel, ui.WithLogger(logger))

	if err := dataModel.LoadAllMovies(); err != nil {
		dataModel.Shutdown()
		return nil, nil, err
	}
	return myWindow, dataModel, nil
}
