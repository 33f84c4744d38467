package shell

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/matheus3301/chatshell/internal/attachment"
	"github.com/matheus3301/chatshell/internal/bus"
	"github.com/matheus3301/chatshell/internal/config"
	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/logging"
	"github.com/matheus3301/chatshell/internal/overlay"
	"github.com/matheus3301/chatshell/internal/paths"
	"github.com/matheus3301/chatshell/internal/store"
	"github.com/matheus3301/chatshell/internal/swipe"
	"github.com/matheus3301/chatshell/internal/timeline"
	"github.com/matheus3301/chatshell/internal/tui"
	"github.com/matheus3301/chatshell/internal/tui/model"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the resolved command-line settings passed to the fx modules.
type Params struct {
	ConfigPath string // empty = paths.ConfigPath()
	LogPath    string // empty = paths.LogPath()
	LogLevel   string // overrides the config file when set
	Console    bool   // also log warnings to stderr
	Version    string // shown in the header banner
}

// Core returns the fx module with everything except the terminal UI.
func Core(p Params) fx.Option {
	return fx.Module("core",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideCatalog,
			provideItems,
			provideTimelines,
			swipe.NewRegistry,
			provideSwipeManager,
			providePresenter,
			providePicker,
			providePipeline,
			provideRouter,
			provideChat,
			provideHome,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
	)
}

// Module returns the full application: Core plus the TUI, whose exit stops the app.
func Module(p Params) fx.Option {
	return fx.Options(
		Core(p),
		fx.Module("tui",
			fx.Provide(provideApp),
			fx.Invoke(registerLifecycle),
		),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = paths.ConfigPath()
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if p.LogLevel != "" {
		cfg.LogLevel = p.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	path := p.LogPath
	if path == "" {
		path = paths.LogPath()
	}
	if p.Console {
		return logging.NewConsole(path, cfg.LogLevel)
	}
	return logging.New(path, cfg.LogLevel)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideCatalog(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*store.DB, error) {
	db, err := store.OpenMemory("chatshell-" + uuid.NewString())
	if err != nil {
		return nil, err
	}
	migrateCatalog := db.Migrate
	if cfg.SkipBuiltinFixtures {
		migrateCatalog = func() (*store.MigrateResult, error) { return db.MigrateTo(store.SchemaVersion) }
	}
	result, err := migrateCatalog()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("catalog ready", zap.Uint("version", result.Version))

	if cfg.FixturesPath != "" {
		f, err := store.LoadFixtures(cfg.FixturesPath)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		n, err := db.ImportFixtures(f)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("fixtures imported", zap.String("path", cfg.FixturesPath), zap.Int("conversations", n))
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

func provideItems(db *store.DB) ([]conversation.Item, error) {
	return db.ListConversations()
}

func provideTimelines(db *store.DB, b *bus.Bus, logger *zap.Logger) *timeline.Registry {
	return timeline.NewRegistry(db.ListMessages, logger, timeline.WithBus(b))
}

func provideSwipeManager(rows *swipe.Registry, b *bus.Bus, logger *zap.Logger) *swipe.Manager {
	return swipe.NewManager(rows, b, logger)
}

func providePresenter(sw *swipe.Manager, b *bus.Bus, logger *zap.Logger) *overlay.Presenter {
	p := overlay.NewPresenter(b, logger)
	p.OnShow(sw.CloseAll)
	return p
}

func providePicker(cfg *config.Config, logger *zap.Logger) (attachment.Picker, error) {
	if len(cfg.Picker.Command) > 0 {
		logger.Info("using command picker", zap.Strings("command", cfg.Picker.Command))
		return attachment.NewExecPicker(cfg.Picker.Command)
	}
	logger.Info("using sample picker", zap.Int("samples", len(cfg.Picker.Samples)))
	return attachment.NewSamplePicker(cfg.Picker.Samples), nil
}

func providePipeline(picker attachment.Picker, cfg *config.Config, b *bus.Bus, logger *zap.Logger) (*attachment.Pipeline, error) {
	return attachment.NewPipeline(picker, cfg.Request(), b, logger)
}

func provideRouter(b *bus.Bus, logger *zap.Logger) *model.Router {
	return model.NewRouter(b, logger)
}

func provideChat(items []conversation.Item, timelines *timeline.Registry, pipeline *attachment.Pipeline, overlays *overlay.Presenter, router *model.Router, logger *zap.Logger) *model.Chat {
	return model.NewChat(items, timelines, pipeline, overlays, router, logger)
}

func provideHome(items []conversation.Item, sw *swipe.Manager, overlays *overlay.Presenter, chat *model.Chat, router *model.Router, b *bus.Bus, logger *zap.Logger) *model.Home {
	return model.NewHome(items, sw, overlays, chat, router, b, logger)
}

func provideApp(p Params, home *model.Home, chat *model.Chat, router *model.Router, rows *swipe.Registry, b *bus.Bus, cfg *config.Config, logger *zap.Logger) *tui.App {
	return tui.NewApp(tui.Deps{
		Home:        home,
		Chat:        chat,
		Router:      router,
		Rows:        rows,
		Bus:         b,
		ScrollDelay: cfg.ScrollDelay(),
		Version:     p.Version,
		Logger:      logger,
	})
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, app *tui.App, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := app.Run(); err != nil {
					logger.Error("tui exited with error", zap.Error(err))
					_ = sd.Shutdown(fx.ExitCode(1))
					return
				}
				logger.Info("tui exited")
				_ = sd.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			app.Stop()
			_ = logger.Sync()
			return nil
		},
	})
}
