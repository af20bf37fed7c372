package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/beautyfind/beautyfind/config"
	"github.com/beautyfind/beautyfind/internal/catalog"
	"github.com/beautyfind/beautyfind/internal/flakiness"
	"github.com/beautyfind/beautyfind/internal/kvstore"
	"github.com/beautyfind/beautyfind/internal/moderation"
	"github.com/beautyfind/beautyfind/internal/session"
)

// Application is the composition root: it owns the configuration, the
// durable key-value store, the catalog engine, the session manager and the
// moderation queue, and hands them to consumers through the provider
// interfaces.
type Application struct {
	appConfig *config.AppConfig
	store     *kvstore.BoltStore
	bus       EventBus.Bus
	catalog   *catalog.Engine
	submitter *catalog.Submitter
	sessions  *session.Manager
	modqueue  *moderation.Service
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider     = (*Application)(nil)
	_ StoreProvider      = (*Application)(nil)
	_ CatalogProvider    = (*Application)(nil)
	_ SessionProvider    = (*Application)(nil)
	_ ModerationProvider = (*Application)(nil)
	_ SchedulerProvider  = (*Application)(nil)
	_ AppContext         = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig       { return a.appConfig }
func (a *Application) Store() kvstore.Store            { return a.store }
func (a *Application) Catalog() *catalog.Engine        { return a.catalog }
func (a *Application) Submitter() *catalog.Submitter   { return a.submitter }
func (a *Application) Sessions() *session.Manager      { return a.sessions }
func (a *Application) Moderation() *moderation.Service { return a.modqueue }
func (a *Application) Scheduler() *cron.Cron           { return a.sched }
func (a *Application) Bus() EventBus.Bus               { return a.bus }

// Init wires the whole application: logger, timezone, storage, catalog,
// session restore and background jobs.
func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
		return err
	}

	a.store, err = kvstore.OpenBolt(cfg.StorePath())
	if err != nil {
		return err
	}
	zap.S().Infof("Key-value store opened at %s", cfg.StorePath())

	a.catalog, err = catalog.New()
	if err != nil {
		return err
	}
	zap.S().Infof("Catalog seeded with %d products", a.catalog.Size())

	a.bus = EventBus.New()
	policy := flakiness.NewPolicy(cfg.Flakiness)
	a.modqueue = moderation.NewService(a.bus)
	a.submitter = catalog.NewSubmitter(policy, a.modqueue)
	a.sessions = session.NewManager(a.store, policy, a.bus)
	a.sessions.Restore()

	a.initJob()
	return nil
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// Release releases application resources.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = zap.L().Sync()
}
