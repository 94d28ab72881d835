package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/catalogapi"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/jsonstore"
	"github.com/talkincode/catalogd/internal/parking"
	"github.com/talkincode/catalogd/internal/repository"
	"github.com/talkincode/catalogd/internal/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Application wires the catalog stores, the web server, the client-side
// repositories and the background jobs together.
type Application struct {
	appConfig *config.AppConfig
	bus       EventBus.Bus
	sched     *cron.Cron
	writer    *repository.Writer
	server    *catalogapi.Server

	productStore *jsonstore.Collection[domain.Product]
	parkingStore *jsonstore.Collection[domain.ParkingRecord]
	birdStore    *jsonstore.Collection[domain.Bird]

	productRepo *repository.ProductRepository
	parkingRepo *repository.ParkingRepository
	birdRepo    *repository.BirdRepository

	productService *service.ProductService
	parkingService *parking.Service
}

var (
	_ ConfigProvider    = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ CatalogProvider   = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

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
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	// Open the flat-file catalog stores
	a.productStore = mustOpen[domain.Product](cfg.Data.Dir, "products.json",
		func(p domain.Product) string { return p.ID })
	a.parkingStore = mustOpen[domain.ParkingRecord](cfg.Data.Dir, "parking.json",
		func(r domain.ParkingRecord) string { return r.ID })
	a.birdStore = mustOpen[domain.Bird](cfg.Data.Dir, "birds.json",
		func(b domain.Bird) string { return b.Name })
	zap.S().Infof("catalog stores opened under %s", cfg.Data.Dir)

	a.bus = EventBus.New()
	if err := a.bus.Subscribe(repository.TopicWriteFailed, a.onWriteFailed); err != nil {
		zap.S().Errorf("subscribe write-failed events: %v", err)
	}

	a.writer, err = repository.NewWriter(4, a.bus)
	if err != nil {
		panic(err)
	}

	a.server = catalogapi.NewServer(cfg, a.productStore, a.parkingStore, a.birdStore)

	a.initJob()
}

func mustOpen[T any](dir, name string, key func(T) string) *jsonstore.Collection[T] {
	c, err := jsonstore.Open[T](filepath.Join(dir, name), key)
	if err != nil {
		panic(err)
	}
	return c
}

// InitServices builds the repositories and services against the running
// web server. Call after the server has started listening.
func (a *Application) InitServices() {
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", a.appConfig.Web.Port)

	a.productRepo = repository.NewProductRepository(
		repository.NewRemoteStore[domain.Product](baseURL, "products"), a.writer, a.bus)
	a.parkingRepo = repository.NewParkingRepository(
		repository.NewRemoteStore[domain.ParkingRecord](baseURL, "parking"), a.writer, a.bus)
	a.birdRepo = repository.NewBirdRepository(
		repository.NewRemoteStore[domain.Bird](baseURL, "birds"), a.writer, a.bus)

	strategy, err := parking.StrategyByName(a.appConfig.Parking.Strategy)
	if err != nil {
		zap.S().Warnf("%v, falling back to standard", err)
		strategy = parking.StandardRate{}
	}
	a.productService = service.NewProductService(a.productRepo)
	a.parkingService = parking.NewService(a.parkingRepo, strategy)

	zap.L().Info("catalog services initialized",
		zap.String("parking_strategy", strategy.Description()))
}

func (a *Application) onWriteFailed(catalog, op string, err error) {
	zap.L().Error("catalog store diverged until next reload",
		zap.String("catalog", catalog),
		zap.String("op", op),
		zap.Error(err),
	)
}

func (a *Application) Server() *catalogapi.Server {
	return a.server
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) ProductService() *service.ProductService {
	return a.productService
}

func (a *Application) ParkingService() *parking.Service {
	return a.parkingService
}

func (a *Application) Birds() *repository.BirdRepository {
	return a.birdRepo
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.writer != nil {
		a.writer.Release()
	}
	_ = zap.L().Sync()
}
