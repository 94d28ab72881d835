package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	if loc == nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithParser(cronParser), cron.WithLocation(loc))

	// Full reload heals any divergence left by failed background writes.
	_, err := a.sched.AddFunc("@every 5m", a.reloadRepositories)
	if err != nil {
		zap.S().Errorf("failed to register reload job: %v", err)
	}

	_, err = a.sched.AddFunc("@every 1h", a.logStoreStats)
	if err != nil {
		zap.S().Errorf("failed to register stats job: %v", err)
	}

	a.sched.Start()
}

func (a *Application) reloadRepositories() {
	if a.productRepo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.productRepo.Reload(ctx); err != nil {
		zap.L().Warn("product cache reload failed", zap.Error(err))
	}
	if err := a.parkingRepo.Reload(ctx); err != nil {
		zap.L().Warn("parking cache reload failed", zap.Error(err))
	}
	if err := a.birdRepo.Reload(ctx); err != nil {
		zap.L().Warn("bird cache reload failed", zap.Error(err))
	}
}

func (a *Application) logStoreStats() {
	pn, pb := a.productStore.Size()
	rn, rb := a.parkingStore.Size()
	bn, bb := a.birdStore.Size()
	zap.L().Info("catalog store stats",
		zap.Int("products", pn), zap.Int64("products_bytes", pb),
		zap.Int("parking", rn), zap.Int64("parking_bytes", rb),
		zap.Int("birds", bn), zap.Int64("birds_bytes", bb),
	)
}
