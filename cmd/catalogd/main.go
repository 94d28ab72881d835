package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/app"
	"go.uber.org/zap"
)

var (
	h        = flag.Bool("h", false, "help usage")
	conffile = flag.String("c", "", "config file, eg: /etc/catalogd.yml")
)

func main() {
	flag.Parse()
	if *h {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	errchan := make(chan error, 1)
	go func() {
		errchan <- application.Server().Start()
	}()

	// Build the cache repositories and services once the server is up.
	go func() {
		time.Sleep(time.Second)
		application.InitServices()
	}()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errchan:
		if err != nil {
			zap.S().Errorf("web server error: %v", err)
		}
	case sig := <-sigchan:
		fmt.Println("received signal:", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Server().Shutdown(ctx); err != nil {
		zap.S().Errorf("shutdown error: %v", err)
	}
}
