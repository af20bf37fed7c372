package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/beautyfind/beautyfind/config"
	"github.com/beautyfind/beautyfind/internal/adminapi"
	"github.com/beautyfind/beautyfind/internal/app"
	"github.com/beautyfind/beautyfind/internal/webserver"
)

var (
	cfile   = flag.String("c", "beautyfind.yml", "config file")
	showver = flag.Bool("v", false, "show version and exit")
)

func main() {
	flag.Parse()
	if *showver {
		fmt.Println("beautyfind demo server")
		os.Exit(0)
	}

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "init failed:", err)
		os.Exit(1)
	}

	webserver.Init(application)
	adminapi.RegisterRoutes()

	errchan := make(chan error, 1)
	go func() {
		errchan <- webserver.Listen()
	}()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errchan:
		zap.L().Error("webserver stopped", zap.Error(err))
	case sig := <-sigchan:
		zap.L().Info("shutting down", zap.String("signal", sig.String()))
	}
	application.Release()
}
