package main

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"gitlab.com/TitanInd/deepmatch/internal/compare"
	"gitlab.com/TitanInd/deepmatch/internal/config"
	"gitlab.com/TitanInd/deepmatch/internal/handlers"
	"gitlab.com/TitanInd/deepmatch/internal/lib"
	"gitlab.com/TitanInd/deepmatch/internal/transport"
	"golang.org/x/sync/errgroup"
)

const VERSION = "0.1.0"

func main() {
	_ = godotenv.Load(".env")

	var cfg config.Config
	err := config.LoadConfig(&cfg, &os.Args)
	if err != nil {
		panic(err)
	}

	log, err := lib.NewLogger(cfg.Log.Level, cfg.Log.Color, cfg.Log.IsProd, cfg.Log.JSON, cfg.Log.FilePath)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-shutdownChan
		log.Warnf("Received signal: %s", s)
		cancel()

		s = <-shutdownChan
		log.Warnf("Received signal: %s. Forcing exit...", s)
		os.Exit(1)
	}()

	publicUrl, err := url.Parse(cfg.Web.PublicUrl)
	if err != nil || cfg.Web.PublicUrl == "" {
		publicUrl, _ = url.Parse("http://" + cfg.Web.Address)
	}

	comparator := compare.NewComparator(compare.DecimalResolver{})
	handl := handlers.NewHTTPHandler(
		comparator,
		cfg.Compare.DefaultPrecision,
		cfg.Compare.Strict,
		cfg.Compare.HistorySize,
		publicUrl,
		VERSION,
		log.Named("HANDLER"),
	)

	server := transport.NewHTTPServer(cfg.Web.Address, handlers.NewRouter(handl), log.Named("HTTP"))

	g, errCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(errCtx)
	})

	err = g.Wait()
	log.Infof("App exited due to %s", err)
}
