package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/tinyhttp"
	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/handlers"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Default()

	addr := flag.String("addr", "localhost:3000", "address to listen on")
	debug := flag.Bool("debug", false, "log every accepted connection")
	flag.IntVar(&cfg.NET.ReadBufferSize, "read-buffer", cfg.NET.ReadBufferSize, "request read buffer size in bytes")
	flag.DurationVar(&cfg.NET.ReadTimeout, "read-timeout", cfg.NET.ReadTimeout, "how long to wait for a request")
	flag.DurationVar(&cfg.NET.WriteTimeout, "write-timeout", cfg.NET.WriteTimeout, "how long to wait for a response to be written")
	flag.StringVar(&cfg.Site.StaticPrefix, "static-prefix", cfg.Site.StaticPrefix, "path prefix of static files")
	flag.StringVar(&cfg.Site.StaticRoot, "static-root", cfg.Site.StaticRoot, "directory static files are served from")
	flag.StringVar(&cfg.Site.OrdersFile, "orders", cfg.Site.OrdersFile, "JSON file with shipping orders")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()

	app := tinyhttp.New(*addr).
		Tune(cfg).
		Logger(log).
		NotifyOnStop(func() {
			log.Info().Msg("stopped")
		})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := app.Serve(handlers.New(cfg))
		if errors.Is(err, status.ErrShutdown) {
			return nil
		}

		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		return app.Stop()
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
