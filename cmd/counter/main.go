package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/reactive/app/counter"
	"github.com/dmitrymomot/reactive/core/config"
	"github.com/dmitrymomot/reactive/core/dispatch"
	"github.com/dmitrymomot/reactive/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	lang, err := language.Parse(cfg.Counter.Lang)
	if err != nil {
		log.Warn("Unsupported language, falling back to English", logger.Component("presenter"), logger.Error(err))
		lang = language.English
	}

	// All rendering happens on this queue, off the goroutine that reads input.
	ui := dispatch.NewQueue(
		dispatch.WithQueueName("ui"),
		dispatch.WithQueueLogger(log),
		dispatch.WithShutdownTimeout(cfg.ShutdownTimeout),
	)

	model := counter.New(cfg.Counter, counter.WithLogger(log))
	defer model.Close()

	presenter := counter.NewPresenter(os.Stdout,
		counter.WithLanguage(lang),
		counter.WithPresenterLogger(log),
	)
	presenter.Attach(model, ui)
	defer presenter.Detach()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(ui.Run(ctx))
	eg.Go(func() error {
		// End of input stops the UI queue too.
		defer cancel()
		return model.Drive(ctx, os.Stdin)
	})

	if err := eg.Wait(); err != nil {
		log.Error("Counter stopped with error", logger.Component("counter"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Counter stopped", logger.Component("counter"), logger.Count("taps", model.Count.Get()))
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithOutput(os.Stderr)}
	if cfg.Env == "production" {
		opts = append(opts, logger.WithProduction(cfg.AppName))
	} else {
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}
	opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	return logger.New(opts...)
}
