package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/davidvella/pqueue/priority"
	"github.com/davidvella/pqueue/scenario"
	"go.uber.org/zap"
)

var (
	scenarioPath = flag.String("scenario", "", "TOML scenario file; the built-in demo runs when empty")
	debug        = flag.Bool("debug", false, "log every step")
	degree       = flag.Int("degree", 16, "btree degree of the queue indices")
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	flag.Parse()

	baseLogger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	logger := baseLogger.Named("pqdemo")

	if err := run(logger); err != nil {
		logger.Error("scenario failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(logger *zap.Logger) error {
	s := scenario.Demo()
	if *scenarioPath != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			return err
		}
		s = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := scenario.NewRunner(logger,
		priority.WithDegree(*degree),
		priority.WithLogger(logger.Named("queue")),
	)
	if err := r.Run(ctx, s); err != nil {
		return err
	}

	for _, name := range r.Queues() {
		logger.Info("final queue",
			zap.String("queue", name),
			zap.String("entries", r.Snapshot(name)),
		)
	}
	return nil
}
