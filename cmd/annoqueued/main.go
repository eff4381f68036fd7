package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/featurestore"
	"github.com/labelworks/annoqueue/internal/queue"
	"github.com/labelworks/annoqueue/internal/repository"
	"github.com/labelworks/annoqueue/internal/training"
)

func main() {
	var (
		policyStr    = flag.String("policy", string(constants.OrderRandom), "queue fill ordering policy")
		fillInterval = flag.Duration("fill-interval", time.Minute, "how often queues are topped up and triggers checked")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	policy := constants.OrderPolicy(*policyStr)
	if !constants.ValidOrderPolicy(policy) {
		logger.Error("unknown ordering policy", "policy", *policyStr, "known", constants.OrderPolicies())
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	index, err := fastindex.NewRedisIndex(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Error("connecting to fast index", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := index.Close(); err != nil {
			logger.Warn("closing fast index", "error", err)
		}
	}()

	projectsRepo := repository.NewProjectRepository(entc, logger)
	dataRepo := repository.NewDataRepository(entc, logger)
	queuesRepo := repository.NewQueueRepository(entc, logger)
	assignmentsRepo := repository.NewAssignmentRepository(entc, logger)
	decisionsRepo := repository.NewDecisionRepository(entc, logger)
	modelsRepo := repository.NewModelRepository(entc, logger)

	// The index is a cache of the durable store; rebuild it before
	// serving anything. A store missing its schema halts startup here.
	reconciler := queue.NewReconciler(queuesRepo, assignmentsRepo, index, logger)
	if err := reconciler.Rebuild(ctx); err != nil {
		logger.Error("rebuilding fast index", "error", err)
		os.Exit(1)
	}

	store := featurestore.New(cfg.Storage.DataDir)
	if err := store.EnsureDirs(); err != nil {
		logger.Error("preparing artifact directories", "error", err)
		os.Exit(1)
	}

	trainer := training.NewHTTPTrainer(cfg.Trainer, logger)
	runner := training.NewRunner(trainer, projectsRepo, dataRepo, modelsRepo, store, logger)
	trainPool := training.NewPool(runner, logger,
		training.WithWorkers(cfg.Trainer.Workers),
		training.WithQueueSize(cfg.Trainer.QueueSize),
		training.WithJobTimeout(cfg.Trainer.Timeout),
	)

	filler := queue.NewFiller(queuesRepo, projectsRepo, index, logger)
	trigger := training.NewTrigger(projectsRepo, decisionsRepo, queuesRepo, filler, store, trainPool, logger)

	logger.Info("annoqueued started", "policy", policy, "fill_interval", fillInterval.String())

	ticker := time.NewTicker(*fillInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Trainer.Timeout)
			trainPool.Shutdown(shutdownCtx)
			cancel()
			return
		case <-ticker.C:
			sweep(ctx, queuesRepo, filler, trigger, policy, logger)
		}
	}
}

// sweep tops up every queue and runs the trigger check per project.
// Errors are logged and the sweep continues; one broken project must
// not starve the rest.
func sweep(
	ctx context.Context,
	queuesRepo repository.QueueRepository,
	filler *queue.Filler,
	trigger *training.Trigger,
	policy constants.OrderPolicy,
	logger *slog.Logger,
) {
	queues, err := queuesRepo.List(ctx)
	if err != nil {
		logger.Error("listing queues for sweep", "error", err)
		return
	}

	projectIDs := make(map[int]struct{})
	for _, q := range queues {
		projectIDs[q.ProjectID] = struct{}{}
		if _, err := filler.Fill(ctx, q, policy); err != nil {
			logger.Error("filling queue", "queue_id", q.ID, "error", err)
		}
	}

	for projectID := range projectIDs {
		signal, err := trigger.Check(ctx, projectID)
		if err != nil {
			logger.Error("trigger check", "project_id", projectID, "error", err)
			continue
		}
		if signal != training.SignalNone {
			logger.Info("trigger fired", "project_id", projectID, "signal", signal)
		}
	}
}
