package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/export"
	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/ingest"
	"github.com/labelworks/annoqueue/internal/projects"
	"github.com/labelworks/annoqueue/internal/queue"
	"github.com/labelworks/annoqueue/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		dbPath    = flag.String("db", "annoqueue.db", "SQLite database file path")
		name      = flag.String("project", "", "project to create or ingest into (required)")
		classStr  = flag.String("classifier", string(constants.ClassifierLogisticRegression), "classifier kind for a new project")
		labelsStr = flag.String("labels", "", "comma-separated label names for a new project")
		dataPath  = flag.String("data", "", "CSV/TSV file of texts to ingest")
		policyStr = flag.String("policy", string(constants.OrderRandom), "queue fill ordering policy")
		out       = flag.String("out", "", "output XLSX file path for labeled items")
	)
	flag.Parse()

	if *name == "" {
		printError("Error: --project is required\n")
		os.Exit(1)
	}
	policy := constants.OrderPolicy(*policyStr)
	if !constants.ValidOrderPolicy(policy) {
		printError("Error: unknown --policy %q, known: %v\n", *policyStr, constants.OrderPolicies())
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	path := *dbPath
	if *inmem {
		path = "file:annoqueue?mode=memory&cache=shared"
	}
	entc, err := repository.OpenSQLite(path, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("closing database", "error", cerr)
		}
	}()

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	// Wire repositories over a local in-process index
	projectsRepo := repository.NewProjectRepository(entc, logger)
	queuesRepo := repository.NewQueueRepository(entc, logger)
	dataRepo := repository.NewDataRepository(entc, logger)
	decisionsRepo := repository.NewDecisionRepository(entc, logger)

	index := fastindex.NewMemoryIndex()
	filler := queue.NewFiller(queuesRepo, projectsRepo, index, logger)
	setup := projects.NewService(projectsRepo, queuesRepo, filler, logger)
	ingestor := ingest.NewService(dataRepo, logger)

	labels := strings.Split(*labelsStr, ",")
	project, q, err := setup.CreateProject(ctx, projects.CreateProjectRequest{
		Name:       *name,
		Classifier: *classStr,
		Labels:     labels,
		Policy:     policy,
	})
	if err != nil {
		logger.Error("failed to create project", "error", err)
		os.Exit(1)
	}

	if *dataPath != "" {
		n, err := ingestor.IngestFile(ctx, project.ID, *dataPath)
		if err != nil {
			logger.Error("failed to ingest data", "path", *dataPath, "error", err)
			os.Exit(1)
		}
		logger.Info("ingested data file", "path", *dataPath, "items", n)

		added, err := filler.Fill(ctx, q, policy)
		if err != nil {
			logger.Error("failed to fill queue", "queue_id", q.ID, "error", err)
			os.Exit(1)
		}
		logger.Info("queue filled", "queue_id", q.ID, "added", added)
	}

	if *out != "" {
		svc := export.NewService(decisionsRepo, logger)
		bytes, err := svc.ExportLabelsXLSX(ctx, project.ID)
		if err != nil {
			logger.Error("failed to export labels", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, bytes, 0o644); err != nil {
			logger.Error("failed to write export file", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("labels exported", "path", *out)
	}
}
