package repository

import (
	"database/sql"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/labelworks/annoqueue/gen/ent"
)

// OpenSQLite opens a CGO-free sqlite database for local and dev runs. Not
// meant for multi-process deployments; the dispatch path assumes the durable
// store supports concurrent writers, which sqlite only approximates.
func OpenSQLite(path string, logger *slog.Logger) (*ent.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite", path+sep+"_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		logger.Error("failed to open sqlite database", "path", path, "error", err)
		return nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	logger.Info("opened sqlite database", "path", path)
	return ent.NewClient(ent.Driver(drv)), nil
}
