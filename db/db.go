package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const (
	dbDriver = "sqlite3"
	dbSource = "./data/suggestions.db"
)

// DB is the global database connection pool.
var DB *sql.DB

// InitDB initializes the SQLite database and creates tables if they don't exist.
func InitDB() {
	var err error
	DB, err = sql.Open(dbDriver, dbSource)
	if err != nil {
		zap.S().Fatalw("failed to open database", "source", dbSource, "error", err)
	}

	// createTables is defined in migrate.go
	createTables()

	zap.S().Infow("database initialized", "source", dbSource)
}
