// The initialization package contains functions that set up required dependencies such as the SQLite database.
package initialization

import (
	"database/sql"
	"time"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/tsnews/newsdesk/internal/config"
)

// SetupDB creates the database, if it does not yet exist, and applies all remaining migrations.
func SetupDB(cfg *config.Configuration, db *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	if err = mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}

	return EnsureAdmin(db, cfg)
}

func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
	}
	return db, err
}

// EnsureAdmin promotes the configured admin account, if it exists. Statistics
// permissions are derived from the admin column, so this is the only switch
// an operator has to flip.
func EnsureAdmin(db *sql.DB, cfg *config.Configuration) error {
	if cfg.AdminEmail == "" {
		return nil
	}

	res, err := db.Exec("UPDATE users SET admin = TRUE WHERE email = ? AND NOT admin", cfg.AdminEmail)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Str("email", cfg.AdminEmail).Msg("promoted administrator account")
	}
	return nil
}

// InitQueue opens the task queue database and builds the backlite client.
// Processors are registered by the packages that own the task types.
func InitQueue(cfg *config.Configuration) (*backlite.Client, error) {
	db, err := sql.Open("sqlite3", cfg.QueueDbUrl)
	if err != nil {
		return nil, err
	}

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		NumWorkers:      1,
		ReleaseAfter:    10 * time.Minute,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}
