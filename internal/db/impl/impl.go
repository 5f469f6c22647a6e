package impl

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/tsnews/newsdesk/internal/config"
	"github.com/tsnews/newsdesk/internal/db"
)

type dbImpl struct {
	Config config.Configuration
	db     *sql.DB
}

func New(config config.Configuration, d *sql.DB) db.DB {
	return &dbImpl{
		Config: config,
		db:     d,
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrNotFound
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return db.ErrConflict
	}

	log.Error().Err(err).Msg("database error")
	return err
}

func (d *dbImpl) WithTx(f func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = f(tx)
	return
}
