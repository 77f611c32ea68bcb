package database

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/go-sql-driver/mysql"

	"github.com/motebang/tlaleho/core"
)

// Open connects to MySQL with a bounded connection pool; when the pool is
// exhausted further queries queue on it rather than fail.
func Open(conf *core.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", conf.Database.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	db.SetMaxOpenConns(conf.Database.MaxOpenConns)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "pinging database")
	}
	return db, nil
}

// Ping is the health probe behind GET /db-status.
func Ping(db *sqlx.DB) error {
	var one int
	return db.Get(&one, "SELECT 1")
}
