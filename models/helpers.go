package models

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// fetchOne scans a single row into dest, rejecting with a 404 when the query
// matches nothing.
func fetchOne(db *sqlx.DB, dest interface{}, notFoundMsg string, query string, args ...interface{}) error {
	if err := db.Get(dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound(notFoundMsg)
		}
		return err
	}
	return nil
}

// fetchMany scans all matching rows into dest. Zero rows is not an error.
func fetchMany(db *sqlx.DB, dest interface{}, query string, args ...interface{}) error {
	return db.Select(dest, query, args...)
}

func validOrder(order string) bool {
	return order == "asc" || order == "desc"
}
