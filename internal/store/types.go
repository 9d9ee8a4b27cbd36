package store

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// scope restricts a load to a single tournament. The zero value loads all.
type scope struct {
	tournamentID int64
	single       bool
}

func (sc scope) where(column string) (string, []any) {
	if !sc.single {
		return "", nil
	}
	return " WHERE " + column + " = ?", []any{sc.tournamentID}
}
