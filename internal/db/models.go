package db

import "database/sql"

// PlayerRecord is one row of a game table.
type PlayerRecord struct {
	UserId string         `db:"userId"`
	Data   sql.NullString `db:"data"`
}
