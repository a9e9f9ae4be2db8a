package database

import "database/sql"

// DatabaseConnection is the handle every report query goes through. Only reads are issued.
type DatabaseConnection interface {
	Query(string, ...interface{}) (*sql.Rows, error)
}
