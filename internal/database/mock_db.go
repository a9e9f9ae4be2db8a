package database

import (
	"database/sql"
	"errors"
)

var ErrNoQueryFunc = errors.New("mock db: no QueryFunc set")

type MockDB struct {
	QueryFunc func(string, ...interface{}) (*sql.Rows, error)
	Queries   []string
}

func (m *MockDB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	m.Queries = append(m.Queries, query)
	if m.QueryFunc != nil {
		return m.QueryFunc(query, args...)
	}
	return nil, ErrNoQueryFunc
}
