package pg_db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const DefaultDbname = "third-party-application"

type PostgresDB struct {
	Conn *sql.DB
}

type Pg_Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Dbname   string
	SSLMode  string
}

// DataSourceName renders the lib/pq keyword/value connection string.
func (c Pg_Config) DataSourceName() string {
	dbname := c.Dbname
	if dbname == "" {
		dbname = DefaultDbname
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quote(c.Host), c.Port, quote(c.User), quote(c.Password), quote(dbname), sslmode)
}

// quote wraps values in single quotes so names like "third-party-application"
// or passwords with spaces survive the keyword/value parser.
func quote(v string) string {
	out := make([]byte, 0, len(v)+2)
	out = append(out, '\'')
	for i := 0; i < len(v); i++ {
		if v[i] == '\'' || v[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, v[i])
	}
	return string(append(out, '\''))
}

func NewPostgresDB(config Pg_Config) (*PostgresDB, error) {
	db, err := sql.Open("postgres", config.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %q: %w", config.Dbname, err)
	}

	return &PostgresDB{Conn: db}, nil
}

func (pg *PostgresDB) Close() error {
	return pg.Conn.Close()
}

func (pg *PostgresDB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return pg.Conn.Query(query, args...)
}
