package history

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresInfo holds the connection parameters of the history database
type PostgresInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// DSN renders the lib/pq connection string
func (pi PostgresInfo) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pi.Host, pi.Port, pi.User, pi.Password, pi.Database)
}

// Postgres is the migrated database handle shared by the store and its
// listeners
type Postgres struct {
	db  *sql.DB
	dsn string
}

// NewPostgres connects to the database and applies pending migrations
func NewPostgres(info PostgresInfo) (*Postgres, error) {
	dsn := info.DSN()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	p := &Postgres{db: db, dsn: dsn}
	if err := p.migrate(pgMigration); err != nil {
		return nil, err
	}

	return p, nil
}

// Close releases the underlying connection pool
func (p *Postgres) Close() error {
	return p.db.Close()
}

var pgMigration = []string{
	`CREATE TABLE history (
id uuid PRIMARY KEY,
user_id VARCHAR(255) NOT NULL,
video_title TEXT NOT NULL,
quality VARCHAR(32) NOT NULL,
format VARCHAR(32) NOT NULL,
size VARCHAR(32) NOT NULL,
media_type VARCHAR(16) NOT NULL,
created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX history_user_created ON history (user_id, created_at DESC)`,
	`CREATE FUNCTION notify_history_change() RETURNS trigger AS $$
BEGIN
  PERFORM pg_notify('history_events', COALESCE(NEW.user_id, OLD.user_id));
  RETURN NULL;
END;
$$ LANGUAGE plpgsql`,
	`CREATE TRIGGER history_changed
AFTER INSERT OR DELETE ON history
FOR EACH ROW EXECUTE FUNCTION notify_history_change()`,
}

// migrate applies the wanted migrations that are not registered yet. The
// registry keeps the executed queries in order; a diverging history is an
// error, never silently patched.
func (p *Postgres) migrate(wanted []string) error {
	query := `CREATE TABLE IF NOT EXISTS migration
("id" SERIAL PRIMARY KEY, "query" TEXT)`
	if _, err := p.db.Exec(query); err != nil {
		return err
	}

	// find existing
	rows, err := p.db.Query(`SELECT query FROM migration ORDER BY id`)
	if err != nil {
		return err
	}

	existing := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return err
		}
		existing = append(existing, query)
	}
	rows.Close()

	// compare
	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	// execute missing
	for _, query := range missing {
		if _, err := p.db.Exec(query); err != nil {
			return err
		}

		// register
		if _, err := p.db.Exec(`
INSERT INTO migration
(query) VALUES ($1)
`, query); err != nil {
			return err
		}
	}

	return nil
}

func compareMigrations(wanted, existing []string) ([]string, error) {
	needed := []string{}
	if len(wanted) < len(existing) {
		return []string{}, fmt.Errorf("not enough migrations")
	}

	for i, want := range wanted {
		switch {
		case i >= len(existing):
			needed = append(needed, want)
		case want == existing[i]:
			// do nothing
		case want != existing[i]:
			return []string{}, fmt.Errorf("incompatible migration: %v", want)
		}
	}

	return needed, nil
}
