package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"backrooms/pkg/backrooms/level"
)

// PostgresStore keeps the level library in PostgreSQL, for shared
// authoring setups where several editors work against one database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to PostgreSQL and ensures the schema exists.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// initSchema creates the levels table
func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS levels (
		id SERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		seed BIGINT NOT NULL,
		document JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	_, err := ps.db.Exec(schema)
	return err
}

// SaveLevel stores a level document under a name, replacing any previous
// version.
func (ps *PostgresStore) SaveLevel(name string, doc *level.Document) error {
	data, err := level.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode level %q: %w", name, err)
	}

	query := `
	INSERT INTO levels (name, width, height, seed, document, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	ON CONFLICT (name) DO UPDATE
	SET width = $2, height = $3, seed = $4, document = $5, updated_at = NOW()`

	_, err = ps.db.Exec(query, name, doc.Width, doc.Height, doc.Seed, data)
	if err != nil {
		return fmt.Errorf("failed to save level %q: %w", name, err)
	}
	return nil
}

// LoadLevel loads a level document by name
func (ps *PostgresStore) LoadLevel(name string) (*level.Document, error) {
	var data []byte
	err := ps.db.QueryRow(`SELECT document FROM levels WHERE name = $1`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("level %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load level %q: %w", name, err)
	}
	return level.Unmarshal(data)
}

// ListLevels returns the stored level names in sorted order
func (ps *PostgresStore) ListLevels() ([]string, error) {
	rows, err := ps.db.Query(`SELECT name FROM levels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteLevel removes a level by name
func (ps *PostgresStore) DeleteLevel(name string) error {
	result, err := ps.db.Exec(`DELETE FROM levels WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete level %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("level %q not found", name)
	}
	return nil
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
