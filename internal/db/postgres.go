package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// OpenPostgres connects and applies migrations. A failed migration closes
// the connection before returning, so callers may retry.
func OpenPostgres(connectionString string) (*PostgresStore, error) {
	store, err := NewPostgresStore(connectionString)
	if err != nil {
		return nil, err
	}
	if err := store.migrateOrClose(store.Migrate); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) migrateOrClose(migrate func() error) error {
	if err := migrate(); err != nil {
		s.Close()
		return err
	}
	return nil
}

func (s *PostgresStore) Migrate() error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// GetPreference retrieves the stored preference of a client
func (s *PostgresStore) GetPreference(ctx context.Context, clientID string) (*models.Preference, error) {
	var pref models.Preference
	err := s.db.QueryRowContext(ctx, `
		SELECT id, client_id, color_scheme, created_at, updated_at
		FROM preferences
		WHERE client_id = $1
	`, clientID).Scan(&pref.ID, &pref.ClientID, &pref.ColorScheme, &pref.CreatedAt, &pref.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	return &pref, nil
}

// SavePreference inserts or replaces the preference of a client
func (s *PostgresStore) SavePreference(ctx context.Context, pref *models.Preference) error {
	if pref == nil {
		return fmt.Errorf("preference cannot be nil")
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO preferences (client_id, color_scheme, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (client_id) DO UPDATE SET
			color_scheme = EXCLUDED.color_scheme,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`, pref.ClientID, pref.ColorScheme).Scan(&pref.ID, &pref.CreatedAt, &pref.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
