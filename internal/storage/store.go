package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"habitctl/internal/constants"
	"habitctl/internal/models"
)

// Store is the local sqlite settings database. It holds client
// preferences only; all habit data lives on the server.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)"); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	// Seed defaults on first run or after a partial write
	settings, err := s.GetSettings()
	if err != nil || settings.APIBaseURL == "" {
		defaults := models.Settings{
			Theme:         constants.DefaultTheme,
			APIBaseURL:    constants.DefaultAPIBaseURL,
			AnalyticsDays: constants.DefaultAnalyticsDays,
			DateFormat:    constants.DateFormat,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}
