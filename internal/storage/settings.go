package storage

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"habitctl/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "theme":
			settings.Theme = value
		case "api_base_url":
			settings.APIBaseURL = value
		case "analytics_days":
			if _, err := fmt.Sscanf(value, "%d", &settings.AnalyticsDays); err != nil {
				return models.Settings{}, fmt.Errorf("parsing analytics_days: %w", err)
			}
		case "date_format":
			settings.DateFormat = value
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

// SaveSettings writes settings to the database, skipping the write when
// nothing changed (compared by structure hash).
func (s *Store) SaveSettings(settings models.Settings) error {
	if current, err := s.GetSettings(); err == nil {
		currentHash, err1 := hashstructure.Hash(current, hashstructure.FormatV2, nil)
		newHash, err2 := hashstructure.Hash(settings, hashstructure.FormatV2, nil)
		if err1 == nil && err2 == nil && currentHash == newHash {
			return nil
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("theme", settings.Theme); err != nil {
		return err
	}
	if _, err := stmt.Exec("api_base_url", settings.APIBaseURL); err != nil {
		return err
	}
	if _, err := stmt.Exec("analytics_days", fmt.Sprintf("%d", settings.AnalyticsDays)); err != nil {
		return err
	}
	if _, err := stmt.Exec("date_format", settings.DateFormat); err != nil {
		return err
	}

	return tx.Commit()
}
