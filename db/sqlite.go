package db

import (
	"embed"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/slime-this/bangerd/models"

	_ "modernc.org/sqlite"
)

type SqliteStore struct {
	DB *sqlx.DB
}

func (s *SqliteStore) ApplyMigrations(migrations embed.FS) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return err
	}

	if err := goose.Up(s.DB.DB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (s *SqliteStore) InsertExport(record models.ExportRecord) error {
	_, err := s.DB.Exec(
		"INSERT INTO export_records (id, created_at, action, filename, url, outcome, detail, dominant_colours) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		record.ID,
		record.CreatedAt,
		record.Action,
		record.Filename,
		record.URL,
		record.Outcome,
		record.Detail,
		record.DominantColours,
	)
	return err
}

func (s *SqliteStore) GetRecentExports(limit int) ([]models.ExportRecord, error) {
	records := []models.ExportRecord{}
	if err := s.DB.Select(&records, "SELECT id, created_at, action, filename, url, outcome, detail, dominant_colours FROM export_records ORDER BY created_at desc LIMIT ?", limit); err != nil {
		return records, err
	}
	return records, nil
}

func (s *SqliteStore) GetPreference(id string) (string, error) {
	p := models.Preference{}
	if err := s.DB.Get(&p, "SELECT id, value FROM preferences WHERE id = ?", id); err != nil {
		return "", err
	}
	return p.Value, nil
}

func (s *SqliteStore) UpsertPreference(id, value string) error {
	query := `
	INSERT INTO preferences (id, value)
	VALUES (?, ?)
	ON CONFLICT (id) DO UPDATE SET
	value = excluded.value
	WHERE id = ?
	`
	_, err := s.DB.Exec(query, id, value, id)
	return err
}
