package db

import (
	"embed"

	"github.com/jmoiron/sqlx"

	"github.com/slime-this/bangerd/models"

	_ "modernc.org/sqlite"
)

// Store persists export history and device preferences. The catalog
// itself is never stored; it is rebuilt from sources at startup.
type Store interface {
	ApplyMigrations(migrations embed.FS) error
	InsertExport(record models.ExportRecord) error
	GetRecentExports(limit int) ([]models.ExportRecord, error)
	GetPreference(id string) (string, error)
	UpsertPreference(id, value string) error
}

func NewSqliteStore(dsn string) (*SqliteStore, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &SqliteStore{
		DB: db,
	}, nil
}
