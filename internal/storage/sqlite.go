// Package storage provides the Persister implementations the store
// mirrors its snapshot into.
package storage

import (
	"encoding/json"
	"errors"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/financa-pro/backend/internal/models"
)

// SnapshotKey is the key the snapshot document is stored under. It is
// the storage key of the application the data format comes from, kept
// so backups and databases stay interchangeable.
const SnapshotKey = "financa_pro_v3_data"

// ErrGeneral hides driver errors we cannot turn into something a user
// can act on. The real error is logged.
var ErrGeneral = errors.New("an error occurred on the server during your request")

// snapshotRow is the single-row key-value table the snapshot lives in.
type snapshotRow struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string {
	return "snapshots"
}

// SQLite persists the snapshot document into a sqlite key-value table.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (and migrates) the database at the given DSN.
func NewSQLite(dsn string) (*SQLite, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&snapshotRow{})
	if err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Load reads the snapshot document, if one exists.
func (s *SQLite) Load() (models.Snapshot, bool, error) {
	var row snapshotRow
	err := s.db.First(&row, "key = ?", SnapshotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, describe(err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(row.Data, &snapshot); err != nil {
		return models.Snapshot{}, false, err
	}

	return snapshot, true, nil
}

// Save overwrites the snapshot document.
func (s *SQLite) Save(snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	err = s.db.Save(&snapshotRow{Key: SnapshotKey, Data: data}).Error
	if err != nil {
		return describe(err)
	}

	return nil
}

// Clear deletes the snapshot document.
func (s *SQLite) Clear() error {
	err := s.db.Delete(&snapshotRow{Key: SnapshotKey}).Error
	if err != nil {
		return describe(err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// describe replaces raw driver errors with a general message. We cannot
// give users anything helpful for these, so the original is logged for
// the server admin instead.
func describe(err error) error {
	var driverErr *go_sqlite.Error
	if errors.As(err, &driverErr) || err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}
