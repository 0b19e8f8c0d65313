package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/financa-pro/backend/internal/models"
)

var (
	ErrBackupMalformed = errors.New("the backup file is not valid JSON")
	ErrBackupInvalid   = errors.New("the backup file must contain the members and transactions collections")
)

// Backup renders the full snapshot as an indented JSON document.
func Backup(s models.Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// BackupFilename returns the download name for a backup taken now.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("financa-pro-backup-%s.json", now.Format("2006-01-02"))
}

// ParseBackup validates and decodes a backup document.
//
// Validation only checks that the members and transactions keys are
// present; there is no schema version. A valid document replaces
// everything, restore is never a merge.
func ParseBackup(data []byte) (models.Snapshot, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return models.Snapshot{}, ErrBackupMalformed
	}

	if _, ok := keys["members"]; !ok {
		return models.Snapshot{}, ErrBackupInvalid
	}

	if _, ok := keys["transactions"]; !ok {
		return models.Snapshot{}, ErrBackupInvalid
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return models.Snapshot{}, ErrBackupMalformed
	}

	return snapshot, nil
}
