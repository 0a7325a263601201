package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"project-tracker/internal/errors"
	"project-tracker/internal/logging"
)

const (
	dataFileName    = "app_data.json"
	backupPrefix    = "backup_"
	backupSuffix    = ".json"
	stampFormat     = "20060102_150405"
	dirPermissions  = 0755
	filePermissions = 0644
)

// Store persists snapshots as a single JSON document under a data
// directory, alongside timestamped backups and CSV exports.
type Store struct {
	dataDir string
}

// New creates a store rooted at dataDir, creating the directory if
// needed.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, dirPermissions); err != nil {
		return nil, errors.NewStorageError("create data directory", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// DataFilePath returns the path of the primary data document.
func (s *Store) DataFilePath() string {
	return filepath.Join(s.dataDir, dataFileName)
}

// Save writes the snapshot to the primary data document.
func (s *Store) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.NewStorageError("encode snapshot", err)
	}

	if err := os.WriteFile(s.DataFilePath(), data, filePermissions); err != nil {
		return errors.NewStorageError("write data file", err)
	}

	logging.Debugf("saved snapshot to %s\n", s.DataFilePath())
	return nil
}

// Load reads the primary data document. A missing file yields an empty
// snapshot.
func (s *Store) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.DataFilePath())
	if os.IsNotExist(err) {
		logging.Debugln("no data file found, starting empty")
		return NewSnapshot(), nil
	}
	if err != nil {
		return Snapshot{}, errors.NewStorageError("read data file", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.NewStorageError("decode snapshot", err)
	}
	return snap, nil
}

// CreateBackup writes the snapshot to a timestamped backup file and
// returns its path.
func (s *Store) CreateBackup(snap Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", errors.NewStorageError("encode snapshot", err)
	}

	stamp := time.Now().UTC().Format(stampFormat)
	path := filepath.Join(s.dataDir, backupPrefix+stamp+backupSuffix)
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return "", errors.NewStorageError("write backup file", err)
	}

	return path, nil
}

// RestoreBackup reads a snapshot from a backup file.
func (s *Store) RestoreBackup(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Snapshot{}, errors.NewNotFoundError("backup file", path)
	}
	if err != nil {
		return Snapshot{}, errors.NewStorageError("read backup file", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.NewStorageError("decode backup", err)
	}
	return snap, nil
}

// ListBackups returns all backup file paths, newest first.
func (s *Store) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, errors.NewStorageError("read data directory", err)
	}

	backups := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, backupSuffix) {
			backups = append(backups, filepath.Join(s.dataDir, name))
		}
	}

	// Timestamped names sort newest-first in reverse order
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

// DeleteBackup removes a backup file.
func (s *Store) DeleteBackup(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.NewStorageError("delete backup file", err)
	}
	return nil
}

// CleanupBackups deletes all but the most recent keep backups and
// returns the number removed.
func (s *Store) CleanupBackups(keep int) (int, error) {
	backups, err := s.ListBackups()
	if err != nil {
		return 0, err
	}
	if len(backups) <= keep {
		return 0, nil
	}

	deleted := 0
	for _, path := range backups[keep:] {
		if err := s.DeleteBackup(path); err != nil {
			logging.Debugf("failed to delete backup %s: %v\n", path, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

// DataDirSize returns the total size in bytes of the files in the data
// directory.
func (s *Store) DataDirSize() (int64, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return 0, errors.NewStorageError("read data directory", err)
	}

	var total int64
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

// exportPath returns a timestamped CSV export path.
func (s *Store) exportPath() string {
	stamp := time.Now().UTC().Format(stampFormat)
	return filepath.Join(s.dataDir, fmt.Sprintf("export_%s.csv", stamp))
}
