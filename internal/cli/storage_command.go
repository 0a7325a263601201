package cli

import (
	"fmt"
	"path/filepath"
)

// StorageCommand handles the export, backup, and check subcommands
type StorageCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStorageCommand creates a new storage command handler
func NewStorageCommand(app *App) *StorageCommand {
	return &StorageCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Export writes all projects, events, and records to a CSV file in
// the data directory.
func (c *StorageCommand) Export() error {
	path, err := c.app.api.ExportCSV()
	if err != nil {
		return c.errorHandler.Handle("export data", err)
	}

	fmt.Printf("Exported data to %s\n", path)
	return nil
}

// BackupCreate writes a timestamped backup of the current state.
func (c *StorageCommand) BackupCreate() error {
	path, err := c.app.api.CreateBackup()
	if err != nil {
		return c.errorHandler.Handle("create backup", err)
	}

	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

// BackupList prints all backups, newest first.
func (c *StorageCommand) BackupList() error {
	backups, err := c.app.api.ListBackups()
	if err != nil {
		return c.errorHandler.Handle("list backups", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups yet")
		return nil
	}

	for _, path := range backups {
		fmt.Println(filepath.Base(path))
	}
	return nil
}

// BackupRestore loads a backup and saves it as the primary data file.
// Bare file names are resolved against the data directory.
func (c *StorageCommand) BackupRestore(name string) error {
	path := name
	if filepath.Dir(path) == "." {
		path = filepath.Join(c.app.config.Storage.DataDir, name)
	}

	if err := c.app.api.RestoreBackup(path); err != nil {
		return c.errorHandler.Handle("restore backup", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	fmt.Printf("Restored backup: %s\n", filepath.Base(name))
	return nil
}

// BackupClean deletes old backups, keeping the configured number of
// most recent ones.
func (c *StorageCommand) BackupClean(keep int) error {
	if keep < 0 {
		keep = c.app.config.Storage.BackupKeep
	}

	removed, err := c.app.api.CleanupBackups(keep)
	if err != nil {
		return c.errorHandler.Handle("clean backups", err)
	}

	fmt.Printf("Removed %d backup(s), kept the %d most recent\n", removed, keep)
	return nil
}

// Check scans the current state for referential integrity problems.
func (c *StorageCommand) Check() error {
	problems := c.app.api.CheckIntegrity()
	if len(problems) == 0 {
		fmt.Println("No integrity problems found")
		return nil
	}

	fmt.Printf("Found %d integrity problem(s):\n", len(problems))
	for _, problem := range problems {
		fmt.Printf("  - %s\n", problem)
	}
	return nil
}
