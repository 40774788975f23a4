package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// RestoreResult summarizes what a restore replaced.
type RestoreResult struct {
	Products         int  `json:"products"`
	Orders           int  `json:"orders"`
	SettingsRestored bool `json:"settingsRestored"`
}

// BackupUsecase defines the interface for backup export and restore
type BackupUsecase interface {
	// Export builds a backup document of catalog, orders and settings
	Export(ctx context.Context) *entity.Backup

	// Restore replaces catalog, orders and settings from a backup document
	Restore(ctx context.Context, data []byte) (*RestoreResult, error)

	// Archive writes an export to the backup bucket
	Archive(ctx context.Context) (*entity.BackupArchive, error)

	// ListArchives lists the backups in the bucket, newest first
	ListArchives(ctx context.Context) ([]entity.BackupArchive, error)

	// RestoreArchive restores a backup stored in the bucket
	RestoreArchive(ctx context.Context, name string) (*RestoreResult, error)
}
