package repository

import (
	"context"

	"pos/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrArchiveNotFound is returned when a named backup does not exist.
var ErrArchiveNotFound = errors.New("backup archive not found")

// BackupArchiveRepository stores exported backup documents outside the state store.
type BackupArchiveRepository interface {
	// Put writes a backup document under name.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads the backup document stored under name.
	Get(ctx context.Context, name string) ([]byte, error)

	// List returns every stored backup, newest first.
	List(ctx context.Context) ([]entity.BackupArchive, error)
}
