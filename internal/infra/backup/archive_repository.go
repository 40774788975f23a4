package backup

import (
	"context"
	"io"
	"log/slog"
	"path"
	"slices"
	"strings"

	"pos/config"
	"pos/internal/domain/entity"
	"pos/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const archiveContentType = "application/json"

type archiveRepository struct {
	bucket *blob.Bucket
}

// NewArchiveRepository scopes bucket to prefix. Names passed to Put and Get are
// plain file names; anything with a path separator is rejected.
func NewArchiveRepository(bucket *blob.Bucket, prefix string) repository.BackupArchiveRepository {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &archiveRepository{bucket: blob.PrefixedBucket(bucket, prefix)}
}

func validName(name string) bool {
	return name != "" && name == path.Base(name) && name != "." && name != ".." && !strings.Contains(name, "\\")
}

func (r *archiveRepository) Put(ctx context.Context, name string, data []byte) error {
	if !validName(name) {
		return errors.Errorf("invalid archive name %q", name)
	}

	if err := r.bucket.WriteAll(ctx, name, data, &blob.WriterOptions{ContentType: archiveContentType}); err != nil {
		return errors.Wrapf(err, "failed to write archive %s", name)
	}

	return nil
}

func (r *archiveRepository) Get(ctx context.Context, name string) ([]byte, error) {
	if !validName(name) {
		return nil, repository.ErrArchiveNotFound
	}

	data, err := r.bucket.ReadAll(ctx, name)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrArchiveNotFound
		}

		return nil, errors.Wrapf(err, "failed to read archive %s", name)
	}

	return data, nil
}

// List returns archives newest first. Only top-level .json objects count.
func (r *archiveRepository) List(ctx context.Context) ([]entity.BackupArchive, error) {
	archives := []entity.BackupArchive{}

	iter := r.bucket.List(&blob.ListOptions{Delimiter: "/"})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list archives")
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, ".json") {
			continue
		}

		archives = append(archives, entity.BackupArchive{
			Name:       obj.Key,
			Size:       obj.Size,
			ModifiedAt: obj.ModTime,
		})
	}

	slices.SortFunc(archives, func(a, b entity.BackupArchive) int {
		if c := b.ModifiedAt.Compare(a.ModifiedAt); c != 0 {
			return c
		}

		return strings.Compare(b.Name, a.Name)
	})

	return archives, nil
}

// Params holds dependencies for the archive repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRepository opens the configured bucket and closes it when the app stops.
func NewRepository(params Params) (repository.BackupArchiveRepository, error) {
	logger := params.Logger.With(slog.String("component", "backup"))

	bucket, err := OpenBucket(params.Ctx, params.Config, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing backup archive bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	prefix := defaultPrefix
	if params.Config.Backup != nil && params.Config.Backup.Prefix != "" {
		prefix = params.Config.Backup.Prefix
	}

	return NewArchiveRepository(bucket, prefix), nil
}

// Module provides the backup archive FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepository),
)
