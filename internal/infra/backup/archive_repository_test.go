package backup

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pos/config"
	"pos/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestArchiveRepository_PutGetList(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	repo := NewArchiveRepository(bucket, "backups")

	require.NoError(t, repo.Put(ctx, "backup-20251014-090000.json", []byte(`{"version":"1.0"}`)))
	require.NoError(t, repo.Put(ctx, "backup-20251015-103000.json", []byte(`{"version":"1.0","orders":[]}`)))

	// Objects outside the archive layout are ignored.
	require.NoError(t, bucket.WriteAll(ctx, "backups/notes.txt", []byte("x"), nil))
	require.NoError(t, bucket.WriteAll(ctx, "backups/old/backup-20240101-000000.json", []byte("{}"), nil))
	require.NoError(t, bucket.WriteAll(ctx, "other.json", []byte("{}"), nil))

	data, err := repo.Get(ctx, "backup-20251015-103000.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0","orders":[]}`, string(data))

	stored, err := bucket.ReadAll(ctx, "backups/backup-20251014-090000.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0"}`, string(stored))

	archives, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, archives, 2)
	assert.Equal(t, "backup-20251015-103000.json", archives[0].Name)
	assert.Equal(t, "backup-20251014-090000.json", archives[1].Name)
	assert.Equal(t, int64(len(`{"version":"1.0"}`)), archives[1].Size)
	assert.False(t, archives[0].ModifiedAt.IsZero())
}

func TestArchiveRepository_ListEmpty(t *testing.T) {
	repo := NewArchiveRepository(memblob.OpenBucket(nil), defaultPrefix)

	archives, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, archives)
	assert.Empty(t, archives)
}

func TestArchiveRepository_GetMissing(t *testing.T) {
	repo := NewArchiveRepository(memblob.OpenBucket(nil), defaultPrefix)

	_, err := repo.Get(context.Background(), "backup-20251015-103000.json")
	assert.ErrorIs(t, err, repository.ErrArchiveNotFound)
}

func TestArchiveRepository_RejectsPathNames(t *testing.T) {
	ctx := context.Background()
	repo := NewArchiveRepository(memblob.OpenBucket(nil), defaultPrefix)

	for _, name := range []string{"", "..", "../settings.json", "nested/backup.json", `..\backup.json`} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, repo.Put(ctx, name, []byte("{}")))

			_, err := repo.Get(ctx, name)
			assert.ErrorIs(t, err, repository.ErrArchiveNotFound)
		})
	}
}

func TestOpenBucket(t *testing.T) {
	localCfg := &config.BackupConfig{Driver: "local"}
	localCfg.Local.Dir = t.TempDir()

	tests := []struct {
		name    string
		cfg     *config.BackupConfig
		wantErr string
	}{
		{name: "local", cfg: localCfg},
		{name: "memory", cfg: &config.BackupConfig{Driver: "memory"}},
		{name: "url", cfg: &config.BackupConfig{Driver: "url", BucketURL: "mem://"}},
		{name: "url without bucket", cfg: &config.BackupConfig{Driver: "url"}, wantErr: "bucketUrl is required"},
		{name: "s3 without bucket", cfg: &config.BackupConfig{Driver: "s3"}, wantErr: "s3 bucket is required"},
		{name: "unknown", cfg: &config.BackupConfig{Driver: "ftp"}, wantErr: "unknown backup driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, err := OpenBucket(context.Background(), &config.Config{Backup: tt.cfg}, testLogger())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NoError(t, bucket.Close())
		})
	}
}

func TestNewRepository_LocalDirectory(t *testing.T) {
	ctx := context.Background()
	backupCfg := &config.BackupConfig{Driver: "local", Prefix: "arsip"}
	backupCfg.Local.Dir = t.TempDir()

	lc := fxtest.NewLifecycle(t)
	repo, err := NewRepository(Params{
		Lc:     lc,
		Ctx:    ctx,
		Config: &config.Config{Backup: backupCfg},
		Logger: testLogger(),
	})
	require.NoError(t, err)
	lc.RequireStart()

	require.NoError(t, repo.Put(ctx, "backup-20251015-103000.json", []byte("{}")))
	archives, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, archives, 1)
	assert.Equal(t, "backup-20251015-103000.json", archives[0].Name)

	lc.RequireStop()
}
