// Package backup stores exported backup documents in a gocloud.dev bucket.
package backup

import (
	"context"
	"log/slog"

	"pos/config"
	"pos/internal/domain/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob" // registers gs:// for the url driver
	"gocloud.dev/blob/memblob"
	"gocloud.dev/blob/s3blob"
)

const (
	defaultLocalDir = "data"
	defaultPrefix   = "backups/"
	defaultRegion   = "us-east-1"
)

// OpenBucket opens the bucket named by backup.driver
func OpenBucket(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*blob.Bucket, error) {
	backupCfg := cfg.Backup
	if backupCfg == nil {
		backupCfg = &config.BackupConfig{Driver: constants.ArchiveDriverLocal}
	}

	switch backupCfg.Driver {
	case "", constants.ArchiveDriverLocal:
		dir := backupCfg.Local.Dir
		if dir == "" {
			dir = defaultLocalDir
		}
		logger.Info("Using local backup archive", slog.String("dir", dir))

		bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open backup dir %s", dir)
		}

		return bucket, nil

	case constants.ArchiveDriverMemory:
		logger.Warn("Using in-memory backup archive, archives are lost on restart")

		return memblob.OpenBucket(nil), nil

	case constants.ArchiveDriverS3:
		return openS3Bucket(ctx, backupCfg, logger)

	case constants.ArchiveDriverURL:
		if backupCfg.BucketURL == "" {
			return nil, errors.New("bucketUrl is required for url backup driver")
		}
		logger.Info("Using backup archive bucket", slog.String("url", backupCfg.BucketURL))

		bucket, err := blob.OpenBucket(ctx, backupCfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", backupCfg.BucketURL)
		}

		return bucket, nil

	default:
		return nil, errors.Errorf("unknown backup driver: %s", backupCfg.Driver)
	}
}

// openS3Bucket works with AWS S3 and S3-compatible stores such as MinIO or R2.
func openS3Bucket(ctx context.Context, backupCfg *config.BackupConfig, logger *slog.Logger) (*blob.Bucket, error) {
	s3Cfg := backupCfg.S3
	if s3Cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required for s3 backup driver")
	}
	region := s3Cfg.Region
	if region == "" {
		region = defaultRegion
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}
	if s3Cfg.AccessKey != "" && s3Cfg.SecretKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3Cfg.AccessKey, s3Cfg.SecretKey, ""),
		))
	}

	awsConfig, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if s3Cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	bucket, err := s3blob.OpenBucket(ctx, client, s3Cfg.Bucket, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open s3 bucket %s", s3Cfg.Bucket)
	}

	logger.Info("Using S3 backup archive",
		slog.String("bucket", s3Cfg.Bucket),
		slog.String("region", region),
	)

	return bucket, nil
}
