// Package backup uploads a snapshot of the whole store to S3-compatible storage.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/cachever"
	"github.com/BruksfildServices01/barbearia/internal/config"
	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/storage"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

const keyPrefix = "barbearia/backup-"

// Uploader is the subset of *s3.Client used here.
type Uploader interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Document struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exportedAt"`
	Entries    map[string]string `json:"entries"`
}

// NewS3Client builds a client with static credentials. A custom endpoint
// switches to path-style addressing (MinIO and friends).
func NewS3Client(cfg config.BackupConfig) *s3.Client {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

type Exporter struct {
	store    storage.Store
	uploader Uploader
	bucket   string
	now      timezone.Clock
	log      *zap.SugaredLogger
}

func NewExporter(
	store storage.Store,
	uploader Uploader,
	bucket string,
	now timezone.Clock,
	log *zap.SugaredLogger,
) *Exporter {
	return &Exporter{
		store:    store,
		uploader: uploader,
		bucket:   bucket,
		now:      now,
		log:      log,
	}
}

// Export uploads the snapshot and returns the object key.
// A nil exporter means backups are not configured.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	if e == nil {
		return "", httperr.ErrBusiness(httperr.CodeBackupDisabled)
	}

	entries, err := e.store.All(ctx)
	if err != nil {
		return "", fmt.Errorf("snapshot store: %w", err)
	}

	now := e.now().UTC()
	body, err := json.Marshal(Document{
		Version:    cachever.Version,
		ExportedAt: now,
		Entries:    entries,
	})
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}

	key := ObjectKey(now)
	_, err = e.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload backup: %w", err)
	}

	e.log.Infow("backup uploaded", "bucket", e.bucket, "key", key, "entries", len(entries))
	return key, nil
}

func ObjectKey(t time.Time) string {
	return keyPrefix + t.UTC().Format("20060102T150405Z") + ".json"
}
