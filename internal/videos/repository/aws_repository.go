package repository

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/videos"
)

type awsRepository struct {
	client   *s3.Client
	endpoint string
	bucket   string
}

func NewAwsRepository(client *s3.Client, cfg *config.Config) videos.AWSRepository {
	return &awsRepository{
		client:   client,
		endpoint: strings.TrimRight(cfg.S3.Endpoint, "/"),
		bucket:   cfg.S3.Bucket,
	}
}

// PutFile streams one staged local file into the bucket under a fresh key and
// returns the public URL used as the catalog reference.
func (a *awsRepository) PutFile(ctx context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open staged file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat staged file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(localPath))
	key := "assets/" + uuid.New().String() + ext
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	size := stat.Size()

	if _, err = a.client.PutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &a.bucket,
			Key:           &key,
			Body:          file,
			ContentLength: &size,
			ContentType:   &contentType,
		},
	); err != nil {
		return "", fmt.Errorf("failed to upload file : %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", a.endpoint, a.bucket, key), nil
}

// RemoveObject deletes the object a reference points at. S3 treats deleting
// an absent key as success, which keeps reclamation retries idempotent.
func (a *awsRepository) RemoveObject(ctx context.Context, ref string) error {
	key, err := a.keyFromRef(ref)
	if err != nil {
		return err
	}
	if _, err = a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &a.bucket,
		Key:    &key,
	}); err != nil {
		return fmt.Errorf("failed to remove object : %w", err)
	}
	return nil
}

func (a *awsRepository) keyFromRef(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid asset reference %q: %w", ref, err)
	}
	path := strings.TrimPrefix(u.Path, "/")
	key := strings.TrimPrefix(path, a.bucket+"/")
	if key == path || key == "" {
		return "", fmt.Errorf("asset reference %q is outside bucket %q", ref, a.bucket)
	}
	return key, nil
}
