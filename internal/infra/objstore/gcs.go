package objstore

import (
	"context"
	"fmt"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/commands"
)

// GCSStore writes generated designs to a GCS bucket and hands back
// token-style download URLs, which work without making objects public.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(ctx context.Context, cfg config.StorageConfig) (*GCSStore, func(), error) {
	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create storage client")
	}

	cleanup := func() {
		_ = client.Close()
	}

	return &GCSStore{client: client, bucket: cfg.Bucket}, cleanup, nil
}

func (s *GCSStore) UploadPNG(ctx context.Context, path string, data []byte) (string, error) {
	token := uuid.NewString()

	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	w.ContentType = "image/png"
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", errs.Wrap(err, "failed to write object")
	}
	if err := w.Close(); err != nil {
		return "", errs.Wrap(err, "failed to finalize object upload")
	}

	return downloadURL(s.bucket, path, token), nil
}

// downloadURL builds the tokenized public URL the storefront embeds
// directly in <img> tags.
func downloadURL(bucket, path, token string) string {
	return fmt.Sprintf(
		"https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(path), token,
	)
}

var _ commands.ObjectStore = (*GCSStore)(nil)
