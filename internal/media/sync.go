package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/storybite/storybite/internal/storage"
)

type Uploader interface {
	HeadObject(ctx context.Context, name string) (int64, string, error)
	UploadFile(ctx context.Context, name string, filePath string, contentType string) error
}

var playable = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".webp": "image/webp",
}

// UploadTimeout bounds a single file upload during Sync.
const UploadTimeout = 10 * time.Minute

// Sync uploads every playable file in dir that is missing from the bucket
// and returns how many were uploaded. Existing objects are left alone.
func Sync(ctx context.Context, store Uploader, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read media dir: %w", err)
	}

	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		contentType, ok := ContentType(entry.Name())
		if !ok {
			continue
		}

		_, _, err := store.HeadObject(ctx, entry.Name())
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return uploaded, fmt.Errorf("check %s: %w", entry.Name(), err)
		}

		if err := upload(ctx, store, entry.Name(), filepath.Join(dir, entry.Name()), contentType); err != nil {
			return uploaded, err
		}
		slog.Info("media uploaded", "name", entry.Name(), "content_type", contentType)
		uploaded++
	}
	return uploaded, nil
}

func upload(ctx context.Context, store Uploader, name, path, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()
	return store.UploadFile(ctx, name, path, contentType)
}

// ContentType reports the MIME type for a playable asset name and whether
// the extension is one the site serves at all.
func ContentType(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	ct, ok := playable[ext]
	if !ok {
		return "", false
	}
	if byExt := mime.TypeByExtension(ext); strings.HasPrefix(byExt, ct) {
		return byExt, true
	}
	return ct, true
}
