// Package media resolves showcase asset names to URLs the browser can play
// and keeps the bucket copy of the assets in sync with a local directory.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var ErrInvalidName = errors.New("invalid media name")

// DefaultURLExpiry is how long presigned media URLs stay valid. Pages are
// rendered per request, so this only needs to outlast one visit.
const DefaultURLExpiry = 6 * time.Hour

// Local serves assets from the site itself under Prefix.
type Local struct {
	Prefix string
}

func NewLocal() Local {
	return Local{Prefix: "/media/"}
}

func (l Local) URL(_ context.Context, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return l.Prefix + url.PathEscape(name), nil
}

type Presigner interface {
	GenerateDownloadURL(ctx context.Context, name string, expiry time.Duration) (string, error)
}

// Bucket hands out presigned URLs for assets stored in S3.
type Bucket struct {
	store  Presigner
	expiry time.Duration
}

func NewBucket(store Presigner, expiry time.Duration) *Bucket {
	if expiry <= 0 {
		expiry = DefaultURLExpiry
	}
	return &Bucket{store: store, expiry: expiry}
}

func (b *Bucket) URL(ctx context.Context, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	u, err := b.store.GenerateDownloadURL(ctx, name, b.expiry)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", name, err)
	}
	return u, nil
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
