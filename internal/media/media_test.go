package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/storybite/storybite/internal/storage"
)

type mockPresigner struct {
	expiry time.Duration
	err    error
}

func (m *mockPresigner) GenerateDownloadURL(_ context.Context, name string, expiry time.Duration) (string, error) {
	m.expiry = expiry
	if m.err != nil {
		return "", m.err
	}
	return "https://s3.example.com/storybite/" + name + "?sig=1", nil
}

func TestLocalURL(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"rustic-bean.mp4", "/media/rustic-bean.mp4"},
		{"sandy lake.mp4", "/media/sandy%20lake.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLocal().URL(context.Background(), tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestURL_RejectsInvalidNames(t *testing.T) {
	bucket := NewBucket(&mockPresigner{}, 0)
	for _, name := range []string{"", "../secret.mp4", "a/b.mp4", `a\b.mp4`, ".hidden.mp4"} {
		if _, err := NewLocal().URL(context.Background(), name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("local %q: expected ErrInvalidName, got %v", name, err)
		}
		if _, err := bucket.URL(context.Background(), name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("bucket %q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestBucketURL_Presigns(t *testing.T) {
	presigner := &mockPresigner{}
	got, err := NewBucket(presigner, 30*time.Minute).URL(context.Background(), "sakura-cafe.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://s3.example.com/storybite/sakura-cafe.mp4?sig=1" {
		t.Errorf("unexpected URL %q", got)
	}
	if presigner.expiry != 30*time.Minute {
		t.Errorf("expected 30m expiry, got %s", presigner.expiry)
	}
}

func TestBucketURL_DefaultExpiry(t *testing.T) {
	presigner := &mockPresigner{}
	if _, err := NewBucket(presigner, 0).URL(context.Background(), "a.mp4"); err != nil {
		t.Fatal(err)
	}
	if presigner.expiry != DefaultURLExpiry {
		t.Errorf("expected default expiry, got %s", presigner.expiry)
	}
}

func TestBucketURL_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewBucket(&mockPresigner{err: boom}, 0).URL(context.Background(), "a.mp4")
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

type mockUploader struct {
	existing  map[string]bool
	headErr   error
	uploads   map[string]string
	remaining map[string]time.Duration // time left on each upload's context
}

func (m *mockUploader) HeadObject(_ context.Context, name string) (int64, string, error) {
	if m.headErr != nil {
		return 0, "", m.headErr
	}
	if m.existing[name] {
		return 1024, "video/mp4", nil
	}
	return 0, "", storage.ErrNotFound
}

func (m *mockUploader) UploadFile(ctx context.Context, name string, filePath string, contentType string) error {
	if _, err := os.Stat(filePath); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok && m.remaining != nil {
		m.remaining[name] = time.Until(deadline)
	}
	m.uploads[name] = contentType
	return nil
}

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestSync_UploadsMissingPlayableFiles(t *testing.T) {
	dir := writeFiles(t, "a.mp4", "b.mp4", "poster.webp", "notes.txt", ".DS_Store")
	uploader := &mockUploader{existing: map[string]bool{"a.mp4": true}, uploads: map[string]string{}}

	n, err := Sync(context.Background(), uploader, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 uploads, got %d", n)
	}
	var names []string
	for name := range uploader.uploads {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != "b.mp4" || names[1] != "poster.webp" {
		t.Errorf("unexpected uploads %v", names)
	}
	if uploader.uploads["b.mp4"] != "video/mp4" {
		t.Errorf("expected video/mp4, got %q", uploader.uploads["b.mp4"])
	}
}

func TestSync_BoundsEachUploadSeparately(t *testing.T) {
	dir := writeFiles(t, "a.mp4", "b.mp4")
	uploader := &mockUploader{uploads: map[string]string{}, remaining: map[string]time.Duration{}}

	if _, err := Sync(context.Background(), uploader, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"a.mp4", "b.mp4"} {
		left, ok := uploader.remaining[name]
		if !ok {
			t.Fatalf("expected a deadline on the %s upload", name)
		}
		if left <= UploadTimeout-time.Minute || left > UploadTimeout {
			t.Errorf("%s: expected about %v left, got %v", name, UploadTimeout, left)
		}
	}
}

func TestSync_StopsOnHeadError(t *testing.T) {
	dir := writeFiles(t, "a.mp4")
	uploader := &mockUploader{headErr: errors.New("connection refused"), uploads: map[string]string{}}

	if _, err := Sync(context.Background(), uploader, dir); err == nil {
		t.Error("expected error when the bucket cannot be checked")
	}
	if len(uploader.uploads) != 0 {
		t.Error("expected no uploads")
	}
}

func TestSync_MissingDir(t *testing.T) {
	uploader := &mockUploader{uploads: map[string]string{}}
	if _, err := Sync(context.Background(), uploader, filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"clip.mp4", "video/mp4", true},
		{"CLIP.MP4", "video/mp4", true},
		{"clip.webm", "video/webm", true},
		{"notes.txt", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, ok := ContentType(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ContentType(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
