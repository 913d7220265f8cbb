package localfs

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	if err := storage.Save(ctx, "an-1_notice.jpg", bytes.NewBufferString("img-bytes")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rc, err := storage.Open(ctx, "an-1_notice.jpg")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "img-bytes" {
		t.Fatalf("got %q, want img-bytes", raw)
	}
}

func TestRejectsPathLikeKeys(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	for _, key := range []string{"", "../escape.jpg", "a/b.jpg", `a\b.jpg`} {
		if err := storage.Save(ctx, key, bytes.NewBufferString("x")); err == nil {
			t.Fatalf("Save(%q) accepted a path-like key", key)
		}
		if _, err := storage.Open(ctx, key); err == nil {
			t.Fatalf("Open(%q) accepted a path-like key", key)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := storage.Open(context.Background(), "nope.jpg"); err == nil {
		t.Fatalf("Open() should fail for a missing file")
	}
}
