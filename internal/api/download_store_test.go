package api

import (
	"testing"
	"time"
)

func TestDownloadStore_PutGet(t *testing.T) {
	t.Parallel()

	s := newDownloadStore()
	token := s.put("/tmp/out.csv", "listing.csv", time.Minute)
	if token == "" {
		t.Fatalf("empty token")
	}

	entry, ok := s.get(token)
	if !ok {
		t.Fatalf("token not found")
	}
	if entry.filePath != "/tmp/out.csv" || entry.fileName != "listing.csv" {
		t.Fatalf("entry = %+v", entry)
	}

	if _, ok := s.get("unknown"); ok {
		t.Fatalf("unknown token resolved")
	}
}

func TestDownloadStore_Expiry(t *testing.T) {
	t.Parallel()

	s := newDownloadStore()
	token := s.put("/tmp/out.csv", "listing.csv", -time.Second)
	if _, ok := s.get(token); ok {
		t.Fatalf("expired token resolved")
	}
}
