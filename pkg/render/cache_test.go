package render

import (
	"errors"
	"testing"
)

func TestSourceCacheLoadsOnce(t *testing.T) {
	cache := NewSourceCache()
	calls := 0
	loader := func() (string, error) {
		calls++
		return "data:image/png;base64,xyz", nil
	}

	first, err := cache.Get("a.png", loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cache.Get("a.png", loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatal("expected cached value on second get")
	}
	if calls != 1 {
		t.Fatalf("expected one loader call, got %d", calls)
	}
}

func TestSourceCacheNilReceiver(t *testing.T) {
	var cache *SourceCache
	got, err := cache.Get("k", func() (string, error) { return "v", nil })
	if err != nil || got != "v" {
		t.Fatalf("expected direct loader call, got %q, %v", got, err)
	}
}

func TestSourceCacheErrorNotCached(t *testing.T) {
	cache := NewSourceCache()
	calls := 0
	failing := func() (string, error) {
		calls++
		return "", errors.New("boom")
	}
	if _, err := cache.Get("k", failing); err == nil {
		t.Fatal("expected error")
	}
	if _, err := cache.Get("k", failing); err == nil {
		t.Fatal("expected error on retry")
	}
	if calls != 2 {
		t.Fatalf("expected failures to not be cached, got %d calls", calls)
	}
}
