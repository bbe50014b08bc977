package dataset

import (
	"errors"
	"testing"
	"time"
)

func TestCacheLoadsOnce(t *testing.T) {
	calls := 0
	c := NewCache(time.Hour, func() ([]Course, error) {
		calls++
		return []Course{{ID: "a"}}, nil
	})

	for i := 0; i < 3; i++ {
		records, err := c.Records()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
}

func TestCacheInvalidate(t *testing.T) {
	calls := 0
	c := NewCache(time.Hour, func() ([]Course, error) {
		calls++
		return []Course{}, nil
	})

	if _, err := c.Records(); err != nil {
		t.Fatal(err)
	}
	c.Invalidate()
	if _, err := c.Records(); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("load called %d times after invalidation, want 2", calls)
	}
}

func TestCacheLoadError(t *testing.T) {
	wantErr := errors.New("broken source")
	c := NewCache(0, func() ([]Course, error) {
		return nil, wantErr
	})

	if _, err := c.Records(); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}
