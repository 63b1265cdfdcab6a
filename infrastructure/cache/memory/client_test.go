package memory

import (
	"context"
	"testing"
	"time"
)

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if cache == nil {
		t.Error("NewMemoryCache returned nil")
	}
}

func TestMemoryCache_Get_ExistingKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	key := "test-key"
	value := []byte("test-value")
	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := NewMemoryCache()

	got, err := cache.Get(context.Background(), "non-existent")

	if err == nil {
		t.Error("Get should return error for non-existent key")
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestMemoryCache_Get_ExpiredKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "test-key", []byte("test-value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	got, err := cache.Get(ctx, "test-key")

	if err == nil {
		t.Error("Get should return error for expired key")
	}
	if got != nil {
		t.Error("Get should return nil value for expired key")
	}
}

func TestMemoryCache_Get_ReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "test-key", []byte("original"), time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, _ := cache.Get(ctx, "test-key")
	got[0] = 'X'

	again, _ := cache.Get(ctx, "test-key")
	if string(again) != "original" {
		t.Errorf("cached value was mutated through a returned slice: %s", string(again))
	}
}

func TestMemoryCache_Set_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "test-key", []byte("test-value"), 0); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	if _, err := cache.Get(ctx, "test-key"); err != nil {
		t.Errorf("Get returned error for non-expiring key: %v", err)
	}
}

func TestMemoryCache_Set_OverwritesValue(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "test-key", []byte("first"), time.Hour)
	cache.Set(ctx, "test-key", []byte("second"), time.Hour)

	got, err := cache.Get(ctx, "test-key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get returned %s, want second", string(got))
	}
}

func TestMemoryCache_Delete_RemovesKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "test-key", []byte("test-value"), time.Hour)

	if err := cache.Delete(ctx, "test-key"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "test-key"); err == nil {
		t.Error("Get should return error after Delete")
	}
}

func TestMemoryCache_Delete_NonExistentKeyIsNotAnError(t *testing.T) {
	cache := NewMemoryCache()

	if err := cache.Delete(context.Background(), "non-existent"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should return error for cancelled context")
	}
	if err := cache.Set(ctx, "key", []byte("value"), time.Hour); err == nil {
		t.Error("Set should return error for cancelled context")
	}
	if err := cache.Delete(ctx, "key"); err == nil {
		t.Error("Delete should return error for cancelled context")
	}
}
