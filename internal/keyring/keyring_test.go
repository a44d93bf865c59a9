package keyring

import (
	"errors"
	"testing"

	"habitctl/internal/constants"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := Memory()

	if err := store.Set(constants.KeyringTokenKey, "abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(constants.KeyringTokenKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "abc123" {
		t.Errorf("Get = %q, want %q", got, "abc123")
	}

	if err := store.Delete(constants.KeyringTokenKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.Get(constants.KeyringTokenKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := Memory()

	if _, err := store.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_DeleteMissing(t *testing.T) {
	store := Memory()

	if err := store.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_SetEmptyValue(t *testing.T) {
	store := Memory()

	if err := store.Set(constants.KeyringTokenKey, ""); err == nil {
		t.Error("Set with empty value should fail")
	}
}

func TestMemoryStore_IndependentKeys(t *testing.T) {
	store := Memory()

	if err := store.Set(constants.KeyringTokenKey, "access"); err != nil {
		t.Fatalf("Set token failed: %v", err)
	}
	if err := store.Set(constants.KeyringRefreshTokenKey, "refresh"); err != nil {
		t.Fatalf("Set refresh token failed: %v", err)
	}

	if err := store.Delete(constants.KeyringTokenKey); err != nil {
		t.Fatalf("Delete token failed: %v", err)
	}

	got, err := store.Get(constants.KeyringRefreshTokenKey)
	if err != nil {
		t.Fatalf("Get refresh token failed: %v", err)
	}
	if got != "refresh" {
		t.Errorf("refresh token = %q, want %q", got, "refresh")
	}
}
