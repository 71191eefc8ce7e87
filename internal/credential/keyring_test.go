package credential

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyringStoreMissing(t *testing.T) {
	keyring.MockInit()
	s := NewKeyringStore()

	v, err := s.Get("theme")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != "" {
		t.Errorf("Get = %q, want empty", v)
	}
}

func TestKeyringStoreSetGetDelete(t *testing.T) {
	keyring.MockInit()
	s := NewKeyringStore()

	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := s.Get("theme")
	if err != nil || v != "dark" {
		t.Fatalf("Get = %q, %v; want dark, nil", v, err)
	}

	if err := s.Delete("theme"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("theme"); err != nil {
		t.Fatalf("Delete of missing entry failed: %v", err)
	}
	if v, _ := s.Get("theme"); v != "" {
		t.Errorf("Get after Delete = %q", v)
	}
}

func TestKeyringStoreEmptyValueDeletes(t *testing.T) {
	keyring.MockInit()
	s := NewKeyringStore()
	_ = s.Set("theme", "light")

	if err := s.Set("theme", ""); err != nil {
		t.Fatalf("Set empty failed: %v", err)
	}
	if v, _ := s.Get("theme"); v != "" {
		t.Errorf("Get = %q, want empty", v)
	}
}

func TestKeyringStoreServicesAreIsolated(t *testing.T) {
	keyring.MockInit()
	a := NewKeyringStoreForService("thememode-a")
	b := NewKeyringStoreForService("thememode-b")

	_ = a.Set("theme", "dark")
	if v, _ := b.Get("theme"); v != "" {
		t.Errorf("service b saw %q from service a", v)
	}
}

func TestKeyringStoreError(t *testing.T) {
	boom := errors.New("keyring locked")
	keyring.MockInitWithError(boom)
	s := NewKeyringStore()

	if _, err := s.Get("theme"); !errors.Is(err, boom) {
		t.Errorf("Get error = %v, want %v", err, boom)
	}
	if err := s.Set("theme", "dark"); !errors.Is(err, boom) {
		t.Errorf("Set error = %v, want %v", err, boom)
	}
}
