package cache

import (
	"testing"
	"time"
)

func TestMemory_SetGet(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	key := Key("GET", "https://api.sellerpulse.app/api/sellers/top")
	if _, found := c.Get(key); found {
		t.Fatal("expected miss before Set")
	}

	if err := c.Set(key, []byte(`{"success":true}`), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("expected hit after Set")
	}
	if string(val) != `{"success":true}` {
		t.Errorf("got %q", val)
	}
}

func TestMemory_Expiry(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)
	key := Key("GET", "https://api.sellerpulse.app/api/sellers/all")

	if err := c.Set(key, []byte("x"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Error("expected entry to expire")
	}
}

func TestKey_DistinguishesMethodAndURL(t *testing.T) {
	a := Key("GET", "https://x/api/sellers/top")
	b := Key("GET", "https://x/api/sellers/all")
	c := Key("POST", "https://x/api/sellers/top")

	if a == b || a == c {
		t.Error("keys must differ per method and URL")
	}
}
