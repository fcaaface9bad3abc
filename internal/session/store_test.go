package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sellerpulse/pulse/internal/model"
)

func testUser(role model.Role) *model.User {
	return &model.User{
		ID:    "u-1",
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  role,
	}
}

func TestStore_LoginLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	store.Login("tok-123", testUser(model.RoleUser))

	sess := store.Current()
	if !sess.IsAuthenticated {
		t.Error("expected authenticated after login")
	}
	if sess.Token != "tok-123" {
		t.Errorf("token = %q", sess.Token)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected persisted session file: %v", err)
	}

	store.Logout()

	sess = store.Current()
	if sess.IsAuthenticated || sess.Token != "" || sess.User != nil {
		t.Errorf("expected cleared session, got %+v", sess)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected persisted session file removed on logout")
	}
}

func TestStore_Rehydrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	NewStore(path).Login("tok-456", testUser(model.RoleSeller))

	// Fresh store, same path: must pick up the persisted session
	store := NewStore(path)
	sess := store.Current()
	if !sess.IsAuthenticated || sess.Token != "tok-456" {
		t.Errorf("rehydrated session wrong: %+v", sess)
	}
	if sess.User == nil || sess.User.Name != "Ada" {
		t.Errorf("rehydrated user wrong: %+v", sess.User)
	}
}

func TestStore_RehydrateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if store.Current().IsAuthenticated {
		t.Error("corrupt file must yield an unauthenticated session")
	}
}

func TestStore_UpdateUserWithoutUser(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	// Must not panic and must stay a no-op
	store.UpdateUser(model.User{Name: "Bola"})

	if store.Current().User != nil {
		t.Error("UpdateUser without a user should be a no-op")
	}
}

func TestStore_UpdateUserMerges(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	store.Login("tok", testUser(model.RoleUser))

	store.UpdateUser(model.User{Name: "Bola"})

	u := store.Current().User
	if u.Name != "Bola" {
		t.Errorf("name = %q, want merged value", u.Name)
	}
	if u.Email != "ada@example.com" {
		t.Errorf("email = %q, want untouched value", u.Email)
	}
}

func TestStore_ReplaceUserClearsRevokedFields(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	verified := testUser(model.RoleSeller)
	verified.IsVerified = true
	store.Login("tok", verified)

	// Backend revoked the verification; a full refresh must propagate that
	refreshed := *testUser(model.RoleSeller)
	store.ReplaceUser(refreshed)

	u := store.Current().User
	if u.IsVerified {
		t.Error("revoked verification must not survive a user refresh")
	}
	if !store.Current().IsAuthenticated || store.Token() != "tok" {
		t.Error("replacing the user must not touch token or auth state")
	}
}

func TestStore_ReplaceUserWithoutUser(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	store.ReplaceUser(model.User{Name: "Bola"})

	if store.Current().User != nil {
		t.Error("ReplaceUser without a user should be a no-op")
	}
}

func TestStore_ToggleViewMode(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	// Buyers cannot toggle
	store.Login("tok", testUser(model.RoleUser))
	if got := store.ToggleViewMode(); got != model.ViewModeBuyer {
		t.Errorf("non-seller toggle = %q, want buyer", got)
	}

	// Sellers flip both ways
	store.Login("tok", testUser(model.RoleSeller))
	if got := store.ToggleViewMode(); got != model.ViewModeSeller {
		t.Errorf("first toggle = %q, want seller", got)
	}
	if got := store.ToggleViewMode(); got != model.ViewModeBuyer {
		t.Errorf("second toggle = %q, want buyer", got)
	}
}

func TestStore_PersistFailureSwallowed(t *testing.T) {
	// Point the store at an unwritable path; operations must not fail
	store := NewStore(filepath.Join(string(os.PathSeparator), "dev", "null", "nested", "session.json"))
	store.Login("tok", testUser(model.RoleUser))

	if !store.Current().IsAuthenticated {
		t.Error("login must succeed even when persistence fails")
	}
}
