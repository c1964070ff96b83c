package session

import (
	"testing"
	"time"
)

func TestLoginLookupLogout(t *testing.T) {
	s := NewStore(time.Hour)
	if err := s.AddUser("casemanager", "open sesame"); err != nil {
		t.Fatalf("AddUser: %v", err)
	}

	if _, ok := s.Login("casemanager", "wrong"); ok {
		t.Error("login with wrong password should fail")
	}
	if _, ok := s.Login("nobody", "open sesame"); ok {
		t.Error("login with unknown user should fail")
	}

	token, ok := s.Login("casemanager", "open sesame")
	if !ok {
		t.Fatal("login with correct credentials failed")
	}

	user, ok := s.Lookup(token)
	if !ok || user != "casemanager" {
		t.Errorf("Lookup = (%q, %v), want (casemanager, true)", user, ok)
	}

	s.Logout(token)
	if _, ok := s.Lookup(token); ok {
		t.Error("token should be invalid after logout")
	}
}

func TestLookup_Expiry(t *testing.T) {
	s := NewStore(30 * time.Minute)
	current := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	if err := s.AddUser("cm", "pw"); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	token, ok := s.Login("cm", "pw")
	if !ok {
		t.Fatal("login failed")
	}

	current = current.Add(29 * time.Minute)
	if _, ok := s.Lookup(token); !ok {
		t.Error("session should still be valid inside the TTL")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := s.Lookup(token); ok {
		t.Error("session should expire after the TTL")
	}
}
