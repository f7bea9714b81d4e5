package auth

import (
	"testing"

	"lostfound/config"
)

func TestPlaintextPolicy(t *testing.T) {
	reg, err := NewRegistry(PolicyPlaintext, config.DefaultUsers)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	for _, entry := range config.DefaultUsers {
		user, ok := reg.Verify(entry.Username, entry.Password)
		if !ok {
			t.Errorf("Verify failed for %s with correct password", entry.Username)
			continue
		}
		if user.Role != entry.Role {
			t.Errorf("Expected role %s for %s, got %s", entry.Role, entry.Username, user.Role)
		}

		if _, ok := reg.Verify(entry.Username, entry.Password+"x"); ok {
			t.Errorf("Verify succeeded for %s with wrong password", entry.Username)
		}
	}
}

func TestBcryptPolicy(t *testing.T) {
	entries := []config.UserEntry{
		{Username: "fatima", Password: "stud123", Role: "student"},
	}
	reg, err := NewRegistry(PolicyBcrypt, entries)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	user, ok := reg.Verify("fatima", "stud123")
	if !ok {
		t.Fatal("Verify failed with correct password under bcrypt policy")
	}
	if user.Role != "student" {
		t.Errorf("Expected role 'student', got '%s'", user.Role)
	}

	if _, ok := reg.Verify("fatima", "wrong"); ok {
		t.Error("Verify succeeded with wrong password under bcrypt policy")
	}

	// The stored verifier must be a hash, never the plaintext
	if reg.users["fatima"].verifier == "stud123" {
		t.Error("bcrypt policy retained the plaintext password")
	}
}

func TestUnknownUsernameFailsClosed(t *testing.T) {
	reg, err := NewRegistry(PolicyBcrypt, []config.UserEntry{
		{Username: "fatima", Password: "stud123", Role: "student"},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if _, ok := reg.Verify("nobody", "stud123"); ok {
		t.Error("Verify succeeded for unknown username")
	}

	if _, ok := reg.Verify("", ""); ok {
		t.Error("Verify succeeded for empty credentials")
	}
}

func TestPasswordHashing(t *testing.T) {
	password := "mypassword"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPasswordHash(password, hash) {
		t.Error("CheckPasswordHash failed for correct password")
	}

	if CheckPasswordHash("wrongpassword", hash) {
		t.Error("CheckPasswordHash succeeded for wrong password")
	}
}
