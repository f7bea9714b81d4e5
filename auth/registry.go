package auth

import (
	"lostfound/config"
	"lostfound/models"

	"golang.org/x/crypto/bcrypt"
)

// Credential policies.
const (
	PolicyBcrypt    = "bcrypt"
	PolicyPlaintext = "plaintext"
)

// dummyHash is compared against when the username does not exist, so a
// failed lookup costs the same as a failed password under the bcrypt policy.
const dummyHash = "$2a$14$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type credential struct {
	verifier string
	role     string
}

// Registry is the process-wide credential table. It is built once at startup
// from configuration and never mutated afterwards.
type Registry struct {
	policy string
	users  map[string]credential
}

// NewRegistry builds a registry from config entries. Under the bcrypt policy
// the configured passwords are hashed immediately and the plaintext is not
// retained.
func NewRegistry(policy string, entries []config.UserEntry) (*Registry, error) {
	reg := &Registry{
		policy: policy,
		users:  make(map[string]credential, len(entries)),
	}
	for _, entry := range entries {
		verifier := entry.Password
		if policy == PolicyBcrypt {
			hash, err := HashPassword(entry.Password)
			if err != nil {
				return nil, err
			}
			verifier = hash
		}
		reg.users[entry.Username] = credential{verifier: verifier, role: entry.Role}
	}
	return reg, nil
}

// Verify checks a username/password pair. Unknown usernames fail closed and
// are indistinguishable from a wrong password.
func (reg *Registry) Verify(username, password string) (models.User, bool) {
	cred, exists := reg.users[username]

	switch reg.policy {
	case PolicyPlaintext:
		// Direct comparison, timing-unsafe. This documents the vulnerable
		// baseline and must never be the production policy.
		if !exists || cred.verifier != password {
			return models.User{}, false
		}
	default:
		targetHash := cred.verifier
		if !exists {
			targetHash = dummyHash
		}
		if !CheckPasswordHash(password, targetHash) || !exists {
			return models.User{}, false
		}
	}

	return models.User{Username: username, Role: cred.role}, true
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
