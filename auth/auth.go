package auth

import (
	"crypto/sha256"
	"net/http"
	"time"

	"lostfound/config"
	"lostfound/models"

	"github.com/gorilla/sessions"
)

var Store *sessions.CookieStore

func InitStore() {
	// Derive two 32-byte keys from the session key to ensure secure encryption
	// Auth key for signing (HMAC)
	authKey := sha256.Sum256([]byte(config.AppConfig.SessionKey + "auth"))
	// Encryption key for content encryption (AES)
	encKey := sha256.Sum256([]byte(config.AppConfig.SessionKey + "encryption"))

	Store = sessions.NewCookieStore(authKey[:], encKey[:])

	// MaxAge 0 makes the cookie a browser-session cookie, matching the
	// non-expiring variant. The authoritative expiry check is the lazy one
	// in Authorize.
	maxAge := 0
	if config.AppConfig.SessionMinutes > 0 {
		maxAge = config.AppConfig.SessionMinutes * 60
	}

	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   config.AppConfig.ListenPort != 8080, // Default to true unless dev port
		SameSite: http.SameSiteLaxMode,
	}
}

const SessionName = "lostfound-session"

// SetSession marks the client as authenticated. With a positive session
// lifetime an absolute expiry is recorded alongside the identity.
func SetSession(w http.ResponseWriter, r *http.Request, username, role string) {
	session, _ := Store.Get(r, SessionName)
	session.Values["username"] = username
	session.Values["role"] = role
	if minutes := config.AppConfig.SessionMinutes; minutes > 0 {
		session.Values["expires"] = time.Now().Add(time.Duration(minutes) * time.Minute).Unix()
	} else {
		delete(session.Values, "expires")
	}
	session.Save(r, w)
}

// Authorize returns the authenticated user for the request. An expired
// session is cleared and treated exactly like an anonymous one.
func Authorize(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	session, _ := Store.Get(r, SessionName)

	username, ok := session.Values["username"].(string)
	if !ok || username == "" {
		return models.User{}, false
	}

	if expires, ok := session.Values["expires"].(int64); ok {
		if time.Now().Unix() >= expires {
			ClearSession(w, r)
			return models.User{}, false
		}
	}

	role, _ := session.Values["role"].(string)
	return models.User{Username: username, Role: role}, true
}

func ClearSession(w http.ResponseWriter, r *http.Request) {
	session, _ := Store.Get(r, SessionName)
	for key := range session.Values {
		delete(session.Values, key)
	}
	session.Options.MaxAge = -1
	session.Save(r, w)
}
