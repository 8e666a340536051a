package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "qrmenu-session"

	isAdminSessionKey = "isAdmin"
)

// SessionStore carries the single authorization fact the app needs: whether
// this browser holds an authenticated admin session.
type SessionStore interface {
	IsAdmin(r *http.Request) bool
	SetAdmin(w http.ResponseWriter, r *http.Request) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A stale or tampered cookie decodes to a fresh session; log and move on.
		log.Printf("sessions: error decoding session cookie: %v", err)
	}
	return session
}

func (c *CookieSessionStore) IsAdmin(r *http.Request) bool {
	session := c.getSession(r)
	if session == nil {
		return false
	}
	isAdmin, ok := session.Values[isAdminSessionKey].(bool)
	return ok && isAdmin
}

func (c *CookieSessionStore) SetAdmin(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values[isAdminSessionKey] = true
	return session.Save(r, w)
}

func (c *CookieSessionStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
