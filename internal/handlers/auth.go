package handlers

import (
	"crypto/rand"
	"crypto/subtle"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"

	"github.com/bazaarhq/backoffice/internal/config"
)

const (
	sessionCookie = "admin_session"
	sessionMaxAge = 24 * time.Hour
)

// Auth gates the whole API behind the single shared admin password and
// a signed session cookie.
type Auth struct {
	cfg config.Config
	sc  *securecookie.SecureCookie
}

func NewAuth(cfg config.Config) *Auth {
	key := cfg.SessionKey
	if key == nil {
		// No configured key: mint one for this process. Sessions won't
		// survive a restart, which is fine for a single-admin tool.
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			log.Fatalf("session key: %v", err)
		}
		log.Println("ADMIN_SESSION_KEY not set; sessions reset on restart")
	}
	sc := securecookie.New(key, nil)
	sc.MaxAge(int(sessionMaxAge.Seconds()))
	return &Auth{cfg: cfg, sc: sc}
}

func (a *Auth) checkPassword(password string) bool {
	if a.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.AdminPassword)) == 1
}

// POST /login
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, "invalid request body")
		return
	}
	if !a.checkPassword(body.Password) {
		fail(w, "invalid password")
		return
	}

	session := map[string]string{"role": "admin"}
	encoded, err := a.sc.Encode(sessionCookie, session)
	if err != nil {
		fail(w, "login failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   a.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	okEmpty(w)
}

// POST /logout
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cfg.CookieSecure,
	})
	okEmpty(w)
}

// RequireAdmin is middleware: rejects requests without a valid signed
// session cookie. Auth failures are the one place a non-200 is used;
// they are transport-level, not business outcomes.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessionCookie)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: "unauthorized"})
			return
		}
		session := map[string]string{}
		if err := a.sc.Decode(sessionCookie, c.Value, &session); err != nil || session["role"] != "admin" {
			writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
