package adaptor

import (
	"net/http"

	"cinereview/internal/page"

	"github.com/gorilla/sessions"
)

const flashSessionName = "cinereview_flash"

// NewSessionStore returns the cookie store that carries toasts across the
// post/redirect/get cycle.
func NewSessionStore(secret string) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func saveFlashes(store sessions.Store, w http.ResponseWriter, r *http.Request, toasts []page.Notification) error {
	session, err := store.Get(r, flashSessionName)
	if err != nil && session == nil {
		return err
	}
	for _, toast := range toasts {
		session.AddFlash(toast.Message, string(toast.Level))
	}
	return session.Save(r, w)
}

// popFlashes reads and clears pending toasts. Unreadable cookies yield none.
func popFlashes(store sessions.Store, w http.ResponseWriter, r *http.Request) []page.Notification {
	session, err := store.Get(r, flashSessionName)
	if err != nil || session == nil {
		return nil
	}

	var toasts []page.Notification
	for _, level := range []page.Level{page.LevelSuccess, page.LevelError} {
		for _, msg := range session.Flashes(string(level)) {
			if text, ok := msg.(string); ok {
				toasts = append(toasts, page.Notification{Level: level, Message: text})
			}
		}
	}
	if len(toasts) > 0 {
		_ = session.Save(r, w)
	}
	return toasts
}
