package server

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// flashStore holds one-shot notices keyed by a session cookie, so a
// redirect after a form post can surface its outcome on the next page.
type flashStore struct {
	mu       sync.Mutex
	messages map[string]flashMessage
}

type flashMessage struct {
	Text    string
	IsError bool
}

func newFlashStore() *flashStore {
	return &flashStore{messages: make(map[string]flashMessage)}
}

func (s *flashStore) Set(w http.ResponseWriter, r *http.Request, text string, isError bool) {
	if text == "" {
		return
	}
	id := s.ensureSessionID(w, r)
	s.mu.Lock()
	s.messages[id] = flashMessage{Text: text, IsError: isError}
	s.mu.Unlock()
}

func (s *flashStore) Pop(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := s.ensureSessionID(w, r)
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[id]
	if !ok {
		return "", false
	}
	delete(s.messages, id)
	return message.Text, message.IsError
}

func (s *flashStore) ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie("gs_session")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := newSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     "gs_session",
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("sess-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", buf)
}
