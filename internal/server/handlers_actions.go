package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

// Action handlers are the error boundary: every outcome, success or
// failure, becomes a flash message and a redirect. Validation text is
// shown verbatim; anything else gets a generic message.

func (s *Server) handleSubmitGame(w http.ResponseWriter, r *http.Request) {
	id, input, err := parseGameForm(r)
	if err != nil {
		s.redirectWithError(w, r, "/games", err.Error())
		return
	}
	if id == "" {
		if _, err := s.store.AddGame(input); err != nil {
			log.Printf("add game failed: %v", err)
			s.redirectWithError(w, r, "/games", "Failed to save game.")
			return
		}
		s.redirectWithMessage(w, r, "/games", "Game added!")
		return
	}
	if _, err := s.store.UpdateGame(id, input); err != nil {
		log.Printf("update game failed id=%s: %v", id, err)
		s.redirectWithError(w, r, "/games", "Failed to save game.")
		return
	}
	s.redirectWithMessage(w, r, "/games", "Game updated!")
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		s.redirectWithError(w, r, "/games", "Invalid game ID.")
		return
	}
	if err := s.store.DeleteGame(id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("delete game failed id=%s: %v", id, err)
		}
		s.redirectWithError(w, r, "/games", "Failed to delete game.")
		return
	}
	s.redirectWithMessage(w, r, "/games", "Game deleted successfully.")
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	current := r.FormValue("current") == "true"
	if err := s.store.ToggleFavorite(id, current); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("toggle favorite failed id=%s: %v", id, err)
		}
		s.redirectWithError(w, r, "/games", "Failed to update favorite status.")
		return
	}
	s.redirectWithMessage(w, r, "/games", "Favorite status updated.")
}

func (s *Server) handleSubmitSession(w http.ResponseWriter, r *http.Request) {
	input, err := parseSessionForm(r)
	if err != nil {
		s.redirectWithError(w, r, "/log", err.Error())
		return
	}
	if _, err := s.store.LogSession(input); err != nil {
		log.Printf("log session failed game_id=%s: %v", input.GameID, err)
		s.redirectWithError(w, r, "/log", "Failed to log session.")
		return
	}
	s.redirectWithMessage(w, r, "/log", "Play session logged successfully.")
}

func (s *Server) redirectWithMessage(w http.ResponseWriter, r *http.Request, target, message string) {
	s.flashes.Set(w, r, message, false)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) redirectWithError(w http.ResponseWriter, r *http.Request, target, message string) {
	s.flashes.Set(w, r, message, true)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
