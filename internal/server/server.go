package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"gorm.io/gorm"

	"game-shelf/internal/config"
)

type Server struct {
	store   *Store
	cfg     config.Config
	flashes *flashStore
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		store:   NewStore(conn),
		cfg:     cfg,
		flashes: newFlashStore(),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/games", s.handleShelfView)
	r.Get("/log", s.handleLogView)
	r.Get("/stats", s.handleStatsView)
	r.Get("/play", s.handlePlayView)

	r.Post("/games", s.handleSubmitGame)
	r.Post("/games/{id}/delete", s.handleDeleteGame)
	r.Post("/games/{id}/favorite", s.handleToggleFavorite)
	r.Post("/sessions", s.handleSubmitSession)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return r
}
