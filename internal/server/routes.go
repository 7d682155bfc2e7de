package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/linchiayu/bible-notes-api/internal/notes"
	"github.com/linchiayu/bible-notes-api/internal/scripture"
	"github.com/linchiayu/bible-notes-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-admin-key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)

	r.Route("/api", func(r chi.Router) {
		s.loadScriptureRoutes(r)
		s.loadNoteRoutes(r)
	})

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"message": "Welcome to bible notes api"})
}

func (s *Server) loadScriptureRoutes(router chi.Router) {
	scriptureRepo := scripture.NewRepository(s.db)
	scriptureHandler := scripture.NewHandler(scriptureRepo)

	router.Get("/books", scriptureHandler.ListBooksHandler)
	router.Get("/chapters", scriptureHandler.ListChaptersHandler)
	router.Get("/verses", scriptureHandler.ListVersesHandler)
}

func (s *Server) loadNoteRoutes(router chi.Router) {
	noteRepo := notes.NewRepository(s.db)
	noteService := notes.NewService(noteRepo, s.cfg.AdminDeleteKey)
	noteHandler := notes.NewHandler(noteService)

	router.Get("/notes", noteHandler.ListNotesHandler)
	router.Post("/notes", noteHandler.CreateNoteHandler)
	router.Post("/notes/{id}/star", noteHandler.ToggleStarHandler)
	router.Delete("/notes/{id}", noteHandler.DeleteNoteHandler)
}
