package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "acres-chat/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all the application's
// routes.
func NewRouter(chatHandler *ChatHandler, documentHandler *DocumentHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes get a request timeout so client connections
		// cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/state", chatHandler.GetState)

			r.Get("/chats", chatHandler.GetChats)
			r.Post("/chats", chatHandler.CreateChat)
			r.Put("/chats/active", chatHandler.SetActiveChat)
			r.Delete("/chats/{chatName}", chatHandler.DeleteChat)
			r.Get("/messages", chatHandler.GetMessages)

			r.Get("/documents", documentHandler.ListDocuments)
			r.Put("/documents/selection", documentHandler.SelectDocument)
			r.Delete("/documents/selection", documentHandler.ClearSelection)
		})

		// The question stream holds its connection open for the whole turn,
		// so it must not carry a timeout.
		r.Group(func(r chi.Router) {
			r.Post("/questions", chatHandler.HandleQuestion)
		})
	})

	return r
}
