package api

import (
	"net/http"
	"time"

	// Registers the swagger spec served under /api/swagger.
	_ "ai-lab/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Chat     *ChatHandler
	Document *DocumentHandler
	Vector   *VectorHandler
	Model    *ModelHandler
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Requests that must finish within the timeout.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/", h.Chat.Home)
		r.Post("/chat/new", h.Chat.NewChat)
		r.Get("/chat/{chatID}", h.Chat.ViewChat)
		r.Post("/chat/{chatID}/delete", h.Chat.DeleteChat)

		r.Route("/api", func(r chi.Router) {
			r.Get("/chats", h.Chat.GetChats)
			r.Get("/chats/search", h.Chat.SearchChats)
			r.Get("/chats/count", h.Chat.CountChats)
			r.Get("/chat/{chatID}/entries", h.Chat.GetEntries)
			r.Get("/chat/{chatID}/entries/count", h.Chat.CountEntries)
			r.Delete("/chat/{chatID}/entries", h.Chat.ClearEntries)
			r.Delete("/chat/{chatID}/entries/{entryID}", h.Chat.DeleteEntry)
			r.Put("/chat/{chatID}/title", h.Chat.UpdateChatTitle)
			r.Get("/entries", h.Chat.FindEntries)
			r.Get("/entries/search", h.Chat.SearchEntries)

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", h.Document.ListDocuments)
				r.Post("/", h.Document.SaveDocument)
				r.Delete("/", h.Document.DeleteAllDocuments)
				r.Get("/count", h.Document.CountDocuments)
				r.Post("/check", h.Document.CheckDocument)
				r.Get("/{documentID}", h.Document.GetDocument)
				r.Put("/{documentID}/chunks", h.Document.UpdateChunkCount)
				r.Delete("/{documentID}", h.Document.DeleteDocument)
			})

			r.Route("/vectors", func(r chi.Router) {
				r.Get("/", h.Vector.ListVectors)
				r.Post("/", h.Vector.SaveVector)
				r.Delete("/", h.Vector.DeleteAllVectors)
				r.Get("/count", h.Vector.CountVectors)
				r.Post("/search", h.Vector.SearchVectors)
				r.Post("/search/metadata", h.Vector.SearchByMetadata)
				r.Post("/delete", h.Vector.DeleteVectors)
				r.Get("/{vectorID}", h.Vector.GetVector)
				r.Head("/{vectorID}", h.Vector.HeadVector)
				r.Patch("/{vectorID}", h.Vector.UpdateVector)
				r.Delete("/{vectorID}", h.Vector.DeleteVector)
			})

			r.Get("/models", h.Model.HandleListModels)
		})
	})

	// Turns wait on the model, so they run without the request timeout. The
	// stream is bounded by the relay's own timeout instead.
	r.Group(func(r chi.Router) {
		r.Post("/chat/{chatID}/entry", h.Chat.PostEntry)
		r.Get("/chat-stream/{chatID}", h.Chat.StreamChat)
	})

	return r
}
