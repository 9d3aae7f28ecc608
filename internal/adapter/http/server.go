// Package adapthttp is the JSON API in front of the application services.
package adapthttp

import (
	"log/slog"
	"net/http"

	"caltrack/internal/app"
)

// Services bundles the application services the API routes to.
type Services struct {
	Users     *app.UserService
	Entries   *app.EntryService
	Nutrition *app.NutritionService
	Weights   *app.WeightService
	Favorites *app.FavoriteService
	Food      *app.FoodService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svc     Services
	origins []string
	log     *slog.Logger
}

// New creates a Server wired to the given application services. origins
// lists the CORS origins allowed to call the API; "*" allows any.
func New(svc Services, origins []string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{svc: svc, origins: origins, log: log}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
	})

	mux.HandleFunc("GET /api/users", s.handleListUsers)
	mux.HandleFunc("POST /api/users", s.handleCreateUser)
	mux.HandleFunc("GET /api/users/{id}", s.handleGetUser)
	mux.HandleFunc("PUT /api/users/{id}", s.handleUpdateGoals)

	mux.HandleFunc("GET /api/food/search", s.handleFoodSearch)
	mux.HandleFunc("GET /api/food/barcode/{barcode}", s.handleFoodBarcode)

	mux.HandleFunc("GET /api/entries/{user_id}", s.handleListEntries)
	mux.HandleFunc("GET /api/entries/{user_id}/day/{date}", s.handleDaily)
	mux.HandleFunc("POST /api/entries", s.handleCreateEntry)
	mux.HandleFunc("PUT /api/entries/{id}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /api/entries/{id}", s.handleDeleteEntry)

	mux.HandleFunc("GET /api/stats/{user_id}/week", s.handleWeekly)

	mux.HandleFunc("GET /api/weight/{user_id}", s.handleListWeights)
	mux.HandleFunc("POST /api/weight", s.handleLogWeight)
	mux.HandleFunc("DELETE /api/weight/{id}", s.handleDeleteWeight)

	mux.HandleFunc("GET /api/favorites/{user_id}", s.handleListFavorites)
	mux.HandleFunc("POST /api/favorites", s.handleAddFavorite)
	mux.HandleFunc("DELETE /api/favorites/{id}", s.handleDeleteFavorite)

	return s.loggingMiddleware(s.corsMiddleware(withNoCache(mux)))
}
