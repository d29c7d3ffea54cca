package handlers

import (
	"GopherMarket/internal/config"
	"GopherMarket/internal/middleware"
	"GopherMarket/internal/service"
	"GopherMarket/internal/storage"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	cartService *service.CartService,
	blobs storage.BlobStore,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, blobs, logger, config)
	itemHandler := NewItemHandler(itemService, blobs, logger, config)
	cartHandler := NewCartHandler(cartService, logger)

	// Public routes
	r.Post("/auth/register", userHandler.Register)
	r.Post("/auth/login", userHandler.Login)
	r.Get("/items", itemHandler.List)
	r.Get("/items/{id}", itemHandler.Get)

	// Статика каталога загрузок
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadDir))))

	// Protected routes: гейт токена отрабатывает до любых побочных эффектов
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(config.AuthSecret))

		r.Get("/auth/me", userHandler.Me)
		r.Put("/auth/me", userHandler.UpdateMe)

		r.Post("/items", itemHandler.Create)
		r.Put("/items/{id}", itemHandler.Update)
		r.Delete("/items/{id}", itemHandler.Delete)

		r.Post("/cart/add", cartHandler.Add)
		r.Delete("/cart/remove", cartHandler.Remove)
		r.Get("/cart", cartHandler.Get)
	})

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с заданным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage — короткий ответ вида {"message": "..."}.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
