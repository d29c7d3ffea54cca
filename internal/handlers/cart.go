package handlers

import (
	"GopherMarket/internal/middleware"
	"GopherMarket/internal/model"
	"GopherMarket/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// CartHandler обрабатывает корзину пользователя.
type CartHandler struct {
	Service *service.CartService
	Logger  *zap.SugaredLogger
}

// NewCartHandler создаёт хендлер корзины.
func NewCartHandler(s *service.CartService, logger *zap.SugaredLogger) *CartHandler {
	return &CartHandler{Service: s, Logger: logger}
}

// CartAddRequest — тело POST /cart/add. Quantity опционально, по умолчанию 1.
type CartAddRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// CartRemoveRequest — тело DELETE /cart/remove.
type CartRemoveRequest struct {
	ItemID int64 `json:"item_id"`
}

// RemoveResponse — ответ DELETE /cart/remove.
type RemoveResponse struct {
	Message string           `json:"message"`
	Removed *model.CartEntry `json:"removed"`
}

// Add — POST /cart/add: вставка либо атомарный инкремент количества.
// Повтор запроса намеренно кумулятивен — дедупликация на вызывающем.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req CartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CartAdd: invalid request body", "user_id", userID, "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ItemID == 0 {
		writeMessage(w, http.StatusBadRequest, "item_id is required")
		return
	}

	entry, err := h.Service.AddToCart(r.Context(), userID, req.ItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Not found")
			return
		}
		h.Logger.Errorw("CartAdd: service error", "user_id", userID, "item_id", req.ItemID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Remove — DELETE /cart/remove: удаление позиции целиком.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req CartRemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CartRemove: invalid request body", "user_id", userID, "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	removed, err := h.Service.RemoveFromCart(r.Context(), userID, req.ItemID)
	if err != nil {
		if errors.Is(err, service.ErrNotInCart) {
			writeMessage(w, http.StatusNotFound, "Item not in cart")
			return
		}
		h.Logger.Errorw("CartRemove: service error", "user_id", userID, "item_id", req.ItemID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, RemoveResponse{Message: "Removed from cart", Removed: removed})
}

// Get — GET /cart: корзина с данными товаров, последние добавленные первыми.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	rows, err := h.Service.GetCart(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("CartGet: service error", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
