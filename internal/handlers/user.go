package handlers

import (
	"GopherMarket/internal/config"
	"GopherMarket/internal/middleware"
	"GopherMarket/internal/service"
	"GopherMarket/internal/storage"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и профиль.
type UserHandler struct {
	Service *service.UserService
	Blobs   storage.BlobStore
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(s *service.UserService, blobs storage.BlobStore, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Service: s, Blobs: blobs, Logger: logger, Config: cfg}
}

// RegisterRequest — тело POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest — тело POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse — ответ register/login: пользователь (без пароля) и токен.
type AuthResponse struct {
	User any    `json:"user"`
	Token string `json:"token"`
}

// Register — POST /auth/register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, err := h.Service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeMessage(w, http.StatusConflict, "Email already used")
			return
		}
		h.Logger.Errorw("Register: service error", "email", req.Email, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := middleware.BuildToken(user.ID, h.Config.AuthSecret)
	if err != nil {
		h.Logger.Errorw("Register: token build failed", "user_id", user.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

// Login — POST /auth/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// намеренно одинаковый ответ для неизвестного email и плохого пароля
			writeMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.Logger.Errorw("Login: service error", "email", req.Email, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := middleware.BuildToken(user.ID, h.Config.AuthSecret)
	if err != nil {
		h.Logger.Errorw("Login: token build failed", "user_id", user.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

// Me — GET /auth/me. Отдаёт профиль либо null, если запись исчезла.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.Service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		h.Logger.Errorw("Me: service error", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateMe — PUT /auth/me: multipart с опциональными username и файлом avatar.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UpdateMe: invalid multipart form", "user_id", userID, "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var usernamePtr *string
	if username := r.FormValue("username"); username != "" {
		usernamePtr = &username
	}

	var avatarPtr *string
	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		path, saveErr := h.Blobs.Save(file, header.Filename)
		if saveErr != nil {
			h.Logger.Errorw("UpdateMe: failed to save avatar", "user_id", userID, "error", saveErr)
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}
		avatarPtr = &path
	}

	user, err := h.Service.UpdateProfile(r.Context(), userID, usernamePtr, avatarPtr)
	if err != nil {
		h.Logger.Errorw("UpdateMe: service error", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
