package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gruzdev-dev/codex-users/configs"
	"github.com/gruzdev-dev/codex-users/core/domain"
	"github.com/gruzdev-dev/codex-users/core/ports"
)

const (
	msgNotFound       = "Not Found"
	msgInvalidUserID  = "Invalid user ID"
	msgUserNotFound   = "User not found"
	msgInvalidBody    = "Invalid request body"
	msgInternalServer = "Internal Server Error"
)

type Handler struct {
	userService  ports.UserService
	logger       *slog.Logger
	maxBodyBytes int64
}

func NewHandler(cfg *configs.Config, userService ports.UserService, logger *slog.Logger) *Handler {
	return &Handler{
		userService:  userService,
		logger:       logger,
		maxBodyBytes: cfg.HTTP.MaxBodyBytes,
	}
}

// RegisterRoutes wires the user routes. Every unmatched path or method answers 404.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/users", h.ListUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/users", h.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{user_id}", h.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{user_id}", h.UpdateUser).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{user_id}", h.DeleteUser).Methods(http.MethodDelete)

	router.NotFoundHandler = http.HandlerFunc(h.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(h.NotFound)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, msgNotFound, http.StatusNotFound)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), mux.Vars(r)["user_id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, toUserResponse(user))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	input, err := h.readUserInput(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, toUserResponse(user))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	if !domain.IsValidUserID(userID) {
		h.writeError(w, r, domain.ErrInvalidUserID)
		return
	}

	input, err := h.readUserInput(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, toUserResponse(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(r.Context(), mux.Vars(r)["user_id"]); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidUserID):
		http.Error(w, msgInvalidUserID, http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidInput):
		h.logger.DebugContext(r.Context(), "rejected request body", "error", err)
		http.Error(w, msgInvalidBody, http.StatusBadRequest)
	case errors.Is(err, domain.ErrUserNotFound):
		http.Error(w, msgUserNotFound, http.StatusNotFound)
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		http.Error(w, msgInternalServer, http.StatusInternalServerError)
	}
}
