package handlers

import (
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/service"
	"LinkKeeper/internal/validation"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShareHandler struct {
	ShareService *service.ShareService
	Validator    *validation.Validator
	Logger       *zap.SugaredLogger
}

func NewShareHandler(shareService *service.ShareService, v *validation.Validator, logger *zap.SugaredLogger) *ShareHandler {
	return &ShareHandler{ShareService: shareService, Validator: v, Logger: logger}
}

type shareRequest struct {
	Share *bool `json:"share" validate:"required"`
}

type shareEnabledResponse struct {
	Message string `json:"message"`
	Hash    string `json:"hash"`
}

type shareDisabledResponse struct {
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
}

// Toggle включает ({"share":true}) или выключает ({"share":false}) публичную ссылку
func (h *ShareHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req shareRequest
	if msg, ok := decodeAndValidate(r, h.Validator, &req); !ok {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while validating the input", Error: msg})
		return
	}

	if *req.Share {
		hash, err := h.ShareService.Enable(r.Context(), userID)
		if err != nil {
			h.Logger.Errorw("Share: enable failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while creating the hash in database.", Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, shareEnabledResponse{Message: "The content is successfully shared.", Hash: hash})
		return
	}

	userName, err := h.ShareService.Disable(r.Context(), userID)
	switch {
	case errors.Is(err, service.ErrNoActiveLink):
		writeJSON(w, http.StatusOK, shareDisabledResponse{Message: "There is no active share link to destroy."})
		return
	case err != nil:
		h.Logger.Errorw("Share: disable failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while deleting the hash", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, shareDisabledResponse{Message: "The hash was successfully destroyed.", User: userName})
}

// Resolve публичный просмотр контента по hash ссылки, без аутентификации
func (h *ShareHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "sharelink")

	list, err := h.ShareService.Resolve(r.Context(), hash)
	switch {
	case errors.Is(err, service.ErrInvalidLink):
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "The sharelink is not valid."})
		return
	case err != nil:
		h.Logger.Errorw("Share: resolve failed", "error", err)
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while finding the contents.", Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, contentResponse{Message: "The contents are.", Content: toContentDTOs(list)})
}
