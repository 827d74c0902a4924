package handlers

import (
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/service"
	"LinkKeeper/internal/validation"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type ContentHandler struct {
	ContentService *service.ContentService
	Validator      *validation.Validator
	Logger         *zap.SugaredLogger
}

func NewContentHandler(contentService *service.ContentService, v *validation.Validator, logger *zap.SugaredLogger) *ContentHandler {
	return &ContentHandler{ContentService: contentService, Validator: v, Logger: logger}
}

type createContentRequest struct {
	Link  string `json:"link" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=Youtube Document image audio"`
	Title string `json:"title" validate:"required,min=3,max=250"`
	Tags  string `json:"tags" validate:"required"`
}

type deleteContentRequest struct {
	ContentID string `json:"contentId"`
}

type contentResponse struct {
	Message string       `json:"message"`
	Content []contentDTO `json:"content"`
}

type deletedContentResponse struct {
	Message string     `json:"message"`
	Content contentDTO `json:"content"`
}

// Create сохраняет ссылку с тегом
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req createContentRequest
	if msg, ok := decodeAndValidate(r, h.Validator, &req); !ok {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while validating the input", Err: msg})
		return
	}

	c, err := h.ContentService.Create(r.Context(), userID, service.NewContent{
		Link:  req.Link,
		Type:  model.ContentType(req.Type),
		Title: req.Title,
		Tag:   req.Tags,
	})
	switch {
	case errors.Is(err, service.ErrInvalidType):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while validating the input", Err: err.Error()})
		return
	case errors.Is(err, service.ErrTagResolution):
		h.Logger.Errorw("Create content: tag resolution failed", "user_id", userID, "tag", req.Tags, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "An error occured while creating the tag", Error: err.Error()})
		return
	case err != nil:
		h.Logger.Errorw("Create content: store error", "user_id", userID, "error", err)
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "An error occured while creating the content.", Error: err.Error()})
		return
	}

	h.Logger.Infow("Create content: ok", "user_id", userID, "content_id", c.ID)
	writeJSON(w, http.StatusOK, messageResponse{Message: "The content is created"})
}

// List весь контент текущего пользователя
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	list, err := h.ContentService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List content: store error", "user_id", userID, "error", err)
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while retrieving the content.", Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, contentResponse{Message: "All the contents are.", Content: toContentDTOs(list)})
}

// Delete удаляет контент по contentId из тела запроса
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req deleteContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while deleting the content.", Error: "invalid JSON body"})
		return
	}
	if req.ContentID == "" {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "This content is not present"})
		return
	}

	c, err := h.ContentService.Delete(r.Context(), userID, req.ContentID)
	switch {
	case errors.Is(err, service.ErrContentNotFound):
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "This content is not present"})
		return
	case err != nil:
		h.Logger.Errorw("Delete content: store error", "user_id", userID, "content_id", req.ContentID, "error", err)
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while deleting the content.", Error: err.Error()})
		return
	}

	h.Logger.Infow("Delete content: ok", "user_id", userID, "content_id", c.ID)
	writeJSON(w, http.StatusOK, deletedContentResponse{Message: "Your content is successfully deleted.", Content: toContentDTO(*c)})
}
