package handlers

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/validation"
	"encoding/json"
	"errors"
	"net/http"
)

// messageResponse — общий вид ответа: сообщение и, при ошибке, причина.
type messageResponse struct {
	Message string `json:"message"`
	Err     string `json:"err,omitempty"`
	Error   string `json:"error,omitempty"`
}

type tagDTO struct {
	ID    int64  `json:"_id"`
	Title string `json:"title"`
}

type ownerDTO struct {
	ID       int64  `json:"_id"`
	UserName string `json:"userName"`
}

// contentDTO — контент с раскрытыми тегом и владельцем.
type contentDTO struct {
	ID     string            `json:"_id"`
	Link   string            `json:"link"`
	Type   model.ContentType `json:"type"`
	Title  string            `json:"title"`
	Tags   *tagDTO           `json:"tags"`
	UserID *ownerDTO         `json:"userId"`
}

func toContentDTO(c model.Content) contentDTO {
	out := contentDTO{ID: c.ID, Link: c.Link, Type: c.Type, Title: c.Title}
	if c.Tag != nil {
		out.Tags = &tagDTO{ID: c.Tag.ID, Title: c.Tag.Title}
	}
	if c.User != nil {
		out.UserID = &ownerDTO{ID: c.User.ID, UserName: c.User.UserName}
	}
	return out
}

func toContentDTOs(list []model.Content) []contentDTO {
	out := make([]contentDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toContentDTO(c))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeAndValidate читает JSON тело в dst и проверяет его валидатором.
// Возвращает текст ошибки для клиента.
func decodeAndValidate(r *http.Request, v *validation.Validator, dst any) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return "invalid JSON body", false
	}
	if err := v.Struct(dst); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return verr.Message, false
		}
		return err.Error(), false
	}
	return "", true
}
