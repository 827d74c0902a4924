package handlers

import (
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/service"
	"LinkKeeper/internal/token"
	"LinkKeeper/internal/validation"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type UserHandler struct {
	UserService *service.UserService
	Tokens      *token.Manager
	Validator   *validation.Validator
	Logger      *zap.SugaredLogger
	// SecureCookie — cookie uid только по HTTPS
	SecureCookie bool
}

func NewUserHandler(userService *service.UserService, tokens *token.Manager, v *validation.Validator, logger *zap.SugaredLogger, secureCookie bool) *UserHandler {
	return &UserHandler{UserService: userService, Tokens: tokens, Validator: v, Logger: logger, SecureCookie: secureCookie}
}

type signupRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=10"`
	Password string `json:"password" validate:"required,min=8,max=20,haslower,hasupper,hasspecial"`
}

// на входе политика пароля не проверяется, только длины
type signinRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=10"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

const validationFailed = "an error occured while validating the input"

// Signup регистрация пользователя
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if msg, ok := decodeAndValidate(r, h.Validator, &req); !ok {
		writeJSON(w, http.StatusLengthRequired, messageResponse{Message: validationFailed, Err: msg})
		return
	}

	user, err := h.UserService.Register(r.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			h.Logger.Infow("Signup: user name taken", "user_name", req.UserName)
		} else {
			h.Logger.Errorw("Signup: store error", "user_name", req.UserName, "error", err)
		}
		writeJSON(w, http.StatusForbidden, messageResponse{
			Message: "An error occured while creating an entry in DataBase.",
			Err:     err.Error(),
		})
		return
	}

	h.Logger.Infow("Signup: user created", "user_id", user.ID)
	writeJSON(w, http.StatusOK, messageResponse{Message: "you have signed up successfully"})
}

// Signin вход пользователя, выдаёт cookie uid
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if msg, ok := decodeAndValidate(r, h.Validator, &req); !ok {
		writeJSON(w, http.StatusLengthRequired, messageResponse{Message: validationFailed, Err: msg})
		return
	}

	user, err := h.UserService.Login(r.Context(), req.UserName, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "The user have not Signed in yet."})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "The password is incorrect. Enter the right password."})
		return
	case err != nil:
		h.Logger.Errorw("Signin: store error", "user_name", req.UserName, "error", err)
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "An error occured while finding the User", Err: err.Error()})
		return
	}

	tok, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Logger.Errorw("Signin: token issue failed", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusForbidden, messageResponse{Message: "The token cannot be generated", Err: err.Error()})
		return
	}

	middleware.SetLoginCookie(w, tok, h.Tokens.TTL(), h.SecureCookie)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Signin is successful"})
}

// Signout удаляет cookie сессии
func (h *UserHandler) Signout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w, h.SecureCookie)
	writeJSON(w, http.StatusOK, messageResponse{Message: "You have signed out successfully."})
}
