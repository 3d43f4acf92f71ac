package http

import (
	"encoding/json"
	"net/http"

	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// login
//
//	@Summary		Вход администратора
//	@Description	Выдает непрозрачный bearer-токен с ограниченным сроком жизни
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"Учетные данные"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	ErrorResponse	"Неверные учетные данные"
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrInvalidInput)
		return
	}

	res, err := a.authUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		a.logger.Warnf("login failed for %q: %s", req.Email, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, LoginResponse{Token: res.Token, Nombre: res.Name})
}

// logout
//
//	@Summary		Выход
//	@Description	Отзывает предъявленный токен
//	@Tags			auth
//	@Produce		json
//	@Success		204	"Токен отозван"
//	@Failure		401	{object}	ErrorResponse
//	@Router			/auth/logout [post]
func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.authUsecase.Logout(r.Context(), token); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
