// Package auth holds registration, login and password-recovery endpoints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"esporteagenda/internal/api"
	"esporteagenda/internal/database"
	"esporteagenda/internal/email"
	"esporteagenda/internal/model"
	"esporteagenda/internal/service"
	"esporteagenda/internal/store"
	"esporteagenda/internal/worker"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	accessTokenTTL = 24 * time.Hour

	uniqueViolation = "23505"
)

var (
	hashPassword        = service.HashPassword
	authenticateUser    = service.AuthenticateUser
	issueAccessToken    = service.IssueAccessToken
	newResetToken       = service.NewResetToken
	createUser          = store.CreateUser
	getUserByEmail      = store.GetUserByEmail
	setResetToken       = store.SetResetToken
	getUserByResetToken = store.GetUserByResetToken
	resetPassword       = store.ResetPassword
	timeNow             = time.Now
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// @Summary     Register an account
// @Description Creates a client or owner account
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "account data"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Senha)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		_, err = createUser(c.Request().Context(), db, &model.User{
			Name:         req.Nome,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Role:         req.Tipo,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to register user"})
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "user registered"})
	}
}

// @Summary     Log in
// @Description Verifies email and password and returns a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email or password"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Senha); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email or password"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			UserName:    user.Name,
			UserType:    user.Role,
		})
	}
}

// forgotPasswordReply never reveals whether the address exists.
const forgotPasswordReply = "if a registered email was provided, a link has been sent"

// @Summary     Request a password reset
// @Description Emails a recovery link when the address is registered; the response never reveals whether it is
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ForgotPasswordRequest true "account email"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/forgot-password [post]
func ForgotPasswordHandler(db database.DB, mailer email.Sender, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		token, err := newResetToken()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create reset token"})
		}

		addr := strings.ToLower(req.Email)
		found, err := setResetToken(c.Request().Context(), db, addr, token, timeNow().Add(service.ResetTokenTTL))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store reset token"})
		}
		if found {
			sendResetMail(mailer, wp, addr, c.Request().Host, token)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: forgotPasswordReply})
	}
}

func sendResetMail(mailer email.Sender, wp worker.Pool, addr, host, token string) {
	if mailer == nil {
		log.Warn().Str("email", addr).Msg("mailer not configured, skipping reset mail")
		return
	}
	body := fmt.Sprintf(
		"Você solicitou a redefinição de senha.\n\n"+
			"Clique no link a seguir para completar o processo:\n\n"+
			"http://%s/reset-password.html?token=%s\n\n"+
			"Se você não solicitou isso, ignore este e-mail.\n",
		host, token,
	)
	wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mailer.Send(ctx, addr, "Recuperação de Senha - EsporteAgenda", body); err != nil {
			log.Error().Err(err).Str("email", addr).Msg("failed to send reset mail")
		}
	})
}

// @Summary     Reset password
// @Description Trades a valid recovery token for a new password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ResetPasswordRequest true "token and new password"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/reset-password [post]
func ResetPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByResetToken(c.Request().Context(), db, req.Token)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid or expired token"})
		}

		hash, err := hashPassword(req.Senha)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		if err := resetPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to reset password"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "password reset"})
	}
}
