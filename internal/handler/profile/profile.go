// Package profile holds the authenticated user's own-profile endpoints.
package profile

import (
	"errors"
	"net/http"
	"strings"

	"esporteagenda/internal/api"
	"esporteagenda/internal/database"
	"esporteagenda/internal/middleware"
	"esporteagenda/internal/service"
	"esporteagenda/internal/store"
	"esporteagenda/internal/upload"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	getUserByID       = store.GetUserByID
	updateUserProfile = store.UpdateUserProfile
	hashPassword      = service.HashPassword
)

// @Summary     Get my profile
// @Tags        profile
// @Produce     json
// @Success     200 {object} api.ProfileResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /meu-perfil [get]
func GetProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.Claims(c)
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, api.ProfileResponse{
			ID:       user.ID,
			Nome:     user.Name,
			Email:    user.Email,
			Telefone: user.Phone,
			FotoURL:  user.PhotoURL,
			Tipo:     user.Role,
		})
	}
}

// @Summary     Update my profile
// @Description Applies only the multipart fields that were sent; "fotoPerfil" carries a new profile photo
// @Tags        profile
// @Accept      multipart/form-data
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /meu-perfil [put]
func UpdateProfileHandler(db database.DB, files *upload.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var p store.ProfileUpdate
		if req.Nome != "" {
			p.Name = &req.Nome
		}
		if req.Email != "" {
			lowered := strings.ToLower(req.Email)
			p.Email = &lowered
		}
		if req.Telefone != "" {
			p.Phone = &req.Telefone
		}
		if req.Senha != "" {
			hash, err := hashPassword(req.Senha)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			p.PasswordHash = &hash
		}
		if fh, err := c.FormFile("fotoPerfil"); err == nil {
			url, err := files.Save(fh, upload.ProfilePhotos)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store photo"})
			}
			p.PhotoURL = &url
		}

		if p == (store.ProfileUpdate{}) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "no data to update"})
		}

		claims := middleware.Claims(c)
		if err := updateUserProfile(c.Request().Context(), db, claims.UserID, p); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already in use"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update profile"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "profile updated"})
	}
}
