// Package courts holds the public court listing and the owner-side
// management endpoints.
package courts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"esporteagenda/internal/api"
	"esporteagenda/internal/cache"
	"esporteagenda/internal/database"
	"esporteagenda/internal/middleware"
	"esporteagenda/internal/model"
	"esporteagenda/internal/service"
	"esporteagenda/internal/store"
	"esporteagenda/internal/upload"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Court listings change rarely and are the busiest public read, so they sit
// in Redis briefly; every owner-side mutation drops the key.
const (
	courtsCacheKey = "quadras:all"
	courtsCacheTTL = time.Minute
)

var (
	listCourts            = store.ListCourts
	listCourtsByOwner     = store.ListCourtsByOwner
	getCourtByID          = store.GetCourtByID
	createCourt           = store.CreateCourt
	updateCourtDetails    = store.UpdateCourtDetails
	deleteCourtCascade    = store.DeleteCourtCascade
	listOwnerReservations = store.ListOwnerReservations
)

func invalidateCourtsCache(c echo.Context, rdb cache.Cache) {
	if err := rdb.Del(c.Request().Context(), courtsCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate courts cache")
	}
}

// @Summary     List courts
// @Tags        courts
// @Produce     json
// @Success     200 {object} api.CourtsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /quadras [get]
func ListCourtsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, courtsCacheKey).Result(); err == nil {
			var courts []model.Court
			if err := json.Unmarshal([]byte(cached), &courts); err == nil {
				return c.JSON(http.StatusOK, api.CourtsResponse{Quadras: courts})
			}
		}

		courts, err := listCourts(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list courts"})
		}

		if buf, err := json.Marshal(courts); err == nil {
			if err := rdb.Set(ctx, courtsCacheKey, buf, courtsCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache courts")
			}
		}
		return c.JSON(http.StatusOK, api.CourtsResponse{Quadras: courts})
	}
}

// @Summary     Register a court
// @Description Multipart form with nome, tipo and the required "quadraImage" file
// @Tags        courts
// @Accept      multipart/form-data
// @Produce     json
// @Success     201 {object} api.CreateCourtResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /quadras [post]
func CreateCourtHandler(db database.DB, rdb cache.Cache, files *upload.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCourtRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		fh, err := c.FormFile("quadraImage")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "court image is required"})
		}
		imageURL, err := files.Save(fh, upload.CourtImages)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store image"})
		}

		claims := middleware.Claims(c)
		ownerID := claims.UserID
		court, err := createCourt(c.Request().Context(), db, &model.Court{
			Name:     req.Nome,
			Category: req.Tipo,
			ImageURL: imageURL,
			OwnerID:  &ownerID,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to register court"})
		}

		invalidateCourtsCache(c, rdb)
		return c.JSON(http.StatusCreated, api.CreateCourtResponse{Message: "court registered", ID: court.ID})
	}
}

// @Summary     List my courts
// @Tags        courts
// @Produce     json
// @Success     200 {object} api.CourtsResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /minhas-quadras [get]
func MyCourtsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.Claims(c)
		courts, err := listCourtsByOwner(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list courts"})
		}
		return c.JSON(http.StatusOK, api.CourtsResponse{Quadras: courts})
	}
}

// @Summary     Bookings on my courts
// @Tags        courts
// @Produce     json
// @Success     200 {object} api.OwnerReservationsResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /dono/reservas [get]
func OwnerReservationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.Claims(c)
		reservations, err := listOwnerReservations(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list reservations"})
		}
		return c.JSON(http.StatusOK, api.OwnerReservationsResponse{Reservas: reservations})
	}
}

// courtParam parses and bounds-checks the :id path parameter.
func courtParam(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil && id > 0
}

// @Summary     Court details
// @Tags        courts
// @Produce     json
// @Param       id path int true "court id"
// @Success     200 {object} model.Court
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /quadra-detalhes/{id} [get]
func CourtDetailsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := courtParam(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid court id"})
		}

		claims := middleware.Claims(c)
		court, err := getCourtByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "court not found or not yours"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load court"})
		}
		if court.OwnerID == nil || *court.OwnerID != claims.UserID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "court not found or not yours"})
		}
		return c.JSON(http.StatusOK, court)
	}
}

// @Summary     Update a court
// @Tags        courts
// @Accept      json
// @Produce     json
// @Param       id path int true "court id"
// @Param       request body api.UpdateCourtRequest true "court details"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /quadra-detalhes/{id} [put]
func UpdateCourtHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := courtParam(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid court id"})
		}

		var req api.UpdateCourtRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if !service.ValidSlot(req.HorarioAbertura) || !service.ValidSlot(req.HorarioFechamento) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "operating hours must be HH:MM"})
		}

		claims := middleware.Claims(c)
		updated, err := updateCourtDetails(c.Request().Context(), db, claims.UserID, &model.Court{
			ID:          id,
			Name:        req.Nome,
			Address:     req.Endereco,
			Description: req.Descricao,
			OpeningTime: req.HorarioAbertura,
			ClosingTime: req.HorarioFechamento,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update court"})
		}
		if !updated {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "court not found or not yours"})
		}

		invalidateCourtsCache(c, rdb)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "court updated"})
	}
}

// @Summary     Delete a court
// @Description Removes the court and every reservation against it in one transaction
// @Tags        courts
// @Produce     json
// @Param       id path int true "court id"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /quadras/{id} [delete]
func DeleteCourtHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := courtParam(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid court id"})
		}

		claims := middleware.Claims(c)
		court, err := getCourtByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "court not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load court"})
		}
		if court.OwnerID == nil || *court.OwnerID != claims.UserID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "you cannot delete this court"})
		}

		if err := deleteCourtCascade(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete court"})
		}

		invalidateCourtsCache(c, rdb)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "court and its reservations deleted"})
	}
}
