// Package bookings holds the availability and reservation endpoints.
package bookings

import (
	"errors"
	"net/http"
	"strconv"

	"esporteagenda/internal/api"
	"esporteagenda/internal/database"
	"esporteagenda/internal/middleware"
	"esporteagenda/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	freeSlots       = service.FreeSlots
	commonFreeSlots = service.CommonFreeSlots
	bookBatch       = service.BookBatch
)

// @Summary     Free slots for one date
// @Description Lists the available time slots of a court on a single date
// @Tags        bookings
// @Produce     json
// @Param       quadraId path int    true "court id"
// @Param       data     path string true "date (YYYY-MM-DD)"
// @Success     200 {object} api.DailySlotsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /horarios/{quadraId}/{data} [get]
func DailySlotsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		courtID, err := strconv.Atoi(c.Param("quadraId"))
		date := c.Param("data")
		if err != nil || courtID <= 0 || !service.ValidDate(date) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid parameters"})
		}

		slots, err := freeSlots(c.Request().Context(), db, courtID, date)
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid parameters"})
		case errors.Is(err, service.ErrCourtNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "court not found"})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to query availability"})
		}
		return c.JSON(http.StatusOK, api.DailySlotsResponse{Horarios: slots})
	}
}

// @Summary     Common free slots across dates
// @Description Lists the slots free on every requested date of a court
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       request body api.MultiSlotsRequest true "court and dates"
// @Success     200 {object} api.MultiSlotsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /horarios-multi [post]
func MultiDateSlotsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.MultiSlotsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		slots, err := commonFreeSlots(c.Request().Context(), db, req.QuadraID, req.Dates)
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid date format, use YYYY-MM-DD"})
		case errors.Is(err, service.ErrCourtNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "court not found"})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to query availability"})
		}
		return c.JSON(http.StatusOK, api.MultiSlotsResponse{HorariosComuns: slots})
	}
}

// @Summary     Book a batch of slots
// @Description Reserves every requested (court, date, slot) or none of them
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       request body api.ReservationsRequest true "reservation entries"
// @Success     201 {object} api.BatchResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.BatchResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reservas [post]
func CreateReservationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ReservationsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "no reservations submitted"})
		}

		claims := middleware.Claims(c)
		details, committed, err := bookBatch(c.Request().Context(), db, claims.UserID, req.Reservas)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "no reservations submitted"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to process reservations"})
		}
		if !committed {
			return c.JSON(http.StatusConflict, api.BatchResponse{
				Message: "some slots could not be reserved",
				Details: details,
			})
		}
		return c.JSON(http.StatusCreated, api.BatchResponse{
			Message: "all reservations created",
			Details: details,
		})
	}
}
