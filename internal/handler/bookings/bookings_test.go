package bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"esporteagenda/internal/database"
	"esporteagenda/internal/middleware"
	"esporteagenda/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreSeams() {
	freeSlots = service.FreeSlots
	commonFreeSlots = service.CommonFreeSlots
	bookBatch = service.BookBatch
}

type okValidator struct{}

func (okValidator) Validate(any) error { return nil }

type errValidator struct{}

func (errValidator) Validate(any) error { return errors.New("v") }

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDailySlotsHandler(t *testing.T) {
	t.Cleanup(restoreSeams)
	e := echo.New()
	db := &database.FakeDB{}

	newCtx := func(courtID, date string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("quadraId", "data")
		ctx.SetParamValues(courtID, date)
		return ctx, rec
	}

	t.Run("bad params", func(t *testing.T) {
		ctx, rec := newCtx("abc", "2025-03-01")
		require.NoError(t, DailySlotsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		ctx, rec = newCtx("0", "2025-03-01")
		require.NoError(t, DailySlotsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		ctx, rec = newCtx("1", "01/03/2025")
		require.NoError(t, DailySlotsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown court", func(t *testing.T) {
		freeSlots = func(context.Context, database.DB, int, string) ([]string, error) {
			return nil, service.ErrCourtNotFound
		}
		ctx, rec := newCtx("9", "2025-03-01")
		require.NoError(t, DailySlotsHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("engine failure", func(t *testing.T) {
		freeSlots = func(context.Context, database.DB, int, string) ([]string, error) {
			return nil, errors.New("down")
		}
		ctx, rec := newCtx("1", "2025-03-01")
		require.NoError(t, DailySlotsHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		freeSlots = func(_ context.Context, _ database.DB, courtID int, date string) ([]string, error) {
			require.Equal(t, 1, courtID)
			require.Equal(t, "2025-03-01", date)
			return []string{"08:00", "09:00"}, nil
		}
		ctx, rec := newCtx("1", "2025-03-01")
		require.NoError(t, DailySlotsHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"horarios":["08:00","09:00"]`)
	})
}

func TestMultiDateSlotsHandler(t *testing.T) {
	t.Cleanup(restoreSeams)
	db := &database.FakeDB{}

	t.Run("bind error", func(t *testing.T) {
		e := echo.New()
		ctx, rec := newJSONCtx(e, "{bad json")
		require.NoError(t, MultiDateSlotsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e := echo.New()
		e.Validator = errValidator{}
		ctx, rec := newJSONCtx(e, `{"quadraId":1,"dates":[]}`)
		require.NoError(t, MultiDateSlotsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad dates", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		commonFreeSlots = func(context.Context, database.DB, int, []string) ([]string, error) {
			return nil, service.ErrInvalidInput
		}
		ctx, rec := newJSONCtx(e, `{"quadraId":1,"dates":["bad"]}`)
		require.NoError(t, MultiDateSlotsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "YYYY-MM-DD")
	})

	t.Run("unknown court", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		commonFreeSlots = func(context.Context, database.DB, int, []string) ([]string, error) {
			return nil, service.ErrCourtNotFound
		}
		ctx, rec := newJSONCtx(e, `{"quadraId":9,"dates":["2025-03-01"]}`)
		require.NoError(t, MultiDateSlotsHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("engine failure", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		commonFreeSlots = func(context.Context, database.DB, int, []string) ([]string, error) {
			return nil, errors.New("down")
		}
		ctx, rec := newJSONCtx(e, `{"quadraId":1,"dates":["2025-03-01"]}`)
		require.NoError(t, MultiDateSlotsHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		commonFreeSlots = func(_ context.Context, _ database.DB, courtID int, dates []string) ([]string, error) {
			require.Equal(t, 1, courtID)
			require.Equal(t, []string{"2025-03-01", "2025-03-02"}, dates)
			return []string{"08:00", "11:00"}, nil
		}
		ctx, rec := newJSONCtx(e, `{"quadraId":1,"dates":["2025-03-01","2025-03-02"]}`)
		require.NoError(t, MultiDateSlotsHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"horariosComuns":["08:00","11:00"]`)
	})
}

func TestCreateReservationsHandler(t *testing.T) {
	t.Cleanup(restoreSeams)
	db := &database.FakeDB{}
	claims := &service.CustomClaims{UserID: 7, Role: "cliente"}

	withClaims := func(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
		ctx, rec := newJSONCtx(e, body)
		ctx.Set(middleware.ContextUserKey, claims)
		return ctx, rec
	}

	t.Run("bind error", func(t *testing.T) {
		e := echo.New()
		ctx, rec := withClaims(e, "{bad")
		require.NoError(t, CreateReservationsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty batch", func(t *testing.T) {
		e := echo.New()
		e.Validator = errValidator{}
		ctx, rec := withClaims(e, `{"reservas":[]}`)
		require.NoError(t, CreateReservationsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "no reservations submitted")
	})

	t.Run("coordinator rejects empty input", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		bookBatch = func(context.Context, database.DB, int, []service.BookingRequest) ([]service.EntryResult, bool, error) {
			return nil, false, service.ErrInvalidInput
		}
		ctx, rec := withClaims(e, `{"reservas":[]}`)
		require.NoError(t, CreateReservationsHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("transaction failure", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		bookBatch = func(context.Context, database.DB, int, []service.BookingRequest) ([]service.EntryResult, bool, error) {
			return nil, false, errors.New("begin")
		}
		ctx, rec := withClaims(e, `{"reservas":[{"quadra_id":1,"data":"2025-03-01","horario":"09:00"}]}`)
		require.NoError(t, CreateReservationsHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("rolled back batch", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		bookBatch = func(_ context.Context, _ database.DB, userID int, reqs []service.BookingRequest) ([]service.EntryResult, bool, error) {
			require.Equal(t, 7, userID)
			return []service.EntryResult{
				{Success: true, Date: "2025-03-01", Slot: "09:00", ID: 1},
				{Date: "2025-03-01", Slot: "10:00", Reason: service.ReasonConflict},
			}, false, nil
		}
		body := `{"reservas":[{"quadra_id":1,"data":"2025-03-01","horario":"09:00"},{"quadra_id":1,"data":"2025-03-01","horario":"10:00"}]}`
		ctx, rec := withClaims(e, body)
		require.NoError(t, CreateReservationsHandler(db)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "some slots could not be reserved")
		require.Contains(t, rec.Body.String(), `"reason":"conflict"`)
	})

	t.Run("committed batch", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		bookBatch = func(context.Context, database.DB, int, []service.BookingRequest) ([]service.EntryResult, bool, error) {
			return []service.EntryResult{
				{Success: true, Date: "2025-03-01", Slot: "09:00", ID: 1},
			}, true, nil
		}
		ctx, rec := withClaims(e, `{"reservas":[{"quadra_id":1,"data":"2025-03-01","horario":"09:00"}]}`)
		require.NoError(t, CreateReservationsHandler(db)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), "all reservations created")
	})
}
