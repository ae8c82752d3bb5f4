package holiday_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leave-approval/internal/calendar"
	"leave-approval/internal/holiday"
	holidayerrors "leave-approval/internal/holiday/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type fakeHolidayService struct {
	listByYearFn func(ctx context.Context, year int) ([]holiday.HolidayResponse, error)
	createFn     func(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
}

func (f *fakeHolidayService) HolidaysForYear(ctx context.Context, year int) (calendar.Set, error) {
	return calendar.NationalHolidays(year), nil
}
func (f *fakeHolidayService) ListByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	return f.listByYearFn(ctx, year)
}
func (f *fakeHolidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	return f.createFn(ctx, req)
}

func newHolidayRouter(svc holiday.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	holiday.RegisterRoutes(r.Group(""), holiday.NewHandler(svc))
	return r
}

func TestHolidayHandler_GetByYear(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeHolidayService{
			listByYearFn: func(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
				assert.Equal(t, 2025, year)
				return []holiday.HolidayResponse{{Name: "New Year's Day", Date: "2025-01-01", Source: holiday.SourceNational}}, nil
			},
		}
		w := httptest.NewRecorder()
		newHolidayRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/holidays/2025", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var got []holiday.HolidayResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "2025-01-01", got[0].Date)
	})

	t.Run("negative non numeric year", func(t *testing.T) {
		w := httptest.NewRecorder()
		newHolidayRouter(&fakeHolidayService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/holidays/next", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHolidayHandler_Create(t *testing.T) {
	post := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/holidays", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("success", func(t *testing.T) {
		svc := &fakeHolidayService{
			createFn: func(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
				assert.Equal(t, "Company Day", req.Name)
				require.NotNil(t, req.IsRecurring)
				assert.True(t, *req.IsRecurring)
				return holiday.HolidayResponse{ID: 1, Name: req.Name, Date: req.Date, IsRecurring: true, Source: holiday.SourceCustom}, nil
			},
		}
		w := httptest.NewRecorder()
		newHolidayRouter(svc).ServeHTTP(w, post(`{"name":"Company Day","date":"2025-06-02","isRecurring":true}`))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		newHolidayRouter(&fakeHolidayService{}).ServeHTTP(w, post(`{"name":"X","date":"02/06/2025"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative duplicate date", func(t *testing.T) {
		svc := &fakeHolidayService{
			createFn: func(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
				return holiday.HolidayResponse{}, holidayerrors.ErrHolidayAlreadyExists
			},
		}
		w := httptest.NewRecorder()
		newHolidayRouter(svc).ServeHTTP(w, post(`{"name":"Company Day","date":"2025-06-02"}`))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
