package holiday_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"leave-approval/internal/calendar"
	"leave-approval/internal/holiday"
	holidayerrors "leave-approval/internal/holiday/errors"
	holidayMock "leave-approval/internal/holiday/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   holiday.Service
	repo      *holidayMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := holidayMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   holiday.NewService(repo, rdb),
		repo:      repo,
		redismock: redisMock,
	}
}

func date(s string) time.Time {
	d, _ := time.Parse(calendar.DateLayout, s)
	return d
}

func TestHolidayService_HolidaysForYear(t *testing.T) {
	ctx := context.Background()
	key := holiday.HolidaySetKeyPrefix + "2025"

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(key).SetVal(`["2025-01-01","2025-03-05"]`)

		set, err := deps.service.HolidaysForYear(ctx, 2025)

		require.NoError(t, err)
		assert.Len(t, set, 2)
		assert.True(t, set.Contains(date("2025-03-05")))
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss merges national and custom then caches", func(t *testing.T) {
		deps := setupServiceTest(t)

		expected := calendar.NationalHolidays(2025)
		expected.Add(date("2025-03-05"))
		expected.Add(date("2025-08-17"))
		payload, _ := json.Marshal(expected.Strings())

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindByYear(gomock.Any(), 2025).Return([]holiday.Holiday{
			{ID: 1, Name: "Company day", Date: date("2025-03-05")},
			{ID: 2, Name: "Founders day", Date: date("2019-08-17"), IsRecurring: true},
		}, nil)
		deps.redismock.ExpectSet(key, payload, 24*time.Hour).SetVal("OK")

		set, err := deps.service.HolidaysForYear(ctx, 2025)

		require.NoError(t, err)
		assert.Equal(t, expected.Strings(), set.Strings())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("works without redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := holidayMock.NewMockRepository(ctrl)
		svc := holiday.NewService(repo, nil)

		repo.EXPECT().FindByYear(gomock.Any(), 2026).Return(nil, nil)

		set, err := svc.HolidaysForYear(ctx, 2026)
		require.NoError(t, err)
		assert.Equal(t, calendar.NationalHolidays(2026).Strings(), set.Strings())
	})

	t.Run("load survives caller cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := holidayMock.NewMockRepository(ctrl)
		svc := holiday.NewService(repo, nil)

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		repo.EXPECT().
			FindByYear(gomock.Any(), 2027).
			DoAndReturn(func(ctx context.Context, year int) ([]holiday.Holiday, error) {
				assert.NoError(t, ctx.Err())
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return nil, nil
			})

		set, err := svc.HolidaysForYear(cancelled, 2027)
		require.NoError(t, err)
		assert.Equal(t, calendar.NationalHolidays(2027).Strings(), set.Strings())
	})

	t.Run("negative repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindByYear(gomock.Any(), 2025).Return(nil, errors.New("db down"))

		set, err := deps.service.HolidaysForYear(ctx, 2025)
		assert.Error(t, err)
		assert.Nil(t, set)
	})
}

func TestHolidayService_ListByYear(t *testing.T) {
	ctx := context.Background()

	t.Run("success sorted with source", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByYear(gomock.Any(), 2025).Return([]holiday.Holiday{
			{ID: 7, Name: "Company day", Date: date("2025-03-05")},
			{ID: 8, Name: "Leap day party", Date: date("2024-02-29"), IsRecurring: true},
		}, nil)

		resp, err := deps.service.ListByYear(ctx, 2025)

		require.NoError(t, err)
		assert.Len(t, resp, 12)
		assert.Equal(t, "2025-01-01", resp[0].Date)
		assert.Equal(t, holiday.SourceNational, resp[0].Source)

		var custom []holiday.HolidayResponse
		for _, r := range resp {
			if r.Source == holiday.SourceCustom {
				custom = append(custom, r)
			}
		}
		require.Len(t, custom, 1)
		assert.Equal(t, int64(7), custom[0].ID)
		assert.Equal(t, "2025-03-05", custom[0].Date)
	})

	t.Run("negative invalid year", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.ListByYear(ctx, 0)
		assert.ErrorIs(t, err, holidayerrors.ErrInvalidYear)
	})
}

func TestHolidayService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cached year", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, h *holiday.Holiday) error {
				assert.Equal(t, "Company day", h.Name)
				assert.False(t, h.IsRecurring)
				h.ID = 11
				return nil
			},
		)
		deps.redismock.ExpectDel(holiday.HolidaySetKeyPrefix + "2025").SetVal(1)

		resp, err := deps.service.Create(ctx, holiday.CreateHolidayRequest{Name: "Company day", Date: "2025-03-05"})

		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		assert.Equal(t, "2025-03-05", resp.Date)
		assert.Equal(t, holiday.SourceCustom, resp.Source)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("negative duplicate date", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_holiday_date"})

		_, err := deps.service.Create(ctx, holiday.CreateHolidayRequest{Name: "Company day", Date: "2025-03-05"})
		assert.ErrorIs(t, err, holidayerrors.ErrHolidayAlreadyExists)
	})

	t.Run("negative invalid date", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, holiday.CreateHolidayRequest{Name: "Company day", Date: "05/03/2025"})
		assert.ErrorIs(t, err, holidayerrors.ErrInvalidDateFormat)
	})
}
