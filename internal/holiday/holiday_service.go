package holiday

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"leave-approval/internal/calendar"
	holidayerrors "leave-approval/internal/holiday/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	HolidaySetKeyPrefix = "holiday:set:"
	holidaySetTTL       = 24 * time.Hour
	holidayLoadTimeout  = 5 * time.Second
)

type Service interface {
	// HolidaysForYear returns national plus custom holidays falling in year.
	HolidaysForYear(ctx context.Context, year int) (calendar.Set, error)
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func holidaySetKey(year int) string {
	return HolidaySetKeyPrefix + strconv.Itoa(year)
}

func (s *service) HolidaysForYear(ctx context.Context, year int) (calendar.Set, error) {
	cacheKey := holidaySetKey(year)

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var dates []string
			if json.Unmarshal([]byte(cached), &dates) == nil {
				return calendar.SetFromStrings(dates), nil
			}
		}
	}

	// 2. Singleflight: banyak submit SICK bersamaan cukup satu query
	// Hasil dipakai bersama, jadi load tidak boleh ikut batal bersama
	// request pertama.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), holidayLoadTimeout)
		defer cancel()

		custom, err := s.repo.FindByYear(ctx, year)
		if err != nil {
			return nil, err
		}

		set := calendar.NationalHolidays(year)
		for _, h := range custom {
			if d, ok := occurrenceIn(h, year); ok {
				set.Add(d)
			}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(set.Strings()); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, holidaySetTTL).Err(); err != nil {
					s.logger.Warn("cache holiday set failed", zap.Int("year", year), zap.Error(err))
				}
			}
		}
		return set, nil
	})
	if err != nil {
		s.logger.Error("load holidays failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	// callers get their own copy; the singleflight result is shared
	return calendar.Set{}.Merge(v.(calendar.Set)), nil
}

func (s *service) ListByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < 1 || year > 9999 {
		return nil, holidayerrors.ErrInvalidYear
	}

	custom, err := s.repo.FindByYear(ctx, year)
	if err != nil {
		s.logger.Error("list holidays failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	national := calendar.NationalHolidayList(year)
	resp := make([]HolidayResponse, 0, len(national)+len(custom))
	for _, h := range national {
		resp = append(resp, HolidayResponse{
			Name:        h.Name,
			Date:        h.Date.Format(calendar.DateLayout),
			IsRecurring: true,
			Source:      SourceNational,
		})
	}
	for _, h := range custom {
		d, ok := occurrenceIn(h, year)
		if !ok {
			continue
		}
		resp = append(resp, HolidayResponse{
			ID:          h.ID,
			Name:        h.Name,
			Date:        d.Format(calendar.DateLayout),
			IsRecurring: h.IsRecurring,
			Source:      SourceCustom,
		})
	}

	sort.SliceStable(resp, func(i, j int) bool { return resp[i].Date < resp[j].Date })
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := time.Parse(calendar.DateLayout, req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDateFormat
	}

	h := &Holiday{
		Name: req.Name,
		Date: date,
	}
	if req.IsRecurring != nil {
		h.IsRecurring = *req.IsRecurring
	}

	if err := s.repo.Create(ctx, h); err != nil {
		s.logger.Error("create holiday failed", zap.String("date", req.Date), zap.Error(err))
		return HolidayResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, h)
	s.logger.Info("create holiday success",
		zap.Int64("holiday_id", h.ID),
		zap.String("date", req.Date),
		zap.Bool("recurring", h.IsRecurring),
	)

	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format(calendar.DateLayout),
		IsRecurring: h.IsRecurring,
		Source:      SourceCustom,
	}, nil
}

// invalidate drops the cached sets the new holiday belongs to. A recurring
// holiday touches every cached year.
func (s *service) invalidate(ctx context.Context, h *Holiday) {
	if s.rdb == nil {
		return
	}

	if !h.IsRecurring {
		if err := s.rdb.Del(ctx, holidaySetKey(h.Date.Year())).Err(); err != nil {
			s.logger.Warn("invalidate holiday cache failed", zap.Error(err))
		}
		return
	}

	iter := s.rdb.Scan(ctx, 0, HolidaySetKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn("invalidate holiday cache failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("scan holiday cache keys failed", zap.Error(err))
	}
}

// occurrenceIn places h in year. A recurring Feb 29 has no occurrence in a
// non-leap year.
func occurrenceIn(h Holiday, year int) (time.Time, bool) {
	if !h.IsRecurring {
		return h.Date, h.Date.Year() == year
	}
	d := time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
	return d, d.Month() == h.Date.Month()
}
