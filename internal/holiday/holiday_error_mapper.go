package holiday

import (
	"errors"
	"strings"

	holidayerrors "leave-approval/internal/holiday/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return holidayerrors.ErrHolidayAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_holiday_date") {
		return holidayerrors.ErrHolidayAlreadyExists
	}

	return err
}
