package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// GetByYear implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	start := holiday.DateOf(year, 1, 1)
	return r.between(ctx, start, start.AddDate(1, 0, 0))
}

// GetByMonth implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByMonth(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
	start := holiday.DateOf(year, month, 1)
	return r.between(ctx, start, start.AddDate(0, 1, 0))
}

func (r *holidayRepositoryImpl) between(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT holiday_date, name
		FROM holidays
		WHERE holiday_date >= $1 AND holiday_date < $2
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return holidays, nil
}
