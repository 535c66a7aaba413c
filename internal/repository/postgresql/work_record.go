package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workRecordRepositoryImpl struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) workrecord.WorkRecordRepository {
	return &workRecordRepositoryImpl{db: db}
}

// ListByMonth implements workrecord.WorkRecordRepository.
func (r *workRecordRepositoryImpl) ListByMonth(ctx context.Context, employeeID string, year, month int) ([]workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	from := holiday.DateOf(year, month, 1)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT work_date, start_time, end_time, break_time, night_break_time,
			attendance_type, holiday_type, work_content
		FROM work_records
		WHERE employee_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}
	defer rows.Close()

	var records []workrecord.WorkRecord
	index := make(map[int]int)
	for rows.Next() {
		var (
			workDate time.Time
			rec      workrecord.WorkRecord
		)
		if err := rows.Scan(
			&workDate, &rec.StartTime, &rec.EndTime, &rec.BreakTime, &rec.NightBreakTime,
			&rec.AttendanceType, &rec.HolidayType, &rec.WorkContent,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work record: %w", err)
		}
		rec.Day = workDate.Day()
		index[rec.Day] = len(records)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	details, err := r.listDetails(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	for day, list := range details {
		if i, ok := index[day]; ok {
			records[i].Details = list
		}
	}

	return records, nil
}

// GetByDay implements workrecord.WorkRecordRepository.
func (r *workRecordRepositoryImpl) GetByDay(ctx context.Context, employeeID string, year, month, day int) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	date := holiday.DateOf(year, month, day)

	query := `
		SELECT start_time, end_time, break_time, night_break_time,
			attendance_type, holiday_type, work_content
		FROM work_records
		WHERE employee_id = $1 AND work_date = $2
	`

	rec := workrecord.WorkRecord{Day: day}
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.StartTime, &rec.EndTime, &rec.BreakTime, &rec.NightBreakTime,
		&rec.AttendanceType, &rec.HolidayType, &rec.WorkContent,
	)
	if err != nil {
		return workrecord.WorkRecord{}, fmt.Errorf("failed to get work record for %s: %w", date.Format(holiday.DateLayout), err)
	}

	details, err := r.listDetails(ctx, employeeID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return workrecord.WorkRecord{}, err
	}
	rec.Details = details[day]

	return rec, nil
}

// Upsert implements workrecord.WorkRecordRepository.
func (r *workRecordRepositoryImpl) Upsert(ctx context.Context, employeeID string, year, month int, record workrecord.WorkRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_records (
			employee_id, work_date, start_time, end_time, break_time, night_break_time,
			attendance_type, holiday_type, work_content
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id, work_date) DO UPDATE
		SET start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_time = EXCLUDED.break_time,
			night_break_time = EXCLUDED.night_break_time,
			attendance_type = EXCLUDED.attendance_type,
			holiday_type = EXCLUDED.holiday_type,
			work_content = EXCLUDED.work_content,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		employeeID, holiday.DateOf(year, month, record.Day),
		record.StartTime, record.EndTime, record.BreakTime, record.NightBreakTime,
		string(record.AttendanceType), string(record.HolidayType), record.WorkContent,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert work record for day %d: %w", record.Day, err)
	}

	return nil
}

// ReplaceDetails implements workrecord.WorkRecordRepository. The day's work record must
// already exist.
func (r *workRecordRepositoryImpl) ReplaceDetails(ctx context.Context, employeeID string, year, month, day int, details []workrecord.WorkDetail) error {
	q := GetQuerier(ctx, r.db)

	date := holiday.DateOf(year, month, day)

	if _, err := q.Exec(ctx, `DELETE FROM work_details WHERE employee_id = $1 AND work_date = $2`, employeeID, date); err != nil {
		return fmt.Errorf("failed to clear work details for day %d: %w", day, err)
	}

	if len(details) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for position, d := range details {
		id := d.ID
		if id == "" {
			generated, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate work detail id: %w", err)
			}
			id = generated.String()
		}
		batch.Queue(`
			INSERT INTO work_details (id, employee_id, work_date, position, client_id, project_id, description, work_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, id, employeeID, date, position, nullIfEmpty(d.ClientID), nullIfEmpty(d.ProjectID), d.Description, d.WorkTime)
	}

	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert work details for day %d: %w", day, err)
	}

	return nil
}

// listDetails returns the details in [from, to) keyed by day of month, in entry order.
func (r *workRecordRepositoryImpl) listDetails(ctx context.Context, employeeID string, from, to time.Time) (map[int][]workrecord.WorkDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, work_date, client_id, project_id, description, work_time
		FROM work_details
		WHERE employee_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date ASC, position ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work details: %w", err)
	}
	defer rows.Close()

	result := make(map[int][]workrecord.WorkDetail)
	for rows.Next() {
		var (
			d         workrecord.WorkDetail
			workDate  time.Time
			clientID  *string
			projectID *string
		)
		if err := rows.Scan(&d.ID, &workDate, &clientID, &projectID, &d.Description, &d.WorkTime); err != nil {
			return nil, fmt.Errorf("failed to scan work detail: %w", err)
		}
		if clientID != nil {
			d.ClientID = *clientID
		}
		if projectID != nil {
			d.ProjectID = *projectID
		}
		result[workDate.Day()] = append(result[workDate.Day()], d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
