package attendance

import (
	"context"
	"time"

	"github.com/apurva4122/barcoding-sub001/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// Upsert writes the record for (worker, date), replacing any existing entry.
// Attendance is edited in place from the day sheet, so last write wins.
func (s *Store) Upsert(ctx context.Context, rec Record) (Record, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records (worker_id, day, status, overtime, late_minutes)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (worker_id, day) DO UPDATE
    SET status = EXCLUDED.status,
        overtime = EXCLUDED.overtime,
        late_minutes = EXCLUDED.late_minutes,
        updated_at = now()
    RETURNING id, worker_id, day, status, overtime, late_minutes, created_at, updated_at
  `, rec.WorkerID, rec.Date, rec.Status, rec.Overtime, rec.LateMinutes)

	var saved Record
	if err := row.Scan(&saved.ID, &saved.WorkerID, &saved.Date, &saved.Status,
		&saved.Overtime, &saved.LateMinutes, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		return Record{}, err
	}
	return saved, nil
}

func (s *Store) Delete(ctx context.Context, workerID string, date time.Time) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM attendance_records WHERE worker_id = $1 AND day = $2", workerID, date)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRange returns records with day in [from, to], optionally filtered to a
// single worker when workerID is non-empty.
func (s *Store) ListRange(ctx context.Context, workerID string, from, to time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, worker_id, day, status, overtime, late_minutes, created_at, updated_at
    FROM attendance_records
    WHERE day BETWEEN $1 AND $2
      AND ($3 = '' OR worker_id::text = $3)
    ORDER BY day, worker_id
  `, from, to, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.WorkerID, &rec.Date, &rec.Status,
			&rec.Overtime, &rec.LateMinutes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) SummaryForDate(ctx context.Context, date time.Time) (DailySummary, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(CASE WHEN status = $2 THEN 1 ELSE 0 END), 0),
           COALESCE(SUM(CASE WHEN status = $3 THEN 1 ELSE 0 END), 0),
           COALESCE(SUM(CASE WHEN status = $4 THEN 1 ELSE 0 END), 0)
    FROM attendance_records
    WHERE day = $1
  `, date, StatusPresent, StatusAbsent, StatusHalfDay)

	summary := DailySummary{Date: date}
	if err := row.Scan(&summary.Present, &summary.Absent, &summary.HalfDay); err != nil {
		return DailySummary{}, err
	}
	return summary, nil
}
