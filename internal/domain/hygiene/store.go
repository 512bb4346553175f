package hygiene

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/apurva4122/barcoding-sub001/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const labTestColumns = `id, sample_name, test_type, result, tested_on, valid_until, COALESCE(notes, ''), created_at, updated_at`

func (s *Store) Create(ctx context.Context, test LabTest) (LabTest, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO lab_tests (sample_name, test_type, result, tested_on, valid_until, notes)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING `+labTestColumns+`
  `, test.SampleName, test.TestType, test.Result, test.TestedOn, test.ValidUntil, test.Notes)
	return scanLabTest(row)
}

func (s *Store) Update(ctx context.Context, id string, test LabTest) (LabTest, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE lab_tests
    SET sample_name = $2, test_type = $3, result = $4, tested_on = $5,
        valid_until = $6, notes = $7, updated_at = now()
    WHERE id = $1
    RETURNING `+labTestColumns+`
  `, id, test.SampleName, test.TestType, test.Result, test.TestedOn, test.ValidUntil, test.Notes)
	saved, err := scanLabTest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return LabTest{}, ErrTestNotFound
	}
	return saved, err
}

func (s *Store) Get(ctx context.Context, id string) (*LabTest, error) {
	row := s.DB.QueryRow(ctx, "SELECT "+labTestColumns+" FROM lab_tests WHERE id = $1", id)
	test, err := scanLabTest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (s *Store) List(ctx context.Context, result string, limit, offset int) ([]LabTest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+labTestColumns+`
    FROM lab_tests
    WHERE ($1 = '' OR result = $1)
    ORDER BY tested_on DESC, created_at DESC
    LIMIT $2 OFFSET $3
  `, result, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []LabTest
	for rows.Next() {
		test, err := scanLabTest(rows)
		if err != nil {
			return nil, err
		}
		tests = append(tests, test)
	}
	return tests, rows.Err()
}

// ExpiringBefore lists passed tests whose certificate runs out on or before
// the cutoff — the dashboard's "book a retest" list.
func (s *Store) ExpiringBefore(ctx context.Context, cutoff time.Time) ([]LabTest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+labTestColumns+`
    FROM lab_tests
    WHERE result = $1 AND valid_until IS NOT NULL AND valid_until <= $2
    ORDER BY valid_until
  `, ResultPass, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []LabTest
	for rows.Next() {
		test, err := scanLabTest(rows)
		if err != nil {
			return nil, err
		}
		tests = append(tests, test)
	}
	return tests, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM lab_tests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTestNotFound
	}
	return nil
}

func (s *Store) CountByResult(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, "SELECT result, COUNT(1) FROM lab_tests GROUP BY result")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var result string
		var count int
		if err := rows.Scan(&result, &count); err != nil {
			return nil, err
		}
		counts[result] = count
	}
	return counts, rows.Err()
}

func scanLabTest(row pgx.Row) (LabTest, error) {
	var test LabTest
	err := row.Scan(&test.ID, &test.SampleName, &test.TestType, &test.Result,
		&test.TestedOn, &test.ValidUntil, &test.Notes, &test.CreatedAt, &test.UpdatedAt)
	return test, err
}
