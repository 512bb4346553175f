package worker

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/apurva4122/barcoding-sub001/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, w Worker) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO workers (name, phone, gender, base_salary, role, active, joined_on)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, w.Name, w.Phone, w.Gender, w.BaseSalary, w.Role, w.Active, w.JoinedOn).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id string, w Worker) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE workers
    SET name = $2, phone = $3, gender = $4, base_salary = $5, role = $6,
        active = $7, joined_on = $8, updated_at = now()
    WHERE id = $1
  `, id, w.Name, w.Phone, w.Gender, w.BaseSalary, w.Role, w.Active, w.JoinedOn)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*Worker, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(phone, ''), gender, base_salary,
           COALESCE(role, ''), active, joined_on, created_at, updated_at
    FROM workers
    WHERE id = $1
  `, id)

	var w Worker
	err := row.Scan(&w.ID, &w.Name, &w.Phone, &w.Gender, &w.BaseSalary,
		&w.Role, &w.Active, &w.JoinedOn, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) List(ctx context.Context, includeInactive bool) ([]Worker, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(phone, ''), gender, base_salary,
           COALESCE(role, ''), active, joined_on, created_at, updated_at
    FROM workers
    WHERE active OR $1
    ORDER BY name
  `, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []Worker
	for rows.Next() {
		var w Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Phone, &w.Gender, &w.BaseSalary,
			&w.Role, &w.Active, &w.JoinedOn, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

// Deactivate keeps the row so historical attendance and payroll stay intact.
func (s *Store) Deactivate(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE workers SET active = FALSE, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
