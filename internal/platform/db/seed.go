package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a small sample dataset for development. It is a no-op when
// workers already exist, so it is safe to run on every boot.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM workers").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	workers := []struct {
		name   string
		gender string
		salary float64
	}{
		{"Ramesh Kumar", "male", 30000},
		{"Sunita Devi", "female", 450},
		{"Vijay Singh", "male", 24000},
	}
	for _, w := range workers {
		if _, err := pool.Exec(ctx, `
      INSERT INTO workers (name, gender, base_salary, active)
      VALUES ($1, $2, $3, TRUE)
    `, w.name, w.gender, w.salary); err != nil {
			return err
		}
	}

	slog.Info("seeded sample workers", "count", len(workers))
	return nil
}
