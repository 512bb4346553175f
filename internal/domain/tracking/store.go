package tracking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store holds the pool rather than the narrower querier interface because
// RecordScan opens its own transaction.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, pkg Package) (Package, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO packages (code, product, batch_no, weight_kg, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, code, product, COALESCE(batch_no, ''), weight_kg, status, created_at, updated_at
  `, pkg.Code, pkg.Product, pkg.BatchNo, pkg.WeightKg, pkg.Status)
	return scanPackage(row)
}

func (s *Store) GetByCode(ctx context.Context, code string) (*Package, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, code, product, COALESCE(batch_no, ''), weight_kg, status, created_at, updated_at
    FROM packages
    WHERE code = $1
  `, code)
	pkg, err := scanPackage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *Store) List(ctx context.Context, status string, limit, offset int) ([]Package, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, code, product, COALESCE(batch_no, ''), weight_kg, status, created_at, updated_at
    FROM packages
    WHERE ($1 = '' OR status = $1)
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

// RecordScan updates the package status and appends the scan event in one
// transaction, so the history never disagrees with the current status.
func (s *Store) RecordScan(ctx context.Context, packageID, status, note string) (ScanEvent, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return ScanEvent{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, "UPDATE packages SET status = $2, updated_at = now() WHERE id = $1", packageID, status)
	if err != nil {
		return ScanEvent{}, err
	}
	if tag.RowsAffected() == 0 {
		return ScanEvent{}, ErrPackageNotFound
	}

	var event ScanEvent
	row := tx.QueryRow(ctx, `
    INSERT INTO package_scans (package_id, status, note)
    VALUES ($1, $2, $3)
    RETURNING id, package_id, status, COALESCE(note, ''), scanned_at
  `, packageID, status, note)
	if err := row.Scan(&event.ID, &event.PackageID, &event.Status, &event.Note, &event.ScannedAt); err != nil {
		return ScanEvent{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return ScanEvent{}, err
	}
	return event, nil
}

func (s *Store) History(ctx context.Context, packageID string) ([]ScanEvent, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, package_id, status, COALESCE(note, ''), scanned_at
    FROM package_scans
    WHERE package_id = $1
    ORDER BY scanned_at
  `, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []ScanEvent
	for rows.Next() {
		var event ScanEvent
		if err := rows.Scan(&event.ID, &event.PackageID, &event.Status, &event.Note, &event.ScannedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *Store) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, "SELECT status, COUNT(1) FROM packages GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func scanPackage(row pgx.Row) (Package, error) {
	var pkg Package
	err := row.Scan(&pkg.ID, &pkg.Code, &pkg.Product, &pkg.BatchNo, &pkg.WeightKg,
		&pkg.Status, &pkg.CreatedAt, &pkg.UpdatedAt)
	return pkg, err
}
