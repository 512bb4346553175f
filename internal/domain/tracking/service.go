package tracking

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	Store *Store
	// LabelSize is the rendered QR label edge in pixels.
	LabelSize int
}

func NewService(store *Store, labelSize int) *Service {
	return &Service{Store: store, LabelSize: labelSize}
}

// NewCode mints a short, label-friendly package code. Uniqueness is enforced
// by the packages.code unique index; ten hex characters of a v4 UUID leave
// collisions to the database as a 40-bit freak event.
func NewCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PKG-" + strings.ToUpper(raw[:10])
}

func (s *Service) Create(ctx context.Context, pkg Package) (Package, error) {
	if pkg.Code == "" {
		pkg.Code = NewCode()
	}
	if pkg.Status == "" {
		pkg.Status = StatusPacked
	}
	return s.Store.Create(ctx, pkg)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Package, error) {
	return s.Store.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]Package, error) {
	return s.Store.List(ctx, status, limit, offset)
}

// Scan moves the package identified by code to the given status and records
// the event.
func (s *Service) Scan(ctx context.Context, code, status, note string) (ScanEvent, error) {
	pkg, err := s.Store.GetByCode(ctx, code)
	if err != nil {
		return ScanEvent{}, err
	}
	return s.Store.RecordScan(ctx, pkg.ID, status, note)
}

func (s *Service) History(ctx context.Context, code string) ([]ScanEvent, error) {
	pkg, err := s.Store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.Store.History(ctx, pkg.ID)
}

func (s *Service) LabelPNG(ctx context.Context, code string) ([]byte, error) {
	pkg, err := s.Store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return Label(pkg.Code, s.LabelSize)
}
