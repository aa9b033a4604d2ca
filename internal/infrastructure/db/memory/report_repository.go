package memory

import (
	"context"
	"sync"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

type ReportRepository struct {
	mu      sync.RWMutex
	reports []domain.Report
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

func (r *ReportRepository) Create(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, *report)
	return nil
}

// List returns reports newest first.
func (r *ReportRepository) List(_ context.Context) ([]domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Report, len(r.reports))
	for i, rep := range r.reports {
		out[len(out)-1-i] = rep
	}
	return out, nil
}

func (r *ReportRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.reports)), nil
}
