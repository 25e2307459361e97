// Package dashboard aggregates the operator's view of the pipeline:
// application counts, revenue from succeeded payments and recent activity.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"lpaflow/internal/models"
)

const recentApplicationLimit = 20

// AdminDashboard is the payload behind the admin stats endpoint.
type AdminDashboard struct {
	TotalApplications  int64               `json:"total_applications"`
	ByStatus           map[string]int64    `json:"by_status"`
	RevenuePence       int64               `json:"revenue_pence"`
	ConversionRate     float64             `json:"conversion_rate"`
	RecentApplications []RecentApplication `json:"recent_applications"`
}

// RecentApplication is one row of the recent-activity feed with the lead's
// name joined in.
type RecentApplication struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	TotalPence    int64      `json:"total_pence"`
	PaidAt        *time.Time `json:"paid_at"`
	CreatedAt     time.Time  `json:"created_at"`
	LeadFirstName string     `json:"lead_first_name"`
	LeadLastName  string     `json:"lead_last_name"`
}

// StatsStore runs the aggregate queries backing the dashboard.
type StatsStore interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
	SucceededRevenuePence(ctx context.Context) (int64, error)
	RecentApplications(ctx context.Context, limit int) ([]RecentApplication, error)
}

// Service assembles admin dashboard stats.
type Service interface {
	GetAdminDashboard(ctx context.Context) (*AdminDashboard, error)
}

type service struct {
	stats StatsStore
}

// NewService creates a new dashboard service.
func NewService(stats StatsStore) Service {
	return &service{stats: stats}
}

// GetAdminDashboard gathers the pipeline stats. The conversion rate is the
// share of applications that reached paid, rounded to four decimal places.
func (s *service) GetAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	byStatus, err := s.stats.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}

	revenue, err := s.stats.SucceededRevenuePence(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	recent, err := s.stats.RecentApplications(ctx, recentApplicationLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent applications: %w", err)
	}

	var total int64
	for _, count := range byStatus {
		total += count
	}

	rate := 0.0
	if total > 0 {
		rate = float64(byStatus[models.ApplicationStatusPaid]) / float64(total)
		rate = math.Round(rate*10000) / 10000
	}

	return &AdminDashboard{
		TotalApplications:  total,
		ByStatus:           byStatus,
		RevenuePence:       revenue,
		ConversionRate:     rate,
		RecentApplications: recent,
	}, nil
}
