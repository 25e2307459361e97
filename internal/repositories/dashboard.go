package repositories

import (
	"context"

	"lpaflow/internal/models"
	"lpaflow/internal/services/dashboard"

	"gorm.io/gorm"
)

// DashboardRepository runs the aggregate queries behind the admin dashboard.
// Soft-deleted applications fall out of every query via the gorm scope.
type DashboardRepository interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
	SucceededRevenuePence(ctx context.Context) (int64, error)
	RecentApplications(ctx context.Context, limit int) ([]dashboard.RecentApplication, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.WithContext(ctx).Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byStatus := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		byStatus[status] = count
	}
	return byStatus, rows.Err()
}

func (r *dashboardRepository) SucceededRevenuePence(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusSucceeded).
		Select("COALESCE(SUM(amount_pence), 0)").
		Row().Scan(&total)
	return total, err
}

func (r *dashboardRepository) RecentApplications(ctx context.Context, limit int) ([]dashboard.RecentApplication, error) {
	var recent []dashboard.RecentApplication
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Select("applications.id, applications.status, applications.total_pence, applications.paid_at, applications.created_at, "+
			"leads.first_name AS lead_first_name, leads.last_name AS lead_last_name").
		Joins("JOIN leads ON leads.id = applications.lead_id").
		Order("applications.created_at DESC").
		Limit(limit).
		Scan(&recent).Error
	if err != nil {
		return nil, err
	}
	return recent, nil
}
