package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockStatsStore) SucceededRevenuePence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsStore) RecentApplications(ctx context.Context, limit int) ([]RecentApplication, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RecentApplication), args.Error(1)
}

func TestGetAdminDashboard_Aggregates(t *testing.T) {
	stats := new(MockStatsStore)
	stats.On("CountByStatus", mock.Anything).Return(map[string]int64{
		"draft":    5,
		"complete": 3,
		"paid":     2,
	}, nil)
	stats.On("SucceededRevenuePence", mock.Anything).Return(int64(72400), nil)
	recent := []RecentApplication{
		{ID: "app-1", Status: "paid", TotalPence: 36200, LeadFirstName: "Ada", LeadLastName: "Lovelace"},
	}
	stats.On("RecentApplications", mock.Anything, 20).Return(recent, nil)

	s := NewService(stats)
	out, err := s.GetAdminDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), out.TotalApplications)
	assert.Equal(t, int64(72400), out.RevenuePence)
	assert.Equal(t, 0.2, out.ConversionRate)
	assert.Equal(t, recent, out.RecentApplications)
	stats.AssertExpectations(t)
}

func TestGetAdminDashboard_RoundsConversionRate(t *testing.T) {
	stats := new(MockStatsStore)
	stats.On("CountByStatus", mock.Anything).Return(map[string]int64{
		"draft": 2,
		"paid":  1,
	}, nil)
	stats.On("SucceededRevenuePence", mock.Anything).Return(int64(18100), nil)
	stats.On("RecentApplications", mock.Anything, 20).Return([]RecentApplication{}, nil)

	s := NewService(stats)
	out, err := s.GetAdminDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0.3333, out.ConversionRate)
}

func TestGetAdminDashboard_EmptyPipeline(t *testing.T) {
	stats := new(MockStatsStore)
	stats.On("CountByStatus", mock.Anything).Return(map[string]int64{}, nil)
	stats.On("SucceededRevenuePence", mock.Anything).Return(int64(0), nil)
	stats.On("RecentApplications", mock.Anything, 20).Return([]RecentApplication{}, nil)

	s := NewService(stats)
	out, err := s.GetAdminDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalApplications)
	assert.Equal(t, 0.0, out.ConversionRate)
}

func TestGetAdminDashboard_StoreError(t *testing.T) {
	stats := new(MockStatsStore)
	stats.On("CountByStatus", mock.Anything).Return(nil, errors.New("connection reset"))

	s := NewService(stats)
	_, err := s.GetAdminDashboard(context.Background())

	assert.Error(t, err)
	stats.AssertNotCalled(t, "SucceededRevenuePence", mock.Anything)
}
