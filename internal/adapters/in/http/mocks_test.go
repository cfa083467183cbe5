package http_test

import (
	"context"

	"careshare/internal/core/application/usecases/commands"
	"careshare/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockApplyActionHandler struct {
	mock.Mock
}

func (m *MockApplyActionHandler) Handle(ctx context.Context, cmd commands.ApplyActionCommand) (commands.ApplyActionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ApplyActionResult), args.Error(1)
}

type MockCreateProductHandler struct {
	mock.Mock
}

func (m *MockCreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCreateDonateRequestHandler struct {
	mock.Mock
}

func (m *MockCreateDonateRequestHandler) Handle(ctx context.Context, cmd commands.CreateDonateRequestCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockGetDashboardStatsHandler struct {
	mock.Mock
}

func (m *MockGetDashboardStatsHandler) Handle(
	ctx context.Context,
	query queries.GetDashboardStatsQuery,
) (queries.GetDashboardStatsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDashboardStatsQueryResponse), args.Error(1)
}

type MockCountByStatusHandler struct {
	mock.Mock
}

func (m *MockCountByStatusHandler) Handle(ctx context.Context, query queries.CountByStatusQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

type MockGetEntityHandler struct {
	mock.Mock
}

func (m *MockGetEntityHandler) Handle(ctx context.Context, query queries.GetEntityQuery) (queries.EntityView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.EntityView), args.Error(1)
}

type MockListEntitiesHandler struct {
	mock.Mock
}

func (m *MockListEntitiesHandler) Handle(
	ctx context.Context,
	query queries.ListEntitiesQuery,
) (queries.ListEntitiesQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListEntitiesQueryResponse), args.Error(1)
}
