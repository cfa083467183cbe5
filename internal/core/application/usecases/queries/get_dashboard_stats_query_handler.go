package queries

import (
	"context"

	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"
)

// GetDashboardStatsQueryHandler builds the administrator overview with one
// count per (kind, status). Counts are taken one by one and are not a
// consistent snapshot across kinds.
type GetDashboardStatsQueryHandler struct {
	counter ports.StatusCounter
}

func NewGetDashboardStatsQueryHandler(counter ports.StatusCounter) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{counter: counter}
}

func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	response := GetDashboardStatsQueryResponse{
		Kinds: make([]KindStats, 0, len(workflow.Kinds())),
	}

	for _, kind := range workflow.Kinds() {
		stats := KindStats{
			Kind:     kind.String(),
			ByStatus: make(map[string]int64),
		}
		for _, status := range statusesOf(kind) {
			count, err := h.counter.CountByStatus(ctx, kind, &status)
			if err != nil {
				return GetDashboardStatsQueryResponse{}, err
			}
			stats.ByStatus[status] = count
			stats.Total += count
		}
		response.Kinds = append(response.Kinds, stats)
	}

	return response, nil
}
