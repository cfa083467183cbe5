package queries

import (
	"errors"

	"careshare/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery requests the administrator overview: counts for every
// (kind, status) pair.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// KindStats is the overview of one entity kind.
type KindStats struct {
	Kind     string           `json:"kind"`
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// GetDashboardStatsQueryResponse lists one KindStats per kind in a stable order.
type GetDashboardStatsQueryResponse struct {
	Kinds []KindStats `json:"kinds"`
}

// Count returns the figure for (kind, status), or 0 when absent.
func (r GetDashboardStatsQueryResponse) Count(kind string, status string) int64 {
	for _, k := range r.Kinds {
		if k.Kind == kind {
			return k.ByStatus[status]
		}
	}
	return 0
}
