package queries

import (
	"slices"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/workflow"
)

// publicStatuses lists the statuses in which anyone may see a listing or a
// donate item. Request kinds have none.
func publicStatuses(kind workflow.Kind) []string {
	switch kind {
	case workflow.Product:
		return []string{product.Approved.String(), product.Sold.String()}
	case workflow.DonateItem:
		return []string{donateitem.Approved.String(), donateitem.Claimed.String()}
	default:
		return nil
	}
}

func isPublic(kind workflow.Kind, status string) bool {
	return slices.Contains(publicStatuses(kind), status)
}

// isCatalog reports whether kind is browsed by everyone rather than by the
// parties of a request.
func isCatalog(kind workflow.Kind) bool {
	return kind == workflow.Product || kind == workflow.DonateItem
}
