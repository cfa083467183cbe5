// Package queries contains read operations over workflow state. They never
// lock and their answers are snapshots, not a basis for authorization.
package queries

import (
	"fmt"
	"strings"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/errs"
)

// statusesOf lists the status names of kind in declaration order.
func statusesOf(kind workflow.Kind) []string {
	names := make([]string, 0)
	switch kind {
	case workflow.Product:
		for _, s := range product.Statuses() {
			names = append(names, s.String())
		}
	case workflow.DonateItem:
		for _, s := range donateitem.Statuses() {
			names = append(names, s.String())
		}
	case workflow.DonateRequest:
		for _, s := range donaterequest.Statuses() {
			names = append(names, s.String())
		}
	case workflow.ExchangeRequest:
		for _, s := range exchangerequest.Statuses() {
			names = append(names, s.String())
		}
	case workflow.PurchaseRequest:
		for _, s := range purchaserequest.Statuses() {
			names = append(names, s.String())
		}
	}
	return names
}

func normalizeStatus(kind workflow.Kind, status string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(status))
	for _, name := range statusesOf(kind) {
		if name == normalized {
			return name, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a %s status", status, kind.Label()))
}
