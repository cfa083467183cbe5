package workflow

import (
	"fmt"
	"strings"

	"careshare/internal/pkg/errs"
)

// Kind names one of the entity types governed by the workflow engine.
type Kind int

const (
	UnknownKind Kind = iota
	Product
	DonateItem
	DonateRequest
	ExchangeRequest
	PurchaseRequest
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:     "unknown",
		Product:         "product",
		DonateItem:      "donate_item",
		DonateRequest:   "donate_request",
		ExchangeRequest: "exchange_request",
		PurchaseRequest: "purchase_request",
	}
}

// Kinds returns every valid kind.
func Kinds() []Kind {
	return []Kind{Product, DonateItem, DonateRequest, ExchangeRequest, PurchaseRequest}
}

// ParseKind accepts the snake_case name ("donate_request") or its kebab-case
// form ("donate-request").
func ParseKind(s string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, kind := range Kinds() {
		if kind.String() == normalized {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not an entity kind", s))
}

func (k Kind) Validate() error {
	if k <= UnknownKind || k > PurchaseRequest {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Label is the human readable name used in error messages ("donate request").
func (k Kind) Label() string {
	return strings.ReplaceAll(k.String(), "_", " ")
}
