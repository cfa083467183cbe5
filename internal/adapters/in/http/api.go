package http

import (
	"careshare/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	Id uuid.UUID `json:"id"`
}

type NewProduct struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type NewDonateItem struct {
	ItemType      string `json:"itemType"`
	ItemName      string `json:"itemName"`
	Quantity      int    `json:"quantity"`
	Condition     string `json:"condition"`
	PickupAddress string `json:"pickupAddress"`
}

type NewDonateRequest struct {
	ItemId      uuid.UUID `json:"itemId"`
	Description string    `json:"description"`
}

type NewExchangeRequest struct {
	ProductId   uuid.UUID `json:"productId"`
	ItemName    string    `json:"itemName"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageCount  int       `json:"imageCount"`
	Message     string    `json:"message"`
}

type NewPurchaseRequest struct {
	ProductId       uuid.UUID `json:"productId"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ShippingAddress string    `json:"shippingAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
}

// ActionRequest is the optional body of an action call. Reason is kept by
// reject actions only.
type ActionRequest struct {
	Reason string `json:"reason"`
}

// StatusChange asks for an entity to be moved to Status.
type StatusChange struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type Transition struct {
	Kind      string    `json:"kind"`
	Id        uuid.UUID `json:"id"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	Override  bool      `json:"override,omitempty"`
}

// ActionResult lists the primary transition first, then its cascades.
type ActionResult struct {
	Transitions []Transition `json:"transitions"`
}

type StatusCount struct {
	Kind   string  `json:"kind"`
	Status *string `json:"status,omitempty"`
	Count  int64   `json:"count"`
}

// CountByStatusParams are the query parameters of GET /api/v1/stats/{kind}.
type CountByStatusParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

func toTransitions(transitions []workflow.Transition) []Transition {
	response := make([]Transition, len(transitions))
	for i, t := range transitions {
		response[i] = Transition{
			Kind:      t.Kind.String(),
			Id:        t.EntityID.Bytes(),
			OldStatus: t.From,
			NewStatus: t.To,
			Override:  t.Override,
		}
	}
	return response
}

// ListEntitiesParams are the query parameters of GET /api/v1/{kind}.
type ListEntitiesParams struct {
	Scope  *string `form:"scope,omitempty" json:"scope,omitempty"`
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Limit  *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int    `form:"offset,omitempty" json:"offset,omitempty"`
}
