package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"careshare/internal/core/application/usecases/commands"
	"careshare/internal/core/application/usecases/queries"
	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

type ApplyActionHandler interface {
	Handle(ctx context.Context, cmd commands.ApplyActionCommand) (commands.ApplyActionResult, error)
}

type CreateProductHandler interface {
	Handle(ctx context.Context, cmd commands.CreateProductCommand) error
}

type CreateDonateItemHandler interface {
	Handle(ctx context.Context, cmd commands.CreateDonateItemCommand) error
}

type CreateDonateRequestHandler interface {
	Handle(ctx context.Context, cmd commands.CreateDonateRequestCommand) error
}

type CreateExchangeRequestHandler interface {
	Handle(ctx context.Context, cmd commands.CreateExchangeRequestCommand) error
}

type CreatePurchaseRequestHandler interface {
	Handle(ctx context.Context, cmd commands.CreatePurchaseRequestCommand) error
}

type GetDashboardStatsHandler interface {
	Handle(ctx context.Context, query queries.GetDashboardStatsQuery) (queries.GetDashboardStatsQueryResponse, error)
}

type CountByStatusHandler interface {
	Handle(ctx context.Context, query queries.CountByStatusQuery) (int64, error)
}

type GetEntityHandler interface {
	Handle(ctx context.Context, query queries.GetEntityQuery) (queries.EntityView, error)
}

type ListEntitiesHandler interface {
	Handle(ctx context.Context, query queries.ListEntitiesQuery) (queries.ListEntitiesQueryResponse, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	ApplyAction           ApplyActionHandler
	CreateProduct         CreateProductHandler
	CreateDonateItem      CreateDonateItemHandler
	CreateDonateRequest   CreateDonateRequestHandler
	CreateExchangeRequest CreateExchangeRequestHandler
	CreatePurchaseRequest CreatePurchaseRequestHandler
	GetDashboardStats     GetDashboardStatsHandler
	CountByStatus         CountByStatusHandler
	GetEntity             GetEntityHandler
	ListEntities          ListEntitiesHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	identity ports.IdentityProvider
}

func NewServer(handlers Handlers, identity ports.IdentityProvider) *Server {
	return &Server{
		handlers: handlers,
		identity: identity,
	}
}

// RegisterRoutes mounts the API under /api/v1. Every API route requires a
// bearer token; the stats routes additionally require an administrator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", Authenticate(s.identity))

	api.POST("/products", s.CreateProduct)
	api.POST("/donate-items", s.CreateDonateItem)
	api.POST("/donate-requests", s.CreateDonateRequest)
	api.POST("/exchange-requests", s.CreateExchangeRequest)
	api.POST("/purchase-requests", s.CreatePurchaseRequest)

	stats := api.Group("/stats", RequireAdmin())
	stats.GET("", s.GetDashboardStats)
	stats.GET("/:kind", s.CountByStatus)

	api.GET("/:kind", s.ListEntities)
	api.GET("/:kind/:id", s.GetEntity)
	api.PATCH("/:kind/:id/status", s.ChangeStatus)
	api.POST("/:kind/:id/:action", s.ApplyAction)
}

// ApplyAction handles POST /api/v1/{kind}/{id}/{action}.
func (s *Server) ApplyAction(ctx echo.Context) error {
	action, err := workflow.ParseAction(ctx.Param("action"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body ActionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.apply(ctx, action, body.Reason)
}

// ChangeStatus handles PATCH /api/v1/{kind}/{id}/status. The requested status
// is translated to the action that reaches it and runs through the same rules.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := workflow.ActionForStatus(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.apply(ctx, action, body.Reason)
}

func (s *Server) apply(ctx echo.Context, action workflow.Action, reason string) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	kind, err := kindFromPath(ctx.Param("kind"))
	if err != nil {
		return writeError(ctx, err)
	}
	entityID, err := entityIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApplyActionCommand(kind, entityID, actor, action, reason)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.ApplyAction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ActionResult{Transitions: toTransitions(result.Transitions)})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewProduct
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(id, actor, product.Details{
		Name:        body.Name,
		Category:    body.Category,
		Type:        body.Type,
		Condition:   body.Condition,
		Description: body.Description,
	}, price)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// CreateDonateItem handles POST /api/v1/donate-items.
func (s *Server) CreateDonateItem(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewDonateItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDonateItemCommand(id, actor, donateitem.Details{
		Type:          body.ItemType,
		Name:          body.ItemName,
		Quantity:      body.Quantity,
		Condition:     body.Condition,
		PickupAddress: body.PickupAddress,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateDonateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// CreateDonateRequest handles POST /api/v1/donate-requests.
func (s *Server) CreateDonateRequest(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewDonateRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	itemID, err := kernel.UUIDFromString(body.ItemId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDonateRequestCommand(id, itemID, actor, body.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateDonateRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// CreateExchangeRequest handles POST /api/v1/exchange-requests.
func (s *Server) CreateExchangeRequest(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewExchangeRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	productID, err := kernel.UUIDFromString(body.ProductId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateExchangeRequestCommand(id, productID, actor, exchangerequest.Offer{
		ItemName:    body.ItemName,
		Category:    body.Category,
		Description: body.Description,
		ImageCount:  body.ImageCount,
		Message:     body.Message,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateExchangeRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// CreatePurchaseRequest handles POST /api/v1/purchase-requests.
func (s *Server) CreatePurchaseRequest(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewPurchaseRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	productID, err := kernel.UUIDFromString(body.ProductId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseRequestCommand(id, productID, actor, purchaserequest.Contact{
		FullName:        body.FullName,
		Email:           body.Email,
		Phone:           body.Phone,
		ShippingAddress: body.ShippingAddress,
		PaymentMethod:   body.PaymentMethod,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreatePurchaseRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// GetDashboardStats handles GET /api/v1/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	response, err := s.handlers.GetDashboardStats.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CountByStatus handles GET /api/v1/stats/{kind}?status=.
func (s *Server) CountByStatus(ctx echo.Context) error {
	kind, err := kindFromPath(ctx.Param("kind"))
	if err != nil {
		return writeError(ctx, err)
	}

	var params CountByStatusParams
	if err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	query, err := queries.NewCountByStatusQuery(kind, params.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	count, err := s.handlers.CountByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusCount{Kind: kind.String(), Status: query.Status(), Count: count})
}

// GetEntity handles GET /api/v1/{kind}/{id}.
func (s *Server) GetEntity(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	kind, err := kindFromPath(ctx.Param("kind"))
	if err != nil {
		return writeError(ctx, err)
	}
	entityID, err := entityIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetEntityQuery(kind, entityID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.handlers.GetEntity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

// ListEntities handles GET /api/v1/{kind}?scope=&status=&limit=&offset=.
func (s *Server) ListEntities(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	kind, err := kindFromPath(ctx.Param("kind"))
	if err != nil {
		return writeError(ctx, err)
	}

	var params ListEntitiesParams
	for _, p := range []struct {
		name string
		dest any
	}{
		{"scope", &params.Scope},
		{"status", &params.Status},
		{"limit", &params.Limit},
		{"offset", &params.Offset},
	} {
		if err = runtime.BindQueryParameter("form", true, false, p.name, ctx.QueryParams(), p.dest); err != nil {
			return badRequest(ctx, fmt.Sprintf("Invalid format for parameter %s: %s", p.name, err))
		}
	}

	scope, err := queries.ParseScope(deref(params.Scope))
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewListEntitiesQuery(kind, actor, scope, params.Status, deref(params.Limit), deref(params.Offset))
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.handlers.ListEntities.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, page)
}

// entityIDFromPath binds the {id} path segment. Malformed ids are field errors.
func entityIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true}); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromString(id.String())
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// kindFromPath accepts the plural collection names used in routes
// ("donate-requests") as well as the bare kind ("donate_request").
func kindFromPath(segment string) (workflow.Kind, error) {
	if kind, err := workflow.ParseKind(segment); err == nil {
		return kind, nil
	}
	return workflow.ParseKind(strings.TrimSuffix(segment, "s"))
}
