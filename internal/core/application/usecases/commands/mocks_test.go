package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"careshare/internal/core/application/usecases/commands"
	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Find(ctx context.Context, filter ports.ListFilter) ([]*product.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockDonateItemRepository struct{ mock.Mock }

func (m *MockDonateItemRepository) Add(ctx context.Context, item *donateitem.DonateItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockDonateItemRepository) Update(ctx context.Context, item *donateitem.DonateItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockDonateItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDonateItemRepository) Get(ctx context.Context, id kernel.UUID) (*donateitem.DonateItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donateitem.DonateItem), args.Error(1)
}

func (m *MockDonateItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donateitem.DonateItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donateitem.DonateItem), args.Error(1)
}

func (m *MockDonateItemRepository) Find(ctx context.Context, filter ports.ListFilter) ([]*donateitem.DonateItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*donateitem.DonateItem), args.Error(1)
}

type MockDonateRequestRepository struct{ mock.Mock }

func (m *MockDonateRequestRepository) Add(ctx context.Context, r *donaterequest.DonateRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockDonateRequestRepository) Update(ctx context.Context, r *donaterequest.DonateRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockDonateRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDonateRequestRepository) Get(ctx context.Context, id kernel.UUID) (*donaterequest.DonateRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donaterequest.DonateRequest), args.Error(1)
}

func (m *MockDonateRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donaterequest.DonateRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donaterequest.DonateRequest), args.Error(1)
}

func (m *MockDonateRequestRepository) Find(ctx context.Context, filter ports.ListFilter) ([]*donaterequest.DonateRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*donaterequest.DonateRequest), args.Error(1)
}

func (m *MockDonateRequestRepository) HasActiveRequest(ctx context.Context, itemID, requesterID kernel.UUID) (bool, error) {
	args := m.Called(ctx, itemID, requesterID)
	return args.Bool(0), args.Error(1)
}

type MockExchangeRequestRepository struct{ mock.Mock }

func (m *MockExchangeRequestRepository) Add(ctx context.Context, r *exchangerequest.ExchangeRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockExchangeRequestRepository) Update(ctx context.Context, r *exchangerequest.ExchangeRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockExchangeRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockExchangeRequestRepository) Get(ctx context.Context, id kernel.UUID) (*exchangerequest.ExchangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exchangerequest.ExchangeRequest), args.Error(1)
}

func (m *MockExchangeRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*exchangerequest.ExchangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exchangerequest.ExchangeRequest), args.Error(1)
}

func (m *MockExchangeRequestRepository) Find(ctx context.Context, filter ports.ListFilter) ([]*exchangerequest.ExchangeRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*exchangerequest.ExchangeRequest), args.Error(1)
}

type MockPurchaseRequestRepository struct{ mock.Mock }

func (m *MockPurchaseRequestRepository) Add(ctx context.Context, r *purchaserequest.PurchaseRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPurchaseRequestRepository) Update(ctx context.Context, r *purchaserequest.PurchaseRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPurchaseRequestRepository) Get(ctx context.Context, id kernel.UUID) (*purchaserequest.PurchaseRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaserequest.PurchaseRequest), args.Error(1)
}

func (m *MockPurchaseRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*purchaserequest.PurchaseRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaserequest.PurchaseRequest), args.Error(1)
}

func (m *MockPurchaseRequestRepository) Find(ctx context.Context, filter ports.ListFilter) ([]*purchaserequest.PurchaseRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchaserequest.PurchaseRequest), args.Error(1)
}

// MockUoW hands out the repositories it was built with and records the
// transaction calls.
type MockUoW struct {
	mock.Mock

	products  *MockProductRepository
	items     *MockDonateItemRepository
	donations *MockDonateRequestRepository
	exchanges *MockExchangeRequestRepository
	purchases *MockPurchaseRequestRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		products:  new(MockProductRepository),
		items:     new(MockDonateItemRepository),
		donations: new(MockDonateRequestRepository),
		exchanges: new(MockExchangeRequestRepository),
		purchases: new(MockPurchaseRequestRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.products
}

func (m *MockUoW) DonateItemRepository() ports.DonateItemRepository {
	return m.items
}

func (m *MockUoW) DonateRequestRepository() ports.DonateRequestRepository {
	return m.donations
}

func (m *MockUoW) ExchangeRequestRepository() ports.ExchangeRequestRepository {
	return m.exchanges
}

func (m *MockUoW) PurchaseRequestRepository() ports.PurchaseRequestRepository {
	return m.purchases
}

func (m *MockUoW) assertExpectations(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.items.AssertExpectations(t)
	m.donations.AssertExpectations(t)
	m.exchanges.AssertExpectations(t)
	m.purchases.AssertExpectations(t)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	return m.Called().Get(0).(commands.ProductUoW)
}

type MockDonateItemUoWFactory struct{ mock.Mock }

func (m *MockDonateItemUoWFactory) Create() commands.DonateItemUoW {
	return m.Called().Get(0).(commands.DonateItemUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, event workflow.Event) error {
	return m.Called(ctx, event).Error(0)
}

var restoredAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func newActor(t *testing.T, role workflow.Role) workflow.Actor {
	t.Helper()
	actor, err := workflow.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func actorWithID(t *testing.T, id kernel.UUID, role workflow.Role) workflow.Actor {
	t.Helper()
	actor, err := workflow.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func productIn(t *testing.T, ownerID kernel.UUID, status product.Status) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(kernel.NewUUID(), ownerID, product.Details{
		Name:      "Desk lamp",
		Category:  "Home",
		Type:      "SALE",
		Condition: "NEW",
	}, decimal.RequireFromString("19.90"), status, product.Review{}, restoredAt)
	require.NoError(t, err)
	return p
}

func donateItemIn(t *testing.T, donorID kernel.UUID, status donateitem.Status) *donateitem.DonateItem {
	t.Helper()
	item, err := donateitem.RestoreDonateItem(kernel.NewUUID(), donorID, donateitem.Details{
		Type:          "Books",
		Name:          "Schoolbooks",
		Quantity:      10,
		Condition:     "USED",
		PickupAddress: "12 River Street",
	}, status, "", restoredAt, restoredAt)
	require.NoError(t, err)
	return item
}

func donateRequestIn(t *testing.T, itemID, requesterID kernel.UUID, status donaterequest.Status) *donaterequest.DonateRequest {
	t.Helper()
	r, err := donaterequest.RestoreDonateRequest(kernel.NewUUID(), itemID, requesterID, "", status, "", restoredAt, nil)
	require.NoError(t, err)
	return r
}

func exchangeRequestIn(t *testing.T, productID, requesterID kernel.UUID, status exchangerequest.Status) *exchangerequest.ExchangeRequest {
	t.Helper()
	r, err := exchangerequest.RestoreExchangeRequest(kernel.NewUUID(), productID, requesterID, offer(), status, "", restoredAt, nil)
	require.NoError(t, err)
	return r
}

func purchaseRequestIn(t *testing.T, productID, buyerID kernel.UUID, status purchaserequest.Status) *purchaserequest.PurchaseRequest {
	t.Helper()
	r, err := purchaserequest.RestorePurchaseRequest(kernel.NewUUID(), productID, buyerID, contact(),
		decimal.RequireFromString("19.90"), status, restoredAt, restoredAt)
	require.NoError(t, err)
	return r
}

func offer() exchangerequest.Offer {
	return exchangerequest.Offer{ItemName: "Board game", Category: "Toys", ImageCount: 3}
}

func contact() purchaserequest.Contact {
	return purchaserequest.Contact{
		FullName:        "Lin Buyer",
		Email:           "lin@example.com",
		Phone:           "+49 30 1234567",
		ShippingAddress: "3 Station Road",
		PaymentMethod:   "CASH_ON_DELIVERY",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mockProduct(match func(*product.Product) bool) any {
	return mock.MatchedBy(match)
}

func mockDonateItem(match func(*donateitem.DonateItem) bool) any {
	return mock.MatchedBy(match)
}

func mockExchangeRequest(match func(*exchangerequest.ExchangeRequest) bool) any {
	return mock.MatchedBy(match)
}

func mockPurchaseRequest(match func(*purchaserequest.PurchaseRequest) bool) any {
	return mock.MatchedBy(match)
}

func mockEvent(match func(workflow.Event) bool) any {
	return mock.MatchedBy(match)
}

func anyDonateRequest() any {
	return mock.AnythingOfType("*donaterequest.DonateRequest")
}

func anyEvent() any {
	return mock.AnythingOfType("workflow.Event")
}
