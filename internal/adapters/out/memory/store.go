// Package memory is an in-process implementation of the workflow store.
//
// Rows are kept as private copies of the aggregates together with a version.
// A unit of work buffers its writes and remembers the version of every row it
// read with GetForUpdate; Commit re-checks those versions under the store lock
// and fails with errs.StoreConflictError when another unit of work got there
// first. Callers retry the whole operation, the same way they retry a
// PostgreSQL serialization failure.
package memory

import (
	"context"
	"sync"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"
)

type row[T any] struct {
	value   T
	version uint64
}

// table holds the committed rows of one kind.
type table[T any] struct {
	name  string
	rows  map[kernel.UUID]row[T]
	codec codec[T]
}

func newTable[T any](name string, c codec[T]) *table[T] {
	return &table[T]{
		name:  name,
		rows:  make(map[kernel.UUID]row[T]),
		codec: c,
	}
}

// Store is safe for concurrent use. The zero value is not usable; call NewStore.
type Store struct {
	mu      sync.RWMutex
	version uint64

	products  *table[*product.Product]
	items     *table[*donateitem.DonateItem]
	donations *table[*donaterequest.DonateRequest]
	exchanges *table[*exchangerequest.ExchangeRequest]
	purchases *table[*purchaserequest.PurchaseRequest]
}

func NewStore() *Store {
	return &Store{
		products:  newTable("product", productCodec()),
		items:     newTable("donate item", donateItemCodec()),
		donations: newTable("donate request", donateRequestCodec()),
		exchanges: newTable("exchange request", exchangeRequestCodec()),
		purchases: newTable("purchase request", purchaseRequestCodec()),
	}
}

// Create implements ports.UnitOfWorkFactory.
func (s *Store) Create() ports.UnitOfWork {
	return newUnitOfWork(s)
}

// CountByStatus implements ports.StatusCounter over committed rows.
func (s *Store) CountByStatus(_ context.Context, kind workflow.Kind, status *string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case workflow.Product:
		return count(s.products, status), nil
	case workflow.DonateItem:
		return count(s.items, status), nil
	case workflow.DonateRequest:
		return count(s.donations, status), nil
	case workflow.ExchangeRequest:
		return count(s.exchanges, status), nil
	case workflow.PurchaseRequest:
		return count(s.purchases, status), nil
	default:
		return 0, errs.NewValueIsInvalidError("entity kind")
	}
}

func count[T any](t *table[T], status *string) int64 {
	if status == nil {
		return int64(len(t.rows))
	}
	var n int64
	for _, r := range t.rows {
		if t.codec.status(r.value) == *status {
			n++
		}
	}
	return n
}

// nextVersion must be called with mu held for writing.
func (s *Store) nextVersion() uint64 {
	s.version++
	return s.version
}
