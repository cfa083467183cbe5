package memory

import (
	"slices"
	"strings"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"
)

// changeset is the view one unit of work has of one table: the committed rows
// overlaid with its own buffered writes.
type changeset[T any] struct {
	table   *table[T]
	writes  map[kernel.UUID]T
	inserts map[kernel.UUID]struct{}
	deletes map[kernel.UUID]struct{}
	reads   map[kernel.UUID]uint64
}

func newChangeset[T any](t *table[T]) *changeset[T] {
	return &changeset[T]{
		table:   t,
		writes:  make(map[kernel.UUID]T),
		inserts: make(map[kernel.UUID]struct{}),
		deletes: make(map[kernel.UUID]struct{}),
		reads:   make(map[kernel.UUID]uint64),
	}
}

func (c *changeset[T]) reset() {
	clear(c.writes)
	clear(c.inserts)
	clear(c.deletes)
	clear(c.reads)
}

func (c *changeset[T]) empty() bool {
	return len(c.writes) == 0 && len(c.deletes) == 0 && len(c.reads) == 0
}

// get returns a private copy of the row. With forUpdate the committed version
// is recorded and re-checked at commit. Store lock must be held for reading.
func (c *changeset[T]) get(id kernel.UUID, forUpdate bool) (T, error) {
	var zero T
	if err := id.Validate(); err != nil {
		return zero, err
	}
	if _, deleted := c.deletes[id]; deleted {
		return zero, errs.NewObjectNotFoundError(c.table.name, id.String())
	}
	if v, ok := c.writes[id]; ok {
		return c.table.codec.clone(v)
	}

	r, ok := c.table.rows[id]
	if !ok {
		return zero, errs.NewObjectNotFoundError(c.table.name, id.String())
	}
	if forUpdate {
		if _, seen := c.reads[id]; !seen {
			c.reads[id] = r.version
		}
	}
	return c.table.codec.clone(r.value)
}

// exists reports whether id is visible to this unit of work.
func (c *changeset[T]) exists(id kernel.UUID) bool {
	if _, deleted := c.deletes[id]; deleted {
		return false
	}
	if _, ok := c.writes[id]; ok {
		return true
	}
	_, ok := c.table.rows[id]
	return ok
}

func (c *changeset[T]) add(value T) error {
	id := c.table.codec.id(value)
	if c.exists(id) {
		return errs.NewDuplicateRequestError(c.table.name, id.String())
	}
	stored, err := c.table.codec.clone(value)
	if err != nil {
		return err
	}
	c.writes[id] = stored
	c.inserts[id] = struct{}{}
	delete(c.deletes, id)
	return nil
}

func (c *changeset[T]) update(value T) error {
	id := c.table.codec.id(value)
	if !c.exists(id) {
		return errs.NewObjectNotFoundError(c.table.name, id.String())
	}
	stored, err := c.table.codec.clone(value)
	if err != nil {
		return err
	}
	c.writes[id] = stored
	return nil
}

func (c *changeset[T]) remove(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !c.exists(id) {
		return errs.NewObjectNotFoundError(c.table.name, id.String())
	}
	delete(c.writes, id)
	if _, inserted := c.inserts[id]; inserted {
		delete(c.inserts, id)
		return nil
	}
	c.deletes[id] = struct{}{}
	return nil
}

// anyMatch reports whether some visible row satisfies match.
func (c *changeset[T]) anyMatch(match func(T) bool) bool {
	for id, r := range c.table.rows {
		if _, deleted := c.deletes[id]; deleted {
			continue
		}
		if _, overwritten := c.writes[id]; overwritten {
			continue
		}
		if match(r.value) {
			return true
		}
	}
	for _, v := range c.writes {
		if match(v) {
			return true
		}
	}
	return false
}

// find returns private copies of the visible rows accepted by match, newest
// first, skipping offset rows and returning at most limit when limit > 0.
// Store lock must be held for reading.
func (c *changeset[T]) find(match func(T) bool, offset, limit int) ([]T, error) {
	var found []T
	for id, r := range c.table.rows {
		if _, deleted := c.deletes[id]; deleted {
			continue
		}
		if _, overwritten := c.writes[id]; overwritten {
			continue
		}
		if match(r.value) {
			found = append(found, r.value)
		}
	}
	for _, v := range c.writes {
		if match(v) {
			found = append(found, v)
		}
	}

	codec := c.table.codec
	slices.SortFunc(found, func(a, b T) int {
		if n := codec.createdAt(b).Compare(codec.createdAt(a)); n != 0 {
			return n
		}
		return strings.Compare(codec.id(b).String(), codec.id(a).String())
	})

	if offset > 0 {
		found = found[min(offset, len(found)):]
	}
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	result := make([]T, 0, len(found))
	for _, v := range found {
		copied, err := codec.clone(v)
		if err != nil {
			return nil, err
		}
		result = append(result, copied)
	}
	return result, nil
}

// validate runs under the exclusive store lock. Every row read for update
// must still carry the version seen, updated and deleted rows must still
// exist, inserts must not collide, and unique keys must stay unique.
func (c *changeset[T]) validate() error {
	for id, seen := range c.reads {
		r, ok := c.table.rows[id]
		if !ok || r.version != seen {
			return errs.NewStoreConflictError(c.table.name)
		}
	}
	for id := range c.writes {
		_, committed := c.table.rows[id]
		_, inserted := c.inserts[id]
		if inserted && committed {
			return errs.NewDuplicateRequestError(c.table.name, id.String())
		}
		if !inserted && !committed {
			return errs.NewStoreConflictError(c.table.name)
		}
	}
	for id := range c.deletes {
		if _, ok := c.table.rows[id]; !ok {
			return errs.NewStoreConflictError(c.table.name)
		}
	}
	return c.validateUnique()
}

func (c *changeset[T]) validateUnique() error {
	uniqueKey := c.table.codec.uniqueKey
	if uniqueKey == nil || len(c.writes) == 0 {
		return nil
	}

	taken := make(map[string]struct{})
	for id, r := range c.table.rows {
		if _, deleted := c.deletes[id]; deleted {
			continue
		}
		if _, overwritten := c.writes[id]; overwritten {
			continue
		}
		if key, ok := uniqueKey(r.value); ok {
			taken[key] = struct{}{}
		}
	}
	for id, v := range c.writes {
		key, ok := uniqueKey(v)
		if !ok {
			continue
		}
		if _, dup := taken[key]; dup {
			return errs.NewDuplicateRequestError(c.table.name, id.String())
		}
		taken[key] = struct{}{}
	}
	return nil
}

// apply publishes the buffered changes. It runs under the exclusive store
// lock, after validate succeeded for every changeset of the unit of work.
func (c *changeset[T]) apply(version uint64) {
	for id := range c.deletes {
		delete(c.table.rows, id)
	}
	for id, v := range c.writes {
		c.table.rows[id] = row[T]{value: v, version: version}
	}
	c.reset()
}
