package ports

import "careshare/internal/core/domain/model/kernel"

// ListFilter narrows a repository Find. Nil fields do not filter. Results are
// ordered newest first.
type ListFilter struct {
	// Status is a status name of the repository's kind.
	Status *string

	// CreatorID matches the owner of a listing, the donor of an item, or the
	// requester or buyer of a request.
	CreatorID *kernel.UUID

	// TargetOwnerID matches requests whose product or item belongs to this
	// user. Product and donate item repositories ignore it.
	TargetOwnerID *kernel.UUID

	Limit  int
	Offset int
}
