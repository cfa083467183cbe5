package postgres

import (
	"careshare/internal/adapters/out/postgres/donateitemrepo"
	"careshare/internal/adapters/out/postgres/donaterequestrepo"
	"careshare/internal/adapters/out/postgres/exchangerequestrepo"
	"careshare/internal/adapters/out/postgres/productrepo"
	"careshare/internal/adapters/out/postgres/purchaserequestrepo"

	"gorm.io/gorm"
)

// Models lists every table the workflow owns, in creation order.
func Models() []any {
	return []any{
		&productrepo.ProductDTO{},
		&donateitemrepo.DonateItemDTO{},
		&donaterequestrepo.DonateRequestDTO{},
		&exchangerequestrepo.ExchangeRequestDTO{},
		&purchaserequestrepo.PurchaseRequestDTO{},
	}
}

// AutoMigrate creates or updates the workflow tables and indexes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
