package postgres

import (
	"storefront/internal/adapters/out/postgres/messagerepo"
	"storefront/internal/adapters/out/postgres/notificationrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema: all persistence tables and
// the sequence backing human-readable order codes.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.HistoryDTO{},
		&messagerepo.MessageDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		return err
	}

	return db.Exec("CREATE SEQUENCE IF NOT EXISTS order_code_seq").Error
}
