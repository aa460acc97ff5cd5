// internal/db/migrations.go
package db

import (
	"fmt"

	"gorm.io/gorm"
)

// MigratePortNaturalKey enforces at most one port_configs row per
// (switch_number, port_name). AutoMigrate creates the plain index from
// the model tags; the uniqueness guarantee is added here per dialect.
func MigratePortNaturalKey(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	dialect := db.Dialector.Name()

	switch dialect {
	case "mysql":
		_ = db.Exec("DROP INDEX `idx_port_natural` ON `port_configs`").Error
		// no IF NOT EXISTS for indexes on MySQL, guard by hand
		if db.Migrator().HasIndex("port_configs", "ux_port_configs_switch_port") {
			return nil
		}
		return db.Exec("CREATE UNIQUE INDEX `ux_port_configs_switch_port` ON `port_configs` (`switch_number`, `port_name`)").Error

	case "postgres":
		_ = db.Exec(`DROP INDEX IF EXISTS idx_port_natural`).Error
		return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ux_port_configs_switch_port ON "port_configs" ("switch_number", "port_name")`).Error

	case "sqlite":
		_ = db.Exec(`DROP INDEX IF EXISTS idx_port_natural`).Error
		return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ux_port_configs_switch_port ON port_configs (switch_number, port_name)`).Error

	default:
		return fmt.Errorf("unsupported dialect: %s", dialect)
	}
}
