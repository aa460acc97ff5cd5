package models

import "time"

// PortConfig — desired role of one physical switch port.
// (SwitchNumber, PortName) is the natural key: at most one record per pair.
// ID is a surrogate uuid and is never used for lookups.
type PortConfig struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	SwitchNumber int       `gorm:"index:idx_port_natural,priority:1" json:"switch_number"`
	PortType     string    `gorm:"type:varchar(64);index" json:"port_type"`
	PortName     string    `gorm:"type:varchar(64);index:idx_port_natural,priority:2" json:"port_name"`
	ConfigType   string    `gorm:"type:varchar(64)" json:"config_type"`
	Description  *string   `gorm:"type:varchar(255)" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
