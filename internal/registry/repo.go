package registry

import (
	"errors"

	"switchcfg/internal/models"

	"gorm.io/gorm"
)

// Repo is the GORM-backed Store. Works against sqlite, mysql and
// postgres; see internal/db for the connection and index migration.
type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Replace(rec models.PortConfig) error {
	// Delete-then-create inside one transaction mirrors a full-document
	// upsert: the replacement keeps nothing of the old record.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("switch_number = ? AND port_name = ?", rec.SwitchNumber, rec.PortName).
			Delete(&models.PortConfig{}).Error; err != nil {
			return err
		}
		return tx.Create(&rec).Error
	})
}

func (r *Repo) Find(f Filter, limit int) ([]models.PortConfig, error) {
	q := r.db.Model(&models.PortConfig{})
	if f.SwitchNumber != nil {
		q = q.Where("switch_number = ?", *f.SwitchNumber)
	}
	if f.PortType != nil {
		q = q.Where("port_type = ?", *f.PortType)
	}
	var out []models.PortConfig
	err := q.Limit(limit).Find(&out).Error
	return out, err
}

func (r *Repo) FindOne(portName string, switchNumber int) (*models.PortConfig, error) {
	var m models.PortConfig
	err := r.db.
		Where("port_name = ? AND switch_number = ?", portName, switchNumber).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repo) UpdateOne(portName string, switchNumber int, values map[string]any) (int64, error) {
	tx := r.db.Model(&models.PortConfig{}).
		Where("port_name = ? AND switch_number = ?", portName, switchNumber).
		Updates(values)
	return tx.RowsAffected, tx.Error
}

func (r *Repo) DeleteMany(switchNumber *int) (int64, error) {
	q := r.db
	if switchNumber != nil {
		q = q.Where("switch_number = ?", *switchNumber)
	} else {
		// GORM refuses an unconditioned bulk delete
		q = q.Where("1 = 1")
	}
	tx := q.Delete(&models.PortConfig{})
	return tx.RowsAffected, tx.Error
}
