package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRecord is the durable key-value slot: one row per namespace
// holding that namespace's serialized state document.
type SnapshotRecord struct {
	Namespace string    `gorm:"primaryKey;size:64"`
	Data      []byte    `gorm:"type:blob"`
	UpdatedAt time.Time
}

type SnapshotRepository struct{ DB *gorm.DB }

func NewSnapshotRepository(db *gorm.DB) (*SnapshotRepository, error) {
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, err
	}
	return &SnapshotRepository{DB: db}, nil
}

func (r *SnapshotRepository) Load(namespace string) ([]byte, bool, error) {
	var rec SnapshotRecord
	err := r.DB.First(&rec, "namespace = ?", namespace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Data, true, nil
}

func (r *SnapshotRepository) Save(namespace string, data []byte) error {
	rec := SnapshotRecord{Namespace: namespace, Data: data, UpdatedAt: time.Now()}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
}
