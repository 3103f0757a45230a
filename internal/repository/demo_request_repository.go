package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/model"
)

type DemoRequestRepository struct {
	db *gorm.DB
}

func NewDemoRequestRepository(db *gorm.DB) *DemoRequestRepository {
	return &DemoRequestRepository{db}
}

func (r *DemoRequestRepository) Create(ctx context.Context, d *model.DemoRequest) error {
	return r.db.WithContext(ctx).Create(d).Error
}
