package domain

import (
	"context"

	"github.com/railzwaylabs/envelope/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListFilter struct {
	Name string
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, item *Item) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Item, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Item, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*Item, error)
	Count(ctx context.Context, db *gorm.DB, filter ListFilter) (int64, error)
}
