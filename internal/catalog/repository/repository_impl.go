package repository

import (
	"context"
	"strings"

	"github.com/railzwaylabs/envelope/internal/catalog/domain"
	"github.com/railzwaylabs/envelope/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const itemColumns = `id, slug, name, description, price, created_at, updated_at`

func (r *repo) Create(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO items (`+itemColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.Slug,
		item.Name,
		item.Description,
		item.Price,
		item.CreatedAt,
		item.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).Raw(
		`SELECT `+itemColumns+` FROM items WHERE id = ?`,
		id,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).Raw(
		`SELECT `+itemColumns+` FROM items WHERE slug = ? LIMIT 1`,
		slug,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Pagination) ([]*domain.Item, error) {
	where, args := buildFilter(filter)
	args = append(args, page.Limit(), page.Offset())

	var items []*domain.Item
	err := db.WithContext(ctx).Raw(
		`SELECT `+itemColumns+` FROM items`+where+`
		 ORDER BY created_at DESC, id DESC
		 LIMIT ? OFFSET ?`,
		args...,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB, filter domain.ListFilter) (int64, error) {
	where, args := buildFilter(filter)

	var total int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM items`+where,
		args...,
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func buildFilter(filter domain.ListFilter) (string, []any) {
	name := strings.TrimSpace(filter.Name)
	if name == "" {
		return "", nil
	}
	return ` WHERE LOWER(name) LIKE ?`, []any{"%" + strings.ToLower(name) + "%"}
}
