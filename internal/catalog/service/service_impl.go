package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/railzwaylabs/envelope/internal/catalog/domain"
	"github.com/railzwaylabs/envelope/internal/clock"
	"github.com/railzwaylabs/envelope/internal/config"
	"github.com/railzwaylabs/envelope/pkg/db/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Config config.Config
	Repo   domain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	repo        domain.Repository
	defaultSize int
	maxSize     int
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("catalog.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		defaultSize: p.Config.Pagination.DefaultPageSize,
		maxSize:     p.Config.Pagination.MaxPageSize,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	itemSlug := slug.Make(name)
	if itemSlug == "" {
		return nil, domain.ErrInvalidName
	}
	existing, err := s.repo.FindBySlug(ctx, s.db, itemSlug)
	if err != nil {
		return nil, fmt.Errorf("find item by slug: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSlug
	}

	var description *string
	if req.Description != nil {
		if trimmed := strings.TrimSpace(*req.Description); trimmed != "" {
			description = &trimmed
		}
	}

	now := s.clock.Now(ctx)
	item := &domain.Item{
		ID:          s.genID.Generate().Int64(),
		Slug:        itemSlug,
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, s.db, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.Debug("item created", zap.Int64("item_id", item.ID), zap.String("slug", item.Slug))
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	itemID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || itemID <= 0 {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, itemID.Int64())
	if err != nil {
		return nil, fmt.Errorf("find item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	page := pagination.Pagination{
		Page:     req.Page,
		PageSize: req.PageSize,
	}.Normalize(s.defaultSize, s.maxSize)
	filter := domain.ListFilter{Name: strings.TrimSpace(req.Name)}

	total, err := s.repo.Count(ctx, s.db, filter)
	if err != nil {
		return domain.ListResponse{}, fmt.Errorf("count items: %w", err)
	}

	out := domain.ListResponse{
		Items:    []domain.Response{},
		Total:    int(total),
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	if total == 0 || page.Offset() >= int(total) {
		return out, nil
	}

	items, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return domain.ListResponse{}, fmt.Errorf("list items: %w", err)
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		out.Items = append(out.Items, toResponse(item))
	}
	return out, nil
}

func toResponse(item *domain.Item) domain.Response {
	return domain.Response{
		ID:          snowflake.ID(item.ID).String(),
		Slug:        item.Slug,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
