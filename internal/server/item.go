package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/railzwaylabs/envelope/internal/catalog/domain"
	"github.com/railzwaylabs/envelope/pkg/db/pagination"
	"github.com/railzwaylabs/envelope/pkg/response"
	"go.uber.org/zap"
)

const headerCache = "X-Cache"

type createItemRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Price       string  `json:"price" binding:"required,numeric"`
}

// @Summary      Create Item
// @Description  Create a catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body createItemRequest true "Create Item Request"
// @Success      201  {object}  ItemEnvelope
// @Failure      400  {object}  ErrorEnvelope
// @Failure      409  {object}  ErrorEnvelope
// @Router       /items [post]
func (s *Server) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.itemSvc.Create(c.Request.Context(), catalogdomain.CreateRequest{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       strings.TrimSpace(req.Price),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.cache.Invalidate(c.Request.Context()); err != nil {
		s.log.Warn("failed to invalidate item pages", zap.Error(err))
	}

	respondData(c, http.StatusCreated, *resp, "Item created", response.CodeCreated)
}

// @Summary      Get Item
// @Description  Get item by ID
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  ItemEnvelope
// @Failure      404  {object}  ErrorEnvelope
// @Router       /items/{id} [get]
func (s *Server) GetItem(c *gin.Context) {
	resp, err := s.itemSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, *resp, "Item retrieved", "")
}

// @Summary      List Items
// @Description  List catalog items, newest first
// @Tags         items
// @Produce      json
// @Param        name       query  string  false  "Name contains"
// @Param        page       query  int     false  "Page (1-based)"
// @Param        page_size  query  int     false  "Page Size"
// @Success      200  {object}  ItemListEnvelope
// @Router       /items [get]
func (s *Server) ListItems(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name string `form:"name"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, err)
		return
	}

	page := query.Pagination.Normalize(s.cfg.Pagination.DefaultPageSize, s.cfg.Pagination.MaxPageSize)
	name := strings.TrimSpace(query.Name)

	key := s.cache.Key(c.Request.Context(), "items", url.QueryEscape(strings.ToLower(name)), strconv.Itoa(page.Page), strconv.Itoa(page.PageSize))
	if body, ok := s.cache.Get(c.Request.Context(), key); ok {
		c.Header(headerCache, "HIT")
		writeEnvelope(c, http.StatusOK, body, true, "")
		return
	}

	out, err := s.itemSvc.List(c.Request.Context(), catalogdomain.ListRequest{
		Name:     name,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	env := response.OkPaginated(out.Items, out.Total, out.Page, out.PageSize, "Items retrieved")
	body, err := env.Encode()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.cache.Enabled() {
		s.cache.Set(c.Request.Context(), key, body)
		c.Header(headerCache, "MISS")
	}
	writeEnvelope(c, http.StatusOK, body, env.Success, env.Code)
}
