package server

import (
	catalogdomain "github.com/railzwaylabs/envelope/internal/catalog/domain"
	"github.com/railzwaylabs/envelope/pkg/response"
)

// Concrete envelope shapes, named for the API docs.
type (
	StatusEnvelope   = response.Response[any]
	ErrorEnvelope    = response.Response[any]
	ItemEnvelope     = response.Response[catalogdomain.Response]
	ItemListEnvelope = response.Response[[]catalogdomain.Response]
)
