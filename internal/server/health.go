package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/railzwaylabs/envelope/pkg/response"
)

// @Summary      Health
// @Tags         system
// @Produce      json
// @Success      200  {object}  StatusEnvelope
// @Router       /healthz [get]
func (s *Server) Health(c *gin.Context) {
	respond(c, http.StatusOK, response.Ok[any]("ok"))
}
