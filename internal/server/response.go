package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/railzwaylabs/envelope/pkg/response"
)

const (
	ctxKeyEnvelopeSuccess = "envelope.success"
	ctxKeyEnvelopeCode    = "envelope.code"

	contentTypeJSON = "application/json; charset=utf-8"
)

// respond encodes the envelope and writes it. A payload that cannot be
// encoded is recorded on the context and replaced by a server error.
func respond[T any](c *gin.Context, status int, resp *response.Response[T]) {
	body, err := resp.Encode()
	if err != nil {
		_ = c.Error(err)
		fallback := response.ServerError[any]("")
		body, _ = fallback.Encode()
		writeEnvelope(c, http.StatusInternalServerError, body, fallback.Success, fallback.Code)
		return
	}
	writeEnvelope(c, status, body, resp.Success, resp.Code)
}

func writeEnvelope(c *gin.Context, status int, body []byte, success bool, code string) {
	c.Set(ctxKeyEnvelopeSuccess, success)
	c.Set(ctxKeyEnvelopeCode, code)
	c.Data(status, contentTypeJSON, body)
}

func respondData[T any](c *gin.Context, status int, data T, message, code string) {
	respond(c, status, response.OkWithData(data, message, code))
}

func envelopeOutcome(c *gin.Context) (success bool, code string, ok bool) {
	v, exists := c.Get(ctxKeyEnvelopeSuccess)
	if !exists {
		return false, "", false
	}
	success, _ = v.(bool)
	code = c.GetString(ctxKeyEnvelopeCode)
	return success, code, true
}
