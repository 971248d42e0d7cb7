// Package ginmw adapts a coerce.Pipeline to gin handlers.
package ginmw

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	coerce "github.com/ALai57/malli-or-considered-dangerous"
)

const contentType = "application/json; charset=utf-8"

// Handler runs the pipeline against each request body and writes the
// pipeline's response verbatim. Validation outcomes, including decode
// failures, never surface as transport errors; they are structured 400
// bodies produced by the pipeline itself.
func Handler(p *coerce.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Data(http.StatusBadRequest, contentType, []byte(`{"error":"unable to read request body"}`))
			return
		}
		resp := p.Handle(c.Request.Context(), raw)
		c.Data(resp.Status, contentType, resp.Body)
	}
}
