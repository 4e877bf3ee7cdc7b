package page

import (
	_ "embed"
	"github.com/gin-gonic/gin"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index serves the manual-testing page that drives the user routes.
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
