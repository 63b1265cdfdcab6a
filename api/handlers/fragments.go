// ABOUTME: Fragment handlers map HTTP requests onto shortcode controllers
// ABOUTME: Responses are always 200 with HTML; failures return the fallback fragment

package handlers

import (
	"net/http"

	"cs-embed-api/core/interfaces"
	"cs-embed-api/core/shortcode"

	"github.com/gin-gonic/gin"
)

// FragmentHandler serves the rendered HTML fragments.
type FragmentHandler struct {
	deps interfaces.Dependencies
}

// NewFragmentHandler creates a fragment handler with the given dependencies.
func NewFragmentHandler(deps interfaces.Dependencies) *FragmentHandler {
	return &FragmentHandler{deps: deps}
}

// Render handles GET /fragments/:name. Query parameters are the shortcode
// attributes; unknown fragment names are the only 404 here. Everything else,
// including a missing church_name or an upstream outage, yields HTTP 200
// with either the fragment or the fallback, so an embedding page never sees
// a broken include.
func (h *FragmentHandler) Render(c *gin.Context) {
	name := c.Param("name")

	controller, ok := shortcode.New(name, h.deps, queryAtts(c), c.Request.URL.Path)
	if !ok {
		c.String(http.StatusNotFound, "unknown fragment %q", name)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(controller.Run(c.Request.Context())))
}

// queryAtts flattens the query string into the attribute map. Repeated keys
// keep their first value, matching the single-value attribute model.
func queryAtts(c *gin.Context) map[string]string {
	atts := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			atts[key] = values[0]
		}
	}
	return atts
}
