package render

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Code0plux/Website/templates"
)

var pages = template.Must(template.ParseFS(templates.FS, "*.html"))

// Page executes the named template into a buffer first so a render
// failure becomes a clean 500 instead of a half-written body.
func Page(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
