package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Code0plux/Website/internal/http/flash"
	"github.com/Code0plux/Website/internal/http/middleware"
	"github.com/Code0plux/Website/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
