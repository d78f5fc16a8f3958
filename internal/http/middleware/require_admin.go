package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Code0plux/Website/internal/http/flash"
	"github.com/Code0plux/Website/pkg/view"
)

// RequireAdmin guards the admin panel:
//   - not signed in: redirect to login with return_to (a navigation, not
//     an error — no error page)
//   - signed in without the admin role: flash + home redirect, or 403
//     for JSON clients
func RequireAdmin(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":      "authentication required",
					"request_id": GetRequestID(c),
				})
				return
			}

			returnTo := c.Request.URL.RequestURI()
			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashWarning,
				Message: "Please sign in to manage the store.",
			})
			c.Redirect(http.StatusFound, "/login?return_to="+url.QueryEscape(returnTo))
			c.Abort()
			return
		}

		if u.Role != "admin" {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":      "forbidden",
					"request_id": GetRequestID(c),
				})
				return
			}

			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashError,
				Message: "You do not have access to the admin panel.",
			})
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
