package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Code0plux/Website/internal/http/flash"
	"github.com/Code0plux/Website/internal/http/middleware"
	"github.com/Code0plux/Website/internal/http/render"
	"github.com/Code0plux/Website/internal/http/validation"
	adminsession "github.com/Code0plux/Website/internal/modules/admin"
	"github.com/Code0plux/Website/internal/modules/auth"
	"github.com/Code0plux/Website/pkg/view"
)

// AuthHandlers serves the admin login and logout.
type AuthHandlers struct {
	users   *auth.Repo
	flash   *flash.Codec
	sessCfg middleware.SessionCfg
	drafts  *adminsession.Store
}

func NewAuthHandlers(users *auth.Repo, flashCodec *flash.Codec, sessCfg middleware.SessionCfg, drafts *adminsession.Store) *AuthHandlers {
	return &AuthHandlers{users: users, flash: flashCodec, sessCfg: sessCfg, drafts: drafts}
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (h *AuthHandlers) LoginGet(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	render.Page(c, http.StatusOK, "login.html", view.LoginPage{
		Title:    "Sign in",
		ReturnTo: normalizeReturnTo(c.Query("return_to")),
		Flash:    middleware.GetFlash(c),
	})
}

func (h *AuthHandlers) LoginPost(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		render.Page(c, http.StatusBadRequest, "login.html", view.LoginPage{
			Title:    "Sign in",
			ReturnTo: returnTo,
			Form:     view.LoginForm{Email: in.Email},
			Errors:   validation.FromBindError(err, &in),
			Flash:    middleware.GetFlash(c),
		})
		return
	}

	u, err := h.users.GetByEmail(c.Request.Context(), in.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		_ = c.Error(err)
		return
	}
	// One message for unknown email and wrong password alike.
	if err != nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		render.Page(c, http.StatusUnauthorized, "login.html", view.LoginPage{
			Title:    "Sign in",
			ReturnTo: returnTo,
			Form:     view.LoginForm{Email: in.Email},
			PageMsg:  "Invalid email or password.",
			Flash:    middleware.GetFlash(c),
		})
		return
	}

	sess, err := middleware.CreateSession(h.sessCfg, u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessCfg.CookieName, sess.ID, int(h.sessCfg.TTL.Seconds()), "/", "", h.sessCfg.Secure, true)

	dest := "/admin"
	if returnTo != "" {
		dest = returnTo
	}
	render.RedirectWithFlash(c, h.flash, dest, view.FlashSuccess, "Signed in.")
}

func (h *AuthHandlers) LogoutPost(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		if err := middleware.DeleteSession(h.sessCfg, sess.ID); err != nil {
			_ = c.Error(err)
		}
		h.drafts.Drop(sess.ID)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessCfg.CookieName, "", -1, "/", "", h.sessCfg.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}
