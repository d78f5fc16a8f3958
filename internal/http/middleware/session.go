package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionCfg holds configuration for session middleware.
type SessionCfg struct {
	DB         *gorm.DB
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// Session is a database-backed session row. The cookie carries only the
// session id; everything else lives server-side.
type Session struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	UserID     string    `gorm:"type:char(36);not null;index:ix_sessions_user_id"`
	ExpiresAt  time.Time `gorm:"type:datetime(3);not null"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
	LastSeenAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Session) TableName() string { return "sessions" }

const (
	ctxKeySession   = "session"
	ctxKeyUserID    = "user_id"
	ctxKeyUserEmail = "user_email"
	ctxKeyUserRole  = "user_role"
)

// SessionMiddleware resolves the session cookie against the sessions
// table once per request and hands the result down through the context.
// Pages never re-query auth state on their own.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		var sess Session
		if err := cfg.DB.Where("id = ? AND expires_at > ?", sessionID, time.Now()).First(&sess).Error; err != nil {
			// Invalid or expired session, clear the cookie.
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		c.Set(ctxKeySession, &sess)
		c.Set(ctxKeyUserID, sess.UserID)

		var email, role string
		row := cfg.DB.Table("users").Select("email", "role").Where("id = ?", sess.UserID).Row()
		if err := row.Scan(&email, &role); err == nil {
			c.Set(ctxKeyUserEmail, email)
			c.Set(ctxKeyUserRole, role)
		}

		c.Next()
	}
}

// CreateSession opens a session for the user and returns it; the caller
// sets the cookie.
func CreateSession(cfg SessionCfg, userID string) (*Session, error) {
	sess := &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		ExpiresAt:  time.Now().Add(cfg.TTL),
		CreatedAt:  time.Now(),
		LastSeenAt: time.Now(),
	}
	if err := cfg.DB.Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// DeleteSession removes a session by id (sign-out).
func DeleteSession(cfg SessionCfg, sessionID string) error {
	return cfg.DB.Delete(&Session{}, "id = ?", sessionID).Error
}

// ContextUser is the authenticated user as seen by handlers.
type ContextUser struct {
	ID    string
	Email string
	Role  string
}

// CurrentUser retrieves the authenticated user from the gin context.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	idVal, exists := c.Get(ctxKeyUserID)
	if !exists {
		return ContextUser{}, false
	}
	id, ok := idVal.(string)
	if !ok || id == "" {
		return ContextUser{}, false
	}

	u := ContextUser{ID: id}
	if v, ok := c.Get(ctxKeyUserEmail); ok {
		u.Email, _ = v.(string)
	}
	if v, ok := c.Get(ctxKeyUserRole); ok {
		u.Role, _ = v.(string)
	}
	return u, true
}

// CurrentSession returns the resolved session row, when there is one.
func CurrentSession(c *gin.Context) (*Session, bool) {
	if v, ok := c.Get(ctxKeySession); ok {
		if s, ok := v.(*Session); ok {
			return s, true
		}
	}
	return nil, false
}
