package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ororso11/m-led/internal/http/middleware"
	"github.com/ororso11/m-led/internal/http/validation"
	"github.com/ororso11/m-led/internal/modules/auth"
	"github.com/ororso11/m-led/internal/shared/apperr"
)

type AuthHandler struct {
	svc        *auth.Service
	sessionCfg middleware.SessionCfg
}

func NewAuthHandler(svc *auth.Service, sessionCfg middleware.SessionCfg) *AuthHandler {
	return &AuthHandler{svc: svc, sessionCfg: sessionCfg}
}

type loginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("The submitted data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	sess, err := middleware.CreateSession(h.sessionCfg, u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.SetCookie(h.sessionCfg.CookieName, sess.ID, int(h.sessionCfg.TTL.Seconds()), "/", "", h.sessionCfg.Secure, true)
	c.JSON(http.StatusOK, gin.H{
		"email": u.Email,
		"role":  u.Role,
	})
}

// Logout handles POST /api/logout. Always succeeds, even without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.sessionCfg.CookieName); err == nil && sessionID != "" {
		_ = middleware.DeleteSession(h.sessionCfg, sessionID)
	}
	c.SetCookie(h.sessionCfg.CookieName, "", -1, "/", "", h.sessionCfg.Secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
