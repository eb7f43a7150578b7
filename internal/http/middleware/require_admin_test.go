package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func adminEngine(seed func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if seed != nil {
		r.Use(func(c *gin.Context) { seed(c); c.Next() })
	}
	r.GET("/api/admin/ping", RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name string
		seed func(c *gin.Context)
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"non-admin", func(c *gin.Context) {
			c.Set("user_id", "u1")
			c.Set("user_role", "viewer")
		}, http.StatusForbidden},
		{"admin", func(c *gin.Context) {
			c.Set("user_id", "u1")
			c.Set("user_role", "admin")
		}, http.StatusOK},
	}

	for _, tc := range cases {
		r := adminEngine(tc.seed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil))
		if w.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, w.Code, tc.want)
		}
	}
}
