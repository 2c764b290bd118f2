package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"staff-scheduler-api/models"

	"github.com/gin-gonic/gin"
)

func adminGateStatus(t *testing.T, setup gin.HandlerFunc) int {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handlers := []gin.HandlerFunc{}
	if setup != nil {
		handlers = append(handlers, setup)
	}
	handlers = append(handlers, RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/guarded", handlers...)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRequireAdmin(t *testing.T) {
	asUser := func(user models.User) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("currentUser", user)
		}
	}

	if got := adminGateStatus(t, asUser(models.User{UserID: 1, Role: models.RoleAdmin})); got != http.StatusOK {
		t.Errorf("admin status = %d, want 200", got)
	}
	if got := adminGateStatus(t, asUser(models.User{UserID: 2, Role: models.RoleMember})); got != http.StatusForbidden {
		t.Errorf("member status = %d, want 403", got)
	}
	if got := adminGateStatus(t, nil); got != http.StatusForbidden {
		t.Errorf("anonymous status = %d, want 403", got)
	}
}
