package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staff-scheduler-api/config"
	"staff-scheduler-api/models"
	"staff-scheduler-api/store"

	"github.com/gin-gonic/gin"
)

func newScheduleRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemoryStore()
	ctx := context.Background()
	if _, err := s.Staff.Create(ctx, models.Staff{Name: "Amelia", Role: "Manager", DailyRate: 300}); err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	if _, err := s.Projects.Create(ctx, models.Project{Name: "Extension", Status: models.ProjectStatusActive}); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	config.Data = s

	router := gin.New()
	router.PUT("/schedules/day/:date", ReplaceScheduleDay)
	return router
}

func TestReplaceScheduleDayInvalidStaffIDIs400(t *testing.T) {
	router := newScheduleRouter(t)

	body := `{"assignments":[{"staff_id":-1,"project_id":1}]}`
	req := httptest.NewRequest(http.MethodPut, "/schedules/day/2026-08-03", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
}

func TestReplaceScheduleDayDuplicateStaffIs400(t *testing.T) {
	router := newScheduleRouter(t)

	body := `{"assignments":[{"staff_id":1,"project_id":1},{"staff_id":1,"project_id":1}]}`
	req := httptest.NewRequest(http.MethodPut, "/schedules/day/2026-08-03", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
}

func TestReplaceScheduleDayOK(t *testing.T) {
	router := newScheduleRouter(t)

	body := `{"assignments":[{"staff_id":1,"project_id":1}]}`
	req := httptest.NewRequest(http.MethodPut, "/schedules/day/2026-08-03", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	rows, err := config.Data.Schedules.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].StaffID != 1 {
		t.Fatalf("stored rows = %+v, want one row for staff 1", rows)
	}
}
