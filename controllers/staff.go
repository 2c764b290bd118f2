package controllers

import (
	"net/http"

	"staff-scheduler-api/config"
	"staff-scheduler-api/models"
	"staff-scheduler-api/store"
	"staff-scheduler-api/utils"

	"github.com/gin-gonic/gin"
)

// GetStaffList lists all staff members
func GetStaffList(c *gin.Context) {
	staff, err := config.Data.Staff.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"staff":   staff,
		"total":   len(staff),
	})
}

// GetStaffMember returns one staff member by id
func GetStaffMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	member, err := config.Data.Staff.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Staff member", "Failed to load staff member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "staff": member})
}

// CreateStaffMember handles staff creation
func CreateStaffMember(c *gin.Context) {
	type request struct {
		Name      string  `json:"name" binding:"required"`
		Role      string  `json:"role"`
		DailyRate float64 `json:"daily_rate" binding:"gte=0"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := config.Data.Staff.Create(c.Request.Context(), models.Staff{
		Name:      utils.SanitizeInput(req.Name),
		Role:      utils.SanitizeInput(req.Role),
		DailyRate: req.DailyRate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Staff member created successfully",
		"staff":   member,
	})
}

// UpdateStaffMember applies a partial update to a staff member
func UpdateStaffMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	type request struct {
		Name      *string  `json:"name"`
		Role      *string  `json:"role"`
		DailyRate *float64 `json:"daily_rate"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.StaffUpdate{DailyRate: req.DailyRate}
	if req.Name != nil {
		name := utils.SanitizeInput(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		upd.Name = &name
	}
	if req.Role != nil {
		role := utils.SanitizeInput(*req.Role)
		upd.Role = &role
	}
	if req.DailyRate != nil && *req.DailyRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "daily_rate cannot be negative"})
		return
	}

	member, err := config.Data.Staff.Update(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Staff member", "Failed to update staff member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Staff member updated successfully",
		"staff":   member,
	})
}

// DeleteStaffMember removes a staff member. Schedule rows referencing the
// member are left in place with a dangling reference.
func DeleteStaffMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := config.Data.Staff.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err, "Staff member", "Failed to delete staff member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Staff member deleted successfully"})
}
