package controllers

import (
	"net/http"

	"staff-scheduler-api/config"
	"staff-scheduler-api/models"
	"staff-scheduler-api/store"
	"staff-scheduler-api/utils"

	"github.com/gin-gonic/gin"
)

func workdayResponse(w models.StaffWorkday) gin.H {
	return gin.H{
		"workday_id":            w.WorkdayID,
		"staff_id":              w.StaffID,
		"date":                  utils.FormatDate(w.Date),
		"number_of_days_worked": w.NumberOfDaysWorked,
		"details":               w.Details,
	}
}

// GetStaffWorkdays lists all worked-day records
func GetStaffWorkdays(c *gin.Context) {
	workdays, err := config.Data.Workdays.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff workdays"})
		return
	}

	responses := make([]gin.H, 0, len(workdays))
	for _, workday := range workdays {
		responses = append(responses, workdayResponse(workday))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"workdays": responses,
		"total":    len(responses),
	})
}

// GetStaffWorkday returns one worked-day record by id
func GetStaffWorkday(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	workday, err := config.Data.Workdays.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Staff workday", "Failed to load staff workday")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "workday": workdayResponse(workday)})
}

// CreateStaffWorkday records days worked by a staff member. Fractional
// values cover half days.
func CreateStaffWorkday(c *gin.Context) {
	type request struct {
		StaffID            int     `json:"staff_id" binding:"required"`
		Date               string  `json:"date" binding:"required"`
		NumberOfDaysWorked float64 `json:"number_of_days_worked" binding:"required,gt=0"`
		Details            string  `json:"details"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	workday, err := config.Data.Workdays.Create(c.Request.Context(), models.StaffWorkday{
		StaffID:            req.StaffID,
		Date:               date,
		NumberOfDaysWorked: req.NumberOfDaysWorked,
		Details:            utils.SanitizeInput(req.Details),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff workday"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Staff workday created successfully",
		"workday": workdayResponse(workday),
	})
}

// UpdateStaffWorkday applies a partial update to a worked-day record
func UpdateStaffWorkday(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	type request struct {
		StaffID            *int     `json:"staff_id"`
		Date               *string  `json:"date"`
		NumberOfDaysWorked *float64 `json:"number_of_days_worked"`
		Details            *string  `json:"details"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.NumberOfDaysWorked != nil && *req.NumberOfDaysWorked <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number_of_days_worked must be positive"})
		return
	}

	upd := store.StaffWorkdayUpdate{StaffID: req.StaffID, NumberOfDaysWorked: req.NumberOfDaysWorked}
	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		upd.Date = &date
	}
	if req.Details != nil {
		details := utils.SanitizeInput(*req.Details)
		upd.Details = &details
	}

	workday, err := config.Data.Workdays.Update(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Staff workday", "Failed to update staff workday")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Staff workday updated successfully",
		"workday": workdayResponse(workday),
	})
}

// DeleteStaffWorkday removes a worked-day record
func DeleteStaffWorkday(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := config.Data.Workdays.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err, "Staff workday", "Failed to delete staff workday")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Staff workday deleted successfully"})
}
