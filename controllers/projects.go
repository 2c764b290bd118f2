package controllers

import (
	"net/http"

	"staff-scheduler-api/config"
	"staff-scheduler-api/models"
	"staff-scheduler-api/store"
	"staff-scheduler-api/utils"

	"github.com/gin-gonic/gin"
)

func projectResponse(p models.Project) gin.H {
	return gin.H{
		"project_id":  p.ProjectID,
		"name":        p.Name,
		"description": p.Description,
		"status":      p.Status,
		"color":       p.Color,
		"created_at":  p.CreatedAt.Format("2006-01-02"),
	}
}

// GetProjects lists all projects, optionally filtered by status
func GetProjects(c *gin.Context) {
	projects, err := config.Data.Projects.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	status := c.Query("status")
	responses := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		if status != "" && project.Status != status {
			continue
		}
		responses = append(responses, projectResponse(project))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": responses,
		"total":    len(responses),
	})
}

// GetProject returns one project by id
func GetProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	project, err := config.Data.Projects.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Project", "Failed to load project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": projectResponse(project)})
}

// CreateProject handles project creation
func CreateProject(c *gin.Context) {
	type request struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Status      string `json:"status"`
		Color       string `json:"color"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status == "" {
		req.Status = models.ProjectStatusActive
	}
	if !models.IsValidProjectStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Use Active, On-Hold or Completed"})
		return
	}
	if req.Color == "" {
		req.Color = "#3b82f6"
	}

	project, err := config.Data.Projects.Create(c.Request.Context(), models.Project{
		Name:        utils.SanitizeInput(req.Name),
		Description: utils.SanitizeInput(req.Description),
		Status:      req.Status,
		Color:       req.Color,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"project": projectResponse(project),
	})
}

// UpdateProject applies a partial update to a project
func UpdateProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	type request struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		Color       *string `json:"color"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.ProjectUpdate{Color: req.Color}
	if req.Name != nil {
		name := utils.SanitizeInput(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		upd.Name = &name
	}
	if req.Description != nil {
		description := utils.SanitizeInput(*req.Description)
		upd.Description = &description
	}
	if req.Status != nil {
		if !models.IsValidProjectStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Use Active, On-Hold or Completed"})
			return
		}
		upd.Status = req.Status
	}

	project, err := config.Data.Projects.Update(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Project", "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"project": projectResponse(project),
	})
}

// DeleteProject removes a project
func DeleteProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := config.Data.Projects.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err, "Project", "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}
