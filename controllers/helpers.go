package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"staff-scheduler-api/store"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment. Writes the 400 response itself and
// reports success through the bool.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// storeError maps a data layer failure onto the HTTP response: NotFound
// becomes 404 with the entity name, anything else a 500 with the fallback
// message.
func storeError(c *gin.Context, err error, entity, fallback string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
