package handlers

import (
	"net/http"
	"strings"

	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

// POST /api/queries (public contact form)
func CreateQuery(c *gin.Context) {
	var req models.ContactQuery
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		RespondError(c, http.StatusBadRequest, "name and message required", nil)
		return
	}
	repo := repositories.QueryRepository{}
	id, err := repo.Create(req)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save query", err)
		return
	}
	req.ID = id
	c.JSON(http.StatusCreated, req)
}

// GET /api/queries (admin)
func GetQueries(c *gin.Context) {
	repo := repositories.QueryRepository{}
	queries, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load queries", err)
		return
	}
	c.JSON(http.StatusOK, queries)
}

// DELETE /api/queries/:id (admin)
func DeleteQuery(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.QueryRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "query deleted"})
}
