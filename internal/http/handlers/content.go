package handlers

import (
	"net/http"
	"strings"

	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/countries
func GetCountries(c *gin.Context) {
	repo := repositories.ContentRepository{}
	countries, err := repo.ListCountries()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load countries", err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// POST /api/countries (admin)
func CreateCountry(c *gin.Context) {
	var req models.Country
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		RespondError(c, http.StatusBadRequest, "name required", nil)
		return
	}
	repo := repositories.ContentRepository{}
	id, err := repo.CreateCountry(req)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save country", err)
		return
	}
	req.ID = id
	c.JSON(http.StatusCreated, req)
}

// PUT /api/countries/:id (admin)
func UpdateCountry(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req models.Country
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ContentRepository{}
	if err := repo.UpdateCountry(id, req); err != nil {
		RespondDomainError(c, err)
		return
	}
	req.ID = id
	c.JSON(http.StatusOK, req)
}

// DELETE /api/countries/:id (admin)
func DeleteCountry(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.ContentRepository{}
	if err := repo.DeleteCountry(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "country deleted"})
}

// GET /api/gallery
func GetGallery(c *gin.Context) {
	repo := repositories.ContentRepository{}
	images, err := repo.ListGallery()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load gallery", err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// POST /api/gallery (admin)
func CreateGalleryImage(c *gin.Context) {
	var req models.GalleryImage
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		RespondError(c, http.StatusBadRequest, "image_url required", nil)
		return
	}
	repo := repositories.ContentRepository{}
	id, err := repo.CreateGalleryImage(req)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save image", err)
		return
	}
	req.ID = id
	c.JSON(http.StatusCreated, req)
}

// DELETE /api/gallery/:id (admin)
func DeleteGalleryImage(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.ContentRepository{}
	if err := repo.DeleteGalleryImage(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}

// GET /api/pages/:slug
func GetPageContent(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	repo := repositories.ContentRepository{}
	page, err := repo.GetPageContent(slug)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// PUT /api/pages/:slug (admin)
func UpsertPageContent(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	var req models.PageContent
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Slug = slug
	repo := repositories.ContentRepository{}
	if err := repo.UpsertPageContent(req); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save page", err)
		return
	}
	c.JSON(http.StatusOK, req)
}
