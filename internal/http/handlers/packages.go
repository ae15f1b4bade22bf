package handlers

import (
	"net/http"
	"strings"

	"travelbook/internal/domain/models"
	"travelbook/internal/http/middleware"
	"travelbook/internal/repositories"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/packages?type=domestic|international|budget
func GetPackages(c *gin.Context) {
	repo := repositories.PackageRepository{}
	packages, err := repo.List(c.Query("type"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load packages", err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/:id
func GetPackageByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.PackageRepository{}
	pkg, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GET /api/domestic/:place
func GetDomesticByPlace(c *gin.Context) {
	svc := services.PackageService{RequestID: middleware.GetRequestID(c)}
	packages, err := svc.ListByPlace(string(models.PackageDomestic), c.Param("place"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load packages", err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/budget/:place
func GetBudgetByPlace(c *gin.Context) {
	svc := services.PackageService{RequestID: middleware.GetRequestID(c)}
	packages, err := svc.ListByPlace(string(models.PackageBudget), c.Param("place"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load packages", err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/international/:country
func GetInternationalByCountry(c *gin.Context) {
	svc := services.PackageService{RequestID: middleware.GetRequestID(c)}
	packages, err := svc.ListByCountry(c.Param("country"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load packages", err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

type packageRequest struct {
	Title          string `json:"title"`
	Price          int64  `json:"price"`
	Duration       string `json:"duration"`
	PackageType    string `json:"package_type"`
	TourType       string `json:"tour_type"`
	Country        string `json:"country"`
	City           string `json:"city"`
	AdvancePercent int    `json:"advance_percentage"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
}

func (r packageRequest) toModel(c *gin.Context) (models.TourPackage, bool) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		RespondError(c, http.StatusBadRequest, "title required", nil)
		return models.TourPackage{}, false
	}
	if r.Price <= 0 {
		RespondError(c, http.StatusBadRequest, "price must be positive", nil)
		return models.TourPackage{}, false
	}
	pkgType, ok := models.ParsePackageType(r.PackageType)
	if !ok {
		RespondError(c, http.StatusBadRequest, "unknown package_type", nil)
		return models.TourPackage{}, false
	}
	tourType, ok := models.ParseTourType(r.TourType)
	if !ok {
		tourType = models.TourIndividual
	}
	advance := r.AdvancePercent
	if advance <= 0 || advance > 100 {
		advance = models.DefaultAdvancePercent
	}
	return models.TourPackage{
		Title:          title,
		Price:          r.Price,
		Duration:       strings.TrimSpace(r.Duration),
		PackageType:    pkgType,
		TourType:       tourType,
		Country:        strings.TrimSpace(r.Country),
		City:           strings.TrimSpace(r.City),
		AdvancePercent: advance,
		Description:    r.Description,
		ImageURL:       strings.TrimSpace(r.ImageURL),
	}, true
}

// POST /api/packages (admin)
func CreatePackage(c *gin.Context) {
	var req packageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	pkg, ok := req.toModel(c)
	if !ok {
		return
	}
	repo := repositories.PackageRepository{}
	id, err := repo.Create(pkg)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save package", err)
		return
	}
	pkg.ID = id
	c.JSON(http.StatusCreated, pkg)
}

// PUT /api/packages/:id (admin)
func UpdatePackage(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req packageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	pkg, ok := req.toModel(c)
	if !ok {
		return
	}
	repo := repositories.PackageRepository{}
	if err := repo.Update(id, pkg); err != nil {
		RespondDomainError(c, err)
		return
	}
	pkg.ID = id
	c.JSON(http.StatusOK, pkg)
}

// DELETE /api/packages/:id (admin)
func DeletePackage(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.PackageRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}
