package services

import (
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
)

type PackageService struct {
	PackageRepo repositories.PackageRepository
	Matcher     domain.PlaceMatcher
	RequestID   string
}

func (s PackageService) matches(freeText, routeKey string) bool {
	// zero-value service falls back to the default variants table
	if s.Matcher.Empty() {
		return domain.MatchesPlace(freeText, routeKey)
	}
	return s.Matcher.Matches(freeText, routeKey)
}

// ListByPlace returns packages of the given type whose city matches the URL
// route segment. An unknown place yields an empty list, which the frontend
// renders as "no packages found".
func (s PackageService) ListByPlace(packageType, routeKey string) ([]models.TourPackage, error) {
	packages, err := s.PackageRepo.List(packageType)
	if err != nil {
		return nil, err
	}
	out := []models.TourPackage{}
	for _, p := range packages {
		if s.matches(p.City, routeKey) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListByCountry mirrors ListByPlace for the /international/:country routes,
// matching on the package country field.
func (s PackageService) ListByCountry(routeKey string) ([]models.TourPackage, error) {
	packages, err := s.PackageRepo.List(string(models.PackageInternational))
	if err != nil {
		return nil, err
	}
	out := []models.TourPackage{}
	for _, p := range packages {
		if s.matches(p.Country, routeKey) {
			out = append(out, p)
		}
	}
	return out, nil
}
