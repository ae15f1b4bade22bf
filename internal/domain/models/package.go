package models

import "strings"

type PackageType string

const (
	PackageDomestic      PackageType = "domestic"
	PackageInternational PackageType = "international"
	PackageBudget        PackageType = "budget"
)

type TourType string

const (
	TourGroup      TourType = "group"
	TourIndividual TourType = "individual"
)

// DefaultAdvancePercent applies to group tours without an explicit override.
const DefaultAdvancePercent = 30

// TourPackage is an admin-managed tour offering. Duration is stored as the
// display string ("3 Days / 2 Nights"); the day count is derived from it.
type TourPackage struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Price          int64       `json:"price"`
	Duration       string      `json:"duration"`
	DurationDays   int         `json:"duration_days"`
	PackageType    PackageType `json:"package_type"`
	TourType       TourType    `json:"tour_type"`
	Country        string      `json:"country"`
	City           string      `json:"city"`
	AdvancePercent int         `json:"advance_percentage"`
	Description    string      `json:"description,omitempty"`
	ImageURL       string      `json:"image_url,omitempty"`
	CreatedAt      string      `json:"created_at,omitempty"`
}

func ParsePackageType(value string) (PackageType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "domestic":
		return PackageDomestic, true
	case "international":
		return PackageInternational, true
	case "budget":
		return PackageBudget, true
	default:
		return "", false
	}
}

func ParseTourType(value string) (TourType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "group":
		return TourGroup, true
	case "individual":
		return TourIndividual, true
	default:
		return "", false
	}
}
