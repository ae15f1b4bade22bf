package domain

import (
	"testing"

	"travelbook/internal/domain/models"
)

func TestAdvanceDue_GroupTours(t *testing.T) {
	if got := AdvanceDue(10000, models.TourGroup, 30); got != 3000 {
		t.Fatalf("30%% of 10000 should be 3000, got %d", got)
	}
	// unset percentage falls back to the default
	if got := AdvanceDue(10000, models.TourGroup, 0); got != 3000 {
		t.Fatalf("default advance should apply, got %d", got)
	}
	if got := AdvanceDue(10000, models.TourGroup, 100); got != 10000 {
		t.Fatalf("100%% advance is just the full price, got %d", got)
	}
	// rounding, not truncation
	if got := AdvanceDue(999, models.TourGroup, 30); got != 300 {
		t.Fatalf("999 * 0.30 rounds to 300, got %d", got)
	}
}

func TestAdvanceDue_IndividualToursPayInFull(t *testing.T) {
	if got := AdvanceDue(10000, models.TourIndividual, 30); got != 10000 {
		t.Fatalf("individual tours pay in full, got %d", got)
	}
}

func TestAdvanceDue_NonPositiveTotal(t *testing.T) {
	if got := AdvanceDue(0, models.TourGroup, 30); got != 0 {
		t.Fatalf("zero total owes nothing, got %d", got)
	}
	if got := AdvanceDue(-500, models.TourIndividual, 0); got != 0 {
		t.Fatalf("negative total owes nothing, got %d", got)
	}
}
