package services

import (
	"time"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"
	"github.com/sandhu28/HOCMAN/internal/core/domain"
)

// DefaultLookbackDays bounds the default filter window
const DefaultLookbackDays = 90

// FilterSpec is the set of predicates applied to narrow a complaint listing.
// Type and Status use the "None" sentinel to disable their predicate; the
// date range always applies, with inclusive bounds.
type FilterSpec struct {
	FromDate time.Time
	ToDate   time.Time
	Type     string
	Status   string
}

// DefaultFilterSpec returns a spec with both sentinels set and a bounded
// look-back window ending at now
func DefaultFilterSpec() FilterSpec {
	now := time.Now()
	return FilterSpec{
		FromDate: now.AddDate(0, 0, -DefaultLookbackDays),
		ToDate:   now,
		Type:     domain.FilterNone,
		Status:   domain.FilterNone,
	}
}

// ApplyFilter returns the complaints matching every active predicate of the
// spec, preserving input order. It is pure: no side effects, and equal
// inputs always produce equal output.
//
// An inverted range (FromDate after ToDate) is not an error; no complaint
// can fall inside it, so the result is empty.
func ApplyFilter(complaints []*models.Complaint, spec FilterSpec) []*models.Complaint {
	result := []*models.Complaint{}
	for _, c := range complaints {
		if spec.Type != domain.FilterNone && c.Type != spec.Type {
			continue
		}
		if spec.Status != domain.FilterNone && c.Status != spec.Status {
			continue
		}
		if c.CreatedAt.Before(spec.FromDate) || c.CreatedAt.After(spec.ToDate) {
			continue
		}
		result = append(result, c)
	}
	return result
}
