package services

import (
	"testing"
	"time"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"
	"github.com/sandhu28/HOCMAN/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleComplaints() []*models.Complaint {
	return []*models.Complaint{
		{ID: "c1", Type: "AC", Status: domain.StatusPending, CreatedAt: day("2026-06-01")},
		{ID: "c2", Type: "Fan", Status: domain.StatusDone, CreatedAt: day("2026-06-05")},
		{ID: "c3", Type: "AC", Status: domain.StatusDone, CreatedAt: day("2026-06-10")},
		{ID: "c4", Type: "Geyser", Status: domain.StatusPending, CreatedAt: day("2026-07-01")},
	}
}

func TestApplyFilter_SentinelsPassEverything(t *testing.T) {
	complaints := sampleComplaints()
	spec := FilterSpec{
		FromDate: day("2026-01-01"),
		ToDate:   day("2026-12-31"),
		Type:     domain.FilterNone,
		Status:   domain.FilterNone,
	}

	result := ApplyFilter(complaints, spec)

	assert.Len(t, result, 4)
	// Input order is preserved
	assert.Equal(t, "c1", result[0].ID)
	assert.Equal(t, "c4", result[3].ID)
}

func TestApplyFilter_ByType(t *testing.T) {
	spec := FilterSpec{
		FromDate: day("2026-01-01"),
		ToDate:   day("2026-12-31"),
		Type:     "AC",
		Status:   domain.FilterNone,
	}

	result := ApplyFilter(sampleComplaints(), spec)

	assert.Len(t, result, 2)
	assert.Equal(t, "c1", result[0].ID)
	assert.Equal(t, "c3", result[1].ID)
}

func TestApplyFilter_ByStatus(t *testing.T) {
	spec := FilterSpec{
		FromDate: day("2026-01-01"),
		ToDate:   day("2026-12-31"),
		Type:     domain.FilterNone,
		Status:   domain.StatusDone,
	}

	result := ApplyFilter(sampleComplaints(), spec)

	assert.Len(t, result, 2)
	assert.Equal(t, "c2", result[0].ID)
	assert.Equal(t, "c3", result[1].ID)
}

func TestApplyFilter_TypeAndStatusCombined(t *testing.T) {
	spec := FilterSpec{
		FromDate: day("2026-01-01"),
		ToDate:   day("2026-12-31"),
		Type:     "AC",
		Status:   domain.StatusDone,
	}

	result := ApplyFilter(sampleComplaints(), spec)

	assert.Len(t, result, 1)
	assert.Equal(t, "c3", result[0].ID)
}

func TestApplyFilter_DateBoundsAreInclusive(t *testing.T) {
	spec := FilterSpec{
		FromDate: day("2026-06-05"),
		ToDate:   day("2026-06-10"),
		Type:     domain.FilterNone,
		Status:   domain.FilterNone,
	}

	result := ApplyFilter(sampleComplaints(), spec)

	assert.Len(t, result, 2)
	assert.Equal(t, "c2", result[0].ID)
	assert.Equal(t, "c3", result[1].ID)
}

func TestApplyFilter_InvertedRangeIsEmpty(t *testing.T) {
	spec := FilterSpec{
		FromDate: day("2026-07-01"),
		ToDate:   day("2026-06-01"),
		Type:     domain.FilterNone,
		Status:   domain.FilterNone,
	}

	result := ApplyFilter(sampleComplaints(), spec)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestApplyFilter_EmptyInput(t *testing.T) {
	result := ApplyFilter(nil, DefaultFilterSpec())

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestApplyFilter_IsPure(t *testing.T) {
	complaints := sampleComplaints()
	spec := FilterSpec{
		FromDate: day("2026-01-01"),
		ToDate:   day("2026-12-31"),
		Type:     "Fan",
		Status:   domain.FilterNone,
	}

	first := ApplyFilter(complaints, spec)
	second := ApplyFilter(complaints, spec)

	assert.Equal(t, first, second)
	// Input slice is untouched
	assert.Len(t, complaints, 4)
	assert.Equal(t, "c1", complaints[0].ID)
}

func TestDefaultFilterSpec(t *testing.T) {
	spec := DefaultFilterSpec()

	assert.Equal(t, domain.FilterNone, spec.Type)
	assert.Equal(t, domain.FilterNone, spec.Status)
	assert.True(t, spec.FromDate.Before(spec.ToDate))

	window := spec.ToDate.Sub(spec.FromDate)
	assert.InDelta(t, DefaultLookbackDays*24, window.Hours(), 2)
}
