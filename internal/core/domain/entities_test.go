package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidComplaintType(t *testing.T) {
	for _, ct := range ComplaintTypes {
		assert.True(t, IsValidComplaintType(ct), ct)
	}

	assert.False(t, IsValidComplaintType("Elevator"))
	assert.False(t, IsValidComplaintType("ac"))
	assert.False(t, IsValidComplaintType(""))
	assert.False(t, IsValidComplaintType(FilterNone))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusDone))

	assert.False(t, IsValidStatus("Pending"))
	assert.False(t, IsValidStatus("resolved"))
	assert.False(t, IsValidStatus(""))
}

func TestIsValidHostel(t *testing.T) {
	for _, code := range Hostels {
		assert.True(t, IsValidHostel(code), code)
	}

	assert.False(t, IsValidHostel("Z9"))
	assert.False(t, IsValidHostel("g1"))
	assert.False(t, IsValidHostel(""))
}
