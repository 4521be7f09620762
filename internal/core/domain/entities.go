package domain

// Role represents user role in the system
type Role string

const (
	RoleResident Role = "RESIDENT"
	RoleAdmin    Role = "ADMIN"
)

// Complaint statuses. A complaint starts as pending and can only move
// forward to done; done is terminal.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// FilterNone is the sentinel value that disables the type or status
// predicate when filtering complaints.
const FilterNone = "None"

// ComplaintTypes is the fixed set of complaint categories
var ComplaintTypes = []string{
	"AC",
	"Fan",
	"Tubelight",
	"Furniture",
	"Watercooler",
	"Geyser",
	"Construction",
	"Equipments",
	"Others",
}

// Hostels is the fixed set of hostel codes
var Hostels = []string{
	"G1", "G2", "G3", "G4", "G5", "G6",
	"B1", "B2", "B3", "B4", "B5",
	"Y3", "Y4",
	"O3", "O4",
	"I2", "I3",
}

// IsValidComplaintType checks membership in the complaint type set
func IsValidComplaintType(t string) bool {
	for _, ct := range ComplaintTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// IsValidStatus checks membership in the status set
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusDone
}

// IsValidHostel checks membership in the hostel code set
func IsValidHostel(h string) bool {
	for _, code := range Hostels {
		if code == h {
			return true
		}
	}
	return false
}
