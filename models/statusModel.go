package models

// Appointment status codes as defined by the clinical backend.
const (
	StatusActive    = 100
	StatusInactive  = 101
	StatusPending   = 102
	StatusCompleted = 103
	StatusCancelled = 104
	StatusApproved  = 105
	StatusRejected  = 106
)

// UnknownStatusLabel is returned for any code outside the known set. The
// 100-106 table is the client-side contract; codes the backend may add later
// must still render deterministically.
const UnknownStatusLabel = "Unknown status"

var statusLabels = map[int]string{
	StatusActive:    "Active",
	StatusInactive:  "Inactive",
	StatusPending:   "Pending",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
	StatusApproved:  "Approved",
	StatusRejected:  "Rejected",
}

// StatusLabel maps a status code to its display label, it never fails.
func StatusLabel(code int) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return UnknownStatusLabel
}
