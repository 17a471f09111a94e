package attendance

import "time"

type Status string

const (
	StatusFullDay Status = "FULL_DAY"
	StatusHalfDay Status = "HALF_DAY"
	StatusAbsent  Status = "ABSENT"

	// StatusUnknown marks rows whose status value matched no known synonym.
	// They are stored verbatim but excluded from every aggregate count.
	StatusUnknown Status = "UNKNOWN"
)

// Record is the canonical attendance row: one subject, one calendar day,
// one status. Raw payload shapes never travel past the normalizer.
type Record struct {
	ID        string
	Email     string // normalized: trimmed, lowercase
	Date      time.Time
	Status    Status
	Remarks   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
