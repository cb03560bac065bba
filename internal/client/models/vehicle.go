package models

// AvailabilityQuery is the branch/time/category filter used to search for
// rentable vehicles. StartTime and EndTime are always ISO-8601 UTC, even
// though the user enters them as local wall-clock time.
type AvailabilityQuery struct {
	BranchID  string `json:"branchId"`
	Category  string `json:"category,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Vehicle is one availability search result row. Server-supplied and
// read-only; the client never mutates it.
type Vehicle struct {
	CarID               int64    `json:"carId"`
	LicensePlate        string   `json:"licensePlate"`
	Brand               string   `json:"brand"`
	Model               string   `json:"model"`
	Category            string   `json:"category"`
	EstimatedTotalPrice *float64 `json:"estimatedTotalPrice"`
	DynamicFactor       float64  `json:"dynamicFactor"`
}
