package models

// BookingRequest is the payload of POST /api/v1/bookings. CouponCode is a
// pointer so an empty form field is sent as absent, not as "".
type BookingRequest struct {
	CarID             int64   `json:"carId"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	InsuranceSelected bool    `json:"insuranceSelected"`
	CouponCode        *string `json:"couponCode,omitempty"`
	PayAtDesk         bool    `json:"payAtDesk"`
	AllowWaitlist     bool    `json:"allowWaitlist"`
}

// PriceBreakdown mirrors the server's pricing response. All components are
// optional; only Total is rendered in the bookings table.
type PriceBreakdown struct {
	BaseAmount       *float64 `json:"baseAmount"`
	WeekendSurcharge *float64 `json:"weekendSurcharge"`
	DurationDiscount *float64 `json:"durationDiscount"`
	DynamicSurcharge *float64 `json:"dynamicSurcharge"`
	InsuranceFee     *float64 `json:"insuranceFee"`
	CouponDiscount   *float64 `json:"couponDiscount"`
	Total            *float64 `json:"total"`
}

// Booking is a created or listed booking. Status and PaymentStatus are
// server enumerations (PENDING_PAYMENT, CONFIRMED, WAITLISTED, ...) treated
// as opaque strings.
type Booking struct {
	ID                *int64          `json:"id"`
	Code              *string         `json:"code"`
	Status            string          `json:"status"`
	PaymentMode       string          `json:"paymentMode,omitempty"`
	PaymentStatus     string          `json:"paymentStatus"`
	CustomerID        *int64          `json:"customerId,omitempty"`
	CarID             int64           `json:"carId"`
	LicensePlate      *string         `json:"licensePlate"`
	BranchID          *int64          `json:"branchId,omitempty"`
	StartTime         string          `json:"startTime"`
	EndTime           string          `json:"endTime"`
	InsuranceSelected bool            `json:"insuranceSelected"`
	CouponCode        *string         `json:"couponCode,omitempty"`
	Price             *PriceBreakdown `json:"price"`
	WaitlistEntryID   *int64          `json:"waitlistEntryId,omitempty"`
}
