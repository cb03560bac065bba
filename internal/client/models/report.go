package models

// TopRentedCar is one row of the admin top-rented report.
type TopRentedCar struct {
	CarID        int64  `json:"carId"`
	LicensePlate string `json:"licensePlate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	RentalCount  int64  `json:"rentalCount"`
}
