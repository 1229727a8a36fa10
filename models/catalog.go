package models

// Vehicle is a read-only catalog item served from the upstream fleet
// API. Vehicles are never persisted locally.
type Vehicle struct {
	ID              uint    `json:"id"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	DailyRate       float64 `json:"daily_rate"`
	HourlyRate      float64 `json:"hourly_rate"`
	VehicleType     string  `json:"vehicle_type"`
	SeatingCapacity int     `json:"seating_capacity"`
	IsAvailable     bool    `json:"is_available"`
}

// DetailingService is a read-only catalog item for vehicle detailing.
type DetailingService struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	Duration  int     `json:"duration"` // minutes
	IsActive  bool    `json:"is_active"`
}

// SampleVehicles is the fixed fallback list used when the upstream
// fleet API is unreachable.
func SampleVehicles() []Vehicle {
	return []Vehicle{
		{ID: 1, Make: "Toyota", Model: "Camry", Year: 2020, DailyRate: 50.00, HourlyRate: 10.00, VehicleType: "sedan", SeatingCapacity: 5, IsAvailable: true},
		{ID: 2, Make: "Honda", Model: "Civic", Year: 2019, DailyRate: 45.00, HourlyRate: 8.00, VehicleType: "sedan", SeatingCapacity: 5, IsAvailable: true},
		{ID: 3, Make: "Ford", Model: "Escape", Year: 2021, DailyRate: 60.00, HourlyRate: 12.00, VehicleType: "suv", SeatingCapacity: 5, IsAvailable: true},
	}
}
