package repository

import "safari-njema/internal/data/entity"

// Demo catalog. The postgres driver loads its catalog from SQL seeds
// instead; this block only feeds the memory driver.

func seedCities() []*entity.City {
	return []*entity.City{
		{ID: "1", Name: "Nairobi", Region: "Central"},
		{ID: "2", Name: "Mombasa", Region: "Coast"},
		{ID: "3", Name: "Kisumu", Region: "Nyanza"},
		{ID: "4", Name: "Nakuru", Region: "Rift Valley"},
		{ID: "5", Name: "Eldoret", Region: "Rift Valley"},
		{ID: "6", Name: "Thika", Region: "Central"},
		{ID: "7", Name: "Malindi", Region: "Coast"},
		{ID: "8", Name: "Kitale", Region: "Rift Valley"},
		{ID: "9", Name: "Garissa", Region: "North Eastern"},
		{ID: "10", Name: "Kakamega", Region: "Western"},
		{ID: "11", Name: "Kericho", Region: "Rift Valley"},
		{ID: "12", Name: "Nyeri", Region: "Central"},
		{ID: "13", Name: "Machakos", Region: "Eastern"},
		{ID: "14", Name: "Meru", Region: "Eastern"},
		{ID: "15", Name: "Embu", Region: "Eastern"},
	}
}

func seedTrips() []*entity.Trip {
	return []*entity.Trip{
		{
			ID:            "1",
			RouteID:       "1",
			Company:       "Safari Express",
			VehicleType:   "Bus",
			Service:       "Express Service",
			DepartureTime: "08:00 AM",
			ArrivalTime:   "06:00 PM",
			Price:         1500,
			TotalSeats:    30,
			Features:      []string{"Economy Class", "Air Conditioned"},
			FromCity:      "Nairobi",
			ToCity:        "Mombasa",
		},
		{
			ID:            "2",
			RouteID:       "1",
			Company:       "Njema Bus",
			VehicleType:   "Bus",
			Service:       "Express Service",
			DepartureTime: "10:30 AM",
			ArrivalTime:   "08:30 PM",
			Price:         1200,
			TotalSeats:    30,
			Features:      []string{"Economy Class", "Air Conditioned"},
			FromCity:      "Nairobi",
			ToCity:        "Mombasa",
		},
		{
			ID:            "3",
			RouteID:       "1",
			Company:       "Coast Shuttle",
			VehicleType:   "Shuttle",
			Service:       "Express Service",
			DepartureTime: "02:00 PM",
			ArrivalTime:   "12:00 AM",
			Price:         1800,
			TotalSeats:    24,
			Features:      []string{"Economy Class", "Air Conditioned"},
			FromCity:      "Nairobi",
			ToCity:        "Mombasa",
		},
	}
}
