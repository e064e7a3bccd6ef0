package response

import "safari-njema/internal/data/entity"

type CityResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

type TripResponse struct {
	ID            string   `json:"id"`
	RouteID       string   `json:"routeId"`
	Company       string   `json:"company"`
	VehicleType   string   `json:"vehicleType"`
	Service       string   `json:"service"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Price         float64  `json:"price"`
	TotalSeats    int      `json:"totalSeats"`
	Features      []string `json:"features"`
	FromCity      string   `json:"fromCity"`
	ToCity        string   `json:"toCity"`
}

type RouteResponse struct {
	ID                string `json:"id"`
	FromCity          string `json:"fromCity"`
	ToCity            string `json:"toCity"`
	Distance          int    `json:"distance"`
	EstimatedDuration string `json:"estimatedDuration"`
}

func CityToResponse(city *entity.City) CityResponse {
	return CityResponse{
		ID:     city.ID,
		Name:   city.Name,
		Region: city.Region,
	}
}

func TripToResponse(trip *entity.Trip) TripResponse {
	return TripResponse{
		ID:            trip.ID,
		RouteID:       trip.RouteID,
		Company:       trip.Company,
		VehicleType:   trip.VehicleType,
		Service:       trip.Service,
		DepartureTime: trip.DepartureTime,
		ArrivalTime:   trip.ArrivalTime,
		Price:         trip.Price,
		TotalSeats:    trip.TotalSeats,
		Features:      trip.Features,
		FromCity:      trip.FromCity,
		ToCity:        trip.ToCity,
	}
}

func RouteToResponse(route *entity.Route) RouteResponse {
	return RouteResponse{
		ID:                route.ID,
		FromCity:          route.FromCity,
		ToCity:            route.ToCity,
		Distance:          route.DistanceKM,
		EstimatedDuration: route.EstimatedDuration,
	}
}
