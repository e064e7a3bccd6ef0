package entity

// Catalog rows keep their original string ids ("1".."15"), they are static
// reference data, not generated records.

type City struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Region string `db:"region"`
}

type Trip struct {
	ID            string   `db:"id"`
	RouteID       string   `db:"route_id"`
	Company       string   `db:"company"`
	VehicleType   string   `db:"vehicle_type"`
	Service       string   `db:"service"`
	DepartureTime string   `db:"departure_time"`
	ArrivalTime   string   `db:"arrival_time"`
	Price         float64  `db:"price"`
	TotalSeats    int      `db:"total_seats"`
	Features      []string `db:"features"`
	FromCity      string   `db:"from_city"`
	ToCity        string   `db:"to_city"`
}

type Route struct {
	ID                string `db:"id"`
	FromCity          string `db:"from_city"`
	ToCity            string `db:"to_city"`
	DistanceKM        int    `db:"distance_km"`
	EstimatedDuration string `db:"estimated_duration"`
}
