package repository

import (
	"context"
	"fmt"

	"safari-njema/internal/data/entity"
	"safari-njema/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type tripRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTripRepository(db database.PgxIface, log *zap.Logger) TripRepository {
	return &tripRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip")),
	}
}

func (r *tripRepository) FindByID(ctx context.Context, id string) (*entity.Trip, error) {
	query := `
		SELECT id, route_id, company, vehicle_type, service, departure_time,
		       arrival_time, price, total_seats, features, from_city, to_city
		FROM trips
		WHERE id = $1
	`

	var trip entity.Trip
	err := r.db.QueryRow(ctx, query, id).Scan(
		&trip.ID,
		&trip.RouteID,
		&trip.Company,
		&trip.VehicleType,
		&trip.Service,
		&trip.DepartureTime,
		&trip.ArrivalTime,
		&trip.Price,
		&trip.TotalSeats,
		&trip.Features,
		&trip.FromCity,
		&trip.ToCity,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip by ID",
			zap.Error(err),
			zap.String("trip_id", id),
		)
		return nil, fmt.Errorf("find trip by ID %s: %w", id, err)
	}

	return &trip, nil
}

func (r *tripRepository) Search(ctx context.Context, fromCity, toCity string) ([]*entity.Trip, error) {
	query := `
		SELECT id, route_id, company, vehicle_type, service, departure_time,
		       arrival_time, price, total_seats, features, from_city, to_city
		FROM trips
		WHERE LOWER(from_city) = LOWER($1) AND LOWER(to_city) = LOWER($2)
		ORDER BY departure_time
	`

	rows, err := r.db.Query(ctx, query, fromCity, toCity)
	if err != nil {
		r.log.Error("Failed to search trips",
			zap.Error(err),
			zap.String("from", fromCity),
			zap.String("to", toCity),
		)
		return nil, fmt.Errorf("search trips %s to %s: %w", fromCity, toCity, err)
	}
	defer rows.Close()

	var trips []*entity.Trip
	for rows.Next() {
		var trip entity.Trip
		err := rows.Scan(
			&trip.ID,
			&trip.RouteID,
			&trip.Company,
			&trip.VehicleType,
			&trip.Service,
			&trip.DepartureTime,
			&trip.ArrivalTime,
			&trip.Price,
			&trip.TotalSeats,
			&trip.Features,
			&trip.FromCity,
			&trip.ToCity,
		)
		if err != nil {
			r.log.Error("Failed to scan trip row", zap.Error(err))
			return nil, fmt.Errorf("scan trip row: %w", err)
		}
		trips = append(trips, &trip)
	}

	return trips, nil
}
