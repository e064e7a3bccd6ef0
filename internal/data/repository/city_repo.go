package repository

import (
	"context"
	"fmt"

	"safari-njema/internal/data/entity"
	"safari-njema/pkg/database"

	"go.uber.org/zap"
)

type cityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCityRepository(db database.PgxIface, log *zap.Logger) CityRepository {
	return &cityRepository{
		db:  db,
		log: log.With(zap.String("repository", "city")),
	}
}

func (r *cityRepository) FindAll(ctx context.Context) ([]*entity.City, error) {
	query := `
		SELECT id, name, region
		FROM cities
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find cities", zap.Error(err))
		return nil, fmt.Errorf("find cities: %w", err)
	}
	defer rows.Close()

	var cities []*entity.City
	for rows.Next() {
		var city entity.City
		if err := rows.Scan(&city.ID, &city.Name, &city.Region); err != nil {
			r.log.Error("Failed to scan city row", zap.Error(err))
			return nil, fmt.Errorf("scan city row: %w", err)
		}
		cities = append(cities, &city)
	}

	return cities, nil
}
