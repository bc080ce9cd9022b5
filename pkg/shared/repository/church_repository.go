package repository

import (
	"context"

	churchdomain "church-finder-service/internal/modules/church/domain"
	shareddomain "church-finder-service/pkg/shared/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChurchRepository abstract interface
type ChurchRepository interface {
	FetchAll(ctx context.Context, filter *churchdomain.FilterChurch) ([]shareddomain.Church, error)
	Count(ctx context.Context, filter *churchdomain.FilterChurch) int
	Find(ctx context.Context, filter *churchdomain.FilterChurch) (shareddomain.Church, error)
	Save(ctx context.Context, data *shareddomain.Church) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// FindNearby run the geo-temporal aggregation: nearest churches inside the
	// radius, each carrying only the schedule documents matching the filter
	FindNearby(ctx context.Context, filter *churchdomain.FilterNearbyChurch) ([]shareddomain.NearbyChurch, error)
	// FetchByMassSchedule list churches having a mass matching the given time filter
	FetchByMassSchedule(ctx context.Context, filter *churchdomain.FilterMassSchedule) ([]shareddomain.NearbyChurch, error)
	// FetchByConfessionSchedule list churches with a live or recurring confession
	// matching the given moment
	FetchByConfessionSchedule(ctx context.Context, filter *churchdomain.FilterConfessionSchedule) ([]shareddomain.NearbyChurch, error)
}
