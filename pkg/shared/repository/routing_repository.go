package repository

import (
	"context"

	shareddomain "church-finder-service/pkg/shared/domain"
)

// RoutingRepository abstraction over the external routing provider.
// Coordinates are (longitude, latitude) pairs.
type RoutingRepository interface {
	DirectionsSummary(ctx context.Context, profile string, start, end [2]float64) (shareddomain.RouteSummary, error)
}

var globalRoutingRepo RoutingRepository

// SetSharedRoutingRepository set the global singleton "RoutingRepository" implementation
func SetSharedRoutingRepository(repo RoutingRepository) {
	globalRoutingRepo = repo
}

// GetSharedRoutingRepository returns the global singleton "RoutingRepository" implementation
func GetSharedRoutingRepository() RoutingRepository {
	return globalRoutingRepo
}
