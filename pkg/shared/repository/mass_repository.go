package repository

import (
	"context"

	massdomain "church-finder-service/internal/modules/mass/domain"
	shareddomain "church-finder-service/pkg/shared/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MassRepository abstract interface
type MassRepository interface {
	FetchAll(ctx context.Context, filter *massdomain.FilterMass) ([]shareddomain.Mass, error)
	Count(ctx context.Context, filter *massdomain.FilterMass) int
	Find(ctx context.Context, filter *massdomain.FilterMass) (shareddomain.Mass, error)
	Save(ctx context.Context, data *shareddomain.Mass) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByChurch(ctx context.Context, churchID primitive.ObjectID) error
}
