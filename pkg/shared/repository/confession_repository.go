package repository

import (
	"context"

	confessiondomain "church-finder-service/internal/modules/confession/domain"
	shareddomain "church-finder-service/pkg/shared/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConfessionRepository abstract interface over both confession collections
type ConfessionRepository interface {
	FetchAllRecurring(ctx context.Context, filter *confessiondomain.FilterConfession) ([]shareddomain.RecurringConfession, error)
	CountRecurring(ctx context.Context, filter *confessiondomain.FilterConfession) int
	FindRecurring(ctx context.Context, filter *confessiondomain.FilterConfession) (shareddomain.RecurringConfession, error)
	SaveRecurring(ctx context.Context, data *shareddomain.RecurringConfession) error
	DeleteRecurring(ctx context.Context, id primitive.ObjectID) error

	FetchAllLive(ctx context.Context, filter *confessiondomain.FilterConfession) ([]shareddomain.LiveConfession, error)
	SaveLive(ctx context.Context, data *shareddomain.LiveConfession) error
	DeleteLive(ctx context.Context, id primitive.ObjectID) error

	DeleteByChurch(ctx context.Context, churchID primitive.ObjectID) error
}
