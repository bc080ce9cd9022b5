package usecase

import (
	"context"
	"net/url"

	"church-finder-service/internal/modules/church/domain"
	"church-finder-service/pkg/shared/repository"
	"church-finder-service/pkg/shared/usecase/common"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/dependency"
)

// ChurchUsecase abstraction
type ChurchUsecase interface {
	GetAllChurch(ctx context.Context, filter *domain.FilterChurch) (data []domain.ResponseChurch, meta candishared.Meta, err error)
	GetDetailChurch(ctx context.Context, id string) (data domain.ResponseChurch, err error)
	CreateChurch(ctx context.Context, data *domain.RequestChurch) (res domain.ResponseChurch, err error)
	UpdateChurch(ctx context.Context, data *domain.RequestChurch) (err error)
	DeleteChurch(ctx context.Context, id string) (err error)

	// FindNearbyChurch the main lookup: nearest churches around "lat,lng" having a
	// mass at the requested day/time, enriched with travel distance and duration
	FindNearbyChurch(ctx context.Context, latlng string, query url.Values) (data []domain.ResponseNearbyChurch, err error)
	// SearchChurchByMassSchedule list churches having a mass at the given time
	SearchChurchByMassSchedule(ctx context.Context, rawTime string, query url.Values) (data []domain.ResponseNearbyChurch, err error)
	// SearchChurchByConfession list churches with a confession available at the given time
	SearchChurchByConfession(ctx context.Context, rawTime string, query url.Values) (data []domain.ResponseNearbyChurch, err error)
}

type churchUsecaseImpl struct {
	sharedUsecase common.Usecase
	repoMongo     repository.RepoMongo
	repoRouting   repository.RoutingRepository
}

// NewChurchUsecase usecase impl constructor
func NewChurchUsecase(deps dependency.Dependency) (ChurchUsecase, func(sharedUsecase common.Usecase)) {
	uc := &churchUsecaseImpl{
		repoMongo:   repository.GetSharedRepoMongo(),
		repoRouting: repository.GetSharedRoutingRepository(),
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
