package usecase

import (
	"context"

	"church-finder-service/internal/modules/confession/domain"
	"church-finder-service/pkg/shared/repository"
	"church-finder-service/pkg/shared/usecase/common"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/dependency"
)

// ConfessionUsecase abstraction
type ConfessionUsecase interface {
	GetAllRecurringConfession(ctx context.Context, filter *domain.FilterConfession) (data []domain.ResponseRecurringConfession, meta candishared.Meta, err error)
	CreateRecurringConfession(ctx context.Context, data *domain.RequestRecurringConfession) (res domain.ResponseRecurringConfession, err error)
	UpdateRecurringConfession(ctx context.Context, data *domain.RequestRecurringConfession) (err error)
	DeleteRecurringConfession(ctx context.Context, id string) (err error)

	GetAllLiveConfession(ctx context.Context, filter *domain.FilterConfession) (data []domain.ResponseLiveConfession, err error)
	CreateLiveConfession(ctx context.Context, data *domain.RequestLiveConfession) (res domain.ResponseLiveConfession, err error)
	DeleteLiveConfession(ctx context.Context, id string) (err error)
}

type confessionUsecaseImpl struct {
	sharedUsecase common.Usecase
	repoMongo     repository.RepoMongo
}

// NewConfessionUsecase usecase impl constructor
func NewConfessionUsecase(deps dependency.Dependency) (ConfessionUsecase, func(sharedUsecase common.Usecase)) {
	uc := &confessionUsecaseImpl{
		repoMongo: repository.GetSharedRepoMongo(),
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
