package usecase

import (
	"context"

	"church-finder-service/internal/modules/mass/domain"
	"church-finder-service/pkg/shared/repository"
	"church-finder-service/pkg/shared/usecase/common"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/dependency"
)

// MassUsecase abstraction
type MassUsecase interface {
	GetAllMass(ctx context.Context, filter *domain.FilterMass) (data []domain.ResponseMass, meta candishared.Meta, err error)
	GetDetailMass(ctx context.Context, id string) (data domain.ResponseMass, err error)
	CreateMass(ctx context.Context, data *domain.RequestMass) (res domain.ResponseMass, err error)
	UpdateMass(ctx context.Context, data *domain.RequestMass) (err error)
	DeleteMass(ctx context.Context, id string) (err error)
}

type massUsecaseImpl struct {
	sharedUsecase common.Usecase
	repoMongo     repository.RepoMongo
}

// NewMassUsecase usecase impl constructor
func NewMassUsecase(deps dependency.Dependency) (MassUsecase, func(sharedUsecase common.Usecase)) {
	uc := &massUsecaseImpl{
		repoMongo: repository.GetSharedRepoMongo(),
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
