package usecase

import (
	"sync"

	churchusecase "church-finder-service/internal/modules/church/usecase"
	confessionusecase "church-finder-service/internal/modules/confession/usecase"
	massusecase "church-finder-service/internal/modules/mass/usecase"
	"church-finder-service/pkg/shared/usecase/common"

	"github.com/golangid/candi/codebase/factory/dependency"
)

type (
	// Usecase unit of work for all usecase in modules
	Usecase interface {
		Church() churchusecase.ChurchUsecase
		Mass() massusecase.MassUsecase
		Confession() confessionusecase.ConfessionUsecase
	}

	usecaseUow struct {
		church     churchusecase.ChurchUsecase
		mass       massusecase.MassUsecase
		confession confessionusecase.ConfessionUsecase
	}
)

var usecaseInst *usecaseUow
var once sync.Once

// SetSharedUsecase set singleton usecase unit of work instance
func SetSharedUsecase(deps dependency.Dependency) {
	once.Do(func() {
		usecaseInst = new(usecaseUow)
		var setSharedUsecaseFuncs []func(common.Usecase)
		var setSharedUsecaseFunc func(common.Usecase)

		usecaseInst.church, setSharedUsecaseFunc = churchusecase.NewChurchUsecase(deps)
		setSharedUsecaseFuncs = append(setSharedUsecaseFuncs, setSharedUsecaseFunc)

		usecaseInst.mass, setSharedUsecaseFunc = massusecase.NewMassUsecase(deps)
		setSharedUsecaseFuncs = append(setSharedUsecaseFuncs, setSharedUsecaseFunc)

		usecaseInst.confession, setSharedUsecaseFunc = confessionusecase.NewConfessionUsecase(deps)
		setSharedUsecaseFuncs = append(setSharedUsecaseFuncs, setSharedUsecaseFunc)

		sharedUsecase := common.SetCommonUsecase(usecaseInst)
		for _, setFunc := range setSharedUsecaseFuncs {
			setFunc(sharedUsecase)
		}
	})
}

// GetSharedUsecase get usecase unit of work instance
func GetSharedUsecase() Usecase {
	return usecaseInst
}

func (uc *usecaseUow) Church() churchusecase.ChurchUsecase {
	return uc.church
}

func (uc *usecaseUow) Mass() massusecase.MassUsecase {
	return uc.mass
}

func (uc *usecaseUow) Confession() confessionusecase.ConfessionUsecase {
	return uc.confession
}
