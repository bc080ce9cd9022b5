package usecase

import (
	"context"
	"errors"
	"testing"

	"church-finder-service/internal/modules/mass/domain"
	mockchurchrepo "church-finder-service/pkg/mocks/modules/church/repository"
	mockrepo "church-finder-service/pkg/mocks/modules/mass/repository"
	mocksharedrepo "church-finder-service/pkg/mocks/shared/repository"
	shareddomain "church-finder-service/pkg/shared/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
)

const churchIDHex = "507f191e810c19729de860ea"

func Test_massUsecaseImpl_GetAllMass(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		massRepo := &mockrepo.MassRepository{}
		massRepo.On("FetchAll", mock.Anything, mock.Anything).Return([]shareddomain.Mass{{Time: "09:00"}}, nil)
		massRepo.On("Count", mock.Anything, mock.Anything).Return(10)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		results, meta, err := uc.GetAllMass(context.Background(), &domain.FilterMass{})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, 10, meta.TotalRecords)
	})

	t.Run("Testcase #2: Negative", func(t *testing.T) {

		massRepo := &mockrepo.MassRepository{}
		massRepo.On("FetchAll", mock.Anything, mock.Anything).Return([]shareddomain.Mass{}, errors.New("Error"))
		massRepo.On("Count", mock.Anything, mock.Anything).Return(10)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		_, _, err := uc.GetAllMass(context.Background(), &domain.FilterMass{})
		assert.Error(t, err)
	})
}

func Test_massUsecaseImpl_GetDetailMass(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		massRepo := &mockrepo.MassRepository{}
		massRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Mass{Time: "09:00"}, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		result, err := uc.GetDetailMass(context.Background(), churchIDHex)
		assert.NoError(t, err)
		assert.Equal(t, "09:00", result.Time)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		massRepo := &mockrepo.MassRepository{}
		massRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Mass{}, mongo.ErrNoDocuments)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		_, err := uc.GetDetailMass(context.Background(), churchIDHex)
		assert.Error(t, err)
	})
}

func Test_massUsecaseImpl_CreateMass(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, time normalized", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, nil)

		var saved *shareddomain.Mass
		massRepo := &mockrepo.MassRepository{}
		massRepo.On("Save", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*shareddomain.Mass)
			}).
			Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		result, err := uc.CreateMass(ctx, &domain.RequestMass{
			Time: "9:30", Day: shareddomain.DaySunday, ChurchID: churchIDHex,
		})
		assert.NoError(t, err)
		assert.Equal(t, "09:30", saved.Time)
		assert.Equal(t, churchIDHex, saved.ChurchID.Hex())
		assert.Equal(t, "09:30", result.Time)
	})

	t.Run("Testcase #2: Negative, invalid time", func(t *testing.T) {

		uc := massUsecaseImpl{}

		_, err := uc.CreateMass(ctx, &domain.RequestMass{Time: "25:00", Day: shareddomain.DaySunday, ChurchID: churchIDHex})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))
	})

	t.Run("Testcase #3: Negative, invalid day", func(t *testing.T) {

		uc := massUsecaseImpl{}

		_, err := uc.CreateMass(ctx, &domain.RequestMass{Time: "09:00", Day: "monday", ChurchID: churchIDHex})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))
	})

	t.Run("Testcase #4: Negative, malformed church id", func(t *testing.T) {

		uc := massUsecaseImpl{}

		_, err := uc.CreateMass(ctx, &domain.RequestMass{Time: "09:00", Day: shareddomain.DaySunday, ChurchID: "abc"})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))
	})

	t.Run("Testcase #5: Negative, church does not exist", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, mongo.ErrNoDocuments)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		_, err := uc.CreateMass(ctx, &domain.RequestMass{Time: "09:00", Day: shareddomain.DaySunday, ChurchID: churchIDHex})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, mongo.ErrNoDocuments))
	})
}

func Test_massUsecaseImpl_UpdateMass(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, nil)

		massRepo := &mockrepo.MassRepository{}
		massRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Mass{}, nil)
		massRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.UpdateMass(context.Background(), &domain.RequestMass{
			ID: churchIDHex, Time: "18:00", Day: shareddomain.DayWeekday, ChurchID: churchIDHex,
		})
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		massRepo := &mockrepo.MassRepository{}
		massRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Mass{}, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.UpdateMass(context.Background(), &domain.RequestMass{ID: churchIDHex})
		assert.Error(t, err)
	})
}

func Test_massUsecaseImpl_DeleteMass(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		massRepo := &mockrepo.MassRepository{}
		massRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Mass{}, nil)
		massRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.DeleteMass(context.Background(), churchIDHex)
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		massRepo := &mockrepo.MassRepository{}
		massRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Mass{}, mongo.ErrNoDocuments)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("MassRepo").Return(massRepo)

		uc := massUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.DeleteMass(context.Background(), churchIDHex)
		assert.Error(t, err)
	})
}
