package usecase

import (
	"context"
	"errors"
	"testing"

	mockchurchrepo "church-finder-service/pkg/mocks/modules/church/repository"
	mockconfessionrepo "church-finder-service/pkg/mocks/modules/confession/repository"
	mockmassrepo "church-finder-service/pkg/mocks/modules/mass/repository"
	mocksharedrepo "church-finder-service/pkg/mocks/shared/repository"
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_churchUsecaseImpl_DeleteChurch(t *testing.T) {
	t.Run("Testcase #1: Positive, cascades to schedules", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, nil)
		churchRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

		massRepo := &mockmassrepo.MassRepository{}
		massRepo.On("DeleteByChurch", mock.Anything, mock.Anything).Return(nil)

		confessionRepo := &mockconfessionrepo.ConfessionRepository{}
		confessionRepo.On("DeleteByChurch", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)
		repoMongo.On("MassRepo").Return(massRepo)
		repoMongo.On("ConfessionRepo").Return(confessionRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.DeleteChurch(context.Background(), "507f191e810c19729de860ea")
		assert.NoError(t, err)
		massRepo.AssertNumberOfCalls(t, "DeleteByChurch", 1)
		confessionRepo.AssertNumberOfCalls(t, "DeleteByChurch", 1)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.DeleteChurch(context.Background(), "507f191e810c19729de860ea")
		assert.Error(t, err)
	})

	t.Run("Testcase #3: Negative, mass cascade fails", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, nil)
		churchRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

		massRepo := &mockmassrepo.MassRepository{}
		massRepo.On("DeleteByChurch", mock.Anything, mock.Anything).Return(errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)
		repoMongo.On("MassRepo").Return(massRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.DeleteChurch(context.Background(), "507f191e810c19729de860ea")
		assert.Error(t, err)
	})
}
