package usecase

import (
	"context"
	"errors"
	"testing"

	"church-finder-service/internal/modules/church/domain"
	mockrepo "church-finder-service/pkg/mocks/modules/church/repository"
	mocksharedrepo "church-finder-service/pkg/mocks/shared/repository"
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_churchUsecaseImpl_UpdateChurch(t *testing.T) {
	ctx := context.Background()
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		churchRepo := &mockrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, nil)
		churchRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.UpdateChurch(ctx, &domain.RequestChurch{ID: "507f191e810c19729de860ea", Name: "Gereja Santa Perawan Maria"})
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		churchRepo := &mockrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, errors.New("Error"))
		churchRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.UpdateChurch(ctx, &domain.RequestChurch{ID: "507f191e810c19729de860ea"})
		assert.Error(t, err)
	})
}
