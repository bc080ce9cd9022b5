package usecase

import (
	"context"
	"errors"
	"testing"

	"church-finder-service/internal/modules/church/domain"
	mockrepo "church-finder-service/pkg/mocks/modules/church/repository"
	mocksharedrepo "church-finder-service/pkg/mocks/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_churchUsecaseImpl_CreateChurch(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		churchRepo := &mockrepo.ChurchRepository{}
		churchRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		result, err := uc.CreateChurch(context.Background(), &domain.RequestChurch{
			Name: "Katedral Jakarta", City: "Jakarta",
			Latitude: -6.1692, Longitude: 106.8326, IsCathedral: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Katedral Jakarta", result.Name)
		assert.Equal(t, 106.8326, result.Longitude)
		assert.Equal(t, -6.1692, result.Latitude)
	})

	t.Run("Testcase #2: Negative", func(t *testing.T) {

		churchRepo := &mockrepo.ChurchRepository{}
		churchRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		_, err := uc.CreateChurch(context.Background(), &domain.RequestChurch{})
		assert.Error(t, err)
	})
}
