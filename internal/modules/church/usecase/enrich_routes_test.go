package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"church-finder-service/internal/modules/church/domain"
	mocksharedrepo "church-finder-service/pkg/mocks/shared/repository"
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_kebabToCamel(t *testing.T) {
	assert.Equal(t, "drivingCar", kebabToCamel("driving-car"))
	assert.Equal(t, "footWalking", kebabToCamel("foot-walking"))
	assert.Equal(t, "cyclingRegular", kebabToCamel("cycling-regular"))
	assert.Equal(t, "car", kebabToCamel("car"))
}

func Test_churchUsecaseImpl_enrichRoutes(t *testing.T) {
	ctx := context.Background()
	origin := [2]float64{106.8272, -6.1754}

	t.Run("Testcase #1: Positive, summary attached per profile", func(t *testing.T) {

		routingRepo := &mocksharedrepo.RoutingRepository{}
		routingRepo.On("DirectionsSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(shareddomain.RouteSummary{DistanceFromUser: 1234.5, Duration: 321.9}, nil)

		sources := []shareddomain.NearbyChurch{nearbyChurchFixture()}
		results := make([]domain.ResponseNearbyChurch, 1)

		uc := churchUsecaseImpl{
			repoRouting: routingRepo,
		}
		uc.enrichRoutes(ctx, origin, sources, results)

		assert.Len(t, results[0].ProfilesData, 2)
		summary, ok := results[0].ProfilesData["drivingCar"].(shareddomain.RouteSummary)
		assert.True(t, ok)
		assert.Equal(t, 1234.5, summary.DistanceFromUser)
		assert.Contains(t, results[0].ProfilesData, "footWalking")
	})

	t.Run("Testcase #2: Negative, failing church gets error marker only", func(t *testing.T) {

		routingRepo := &mocksharedrepo.RoutingRepository{}
		routingRepo.On("DirectionsSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(shareddomain.RouteSummary{}, errors.New("no route found"))

		sources := []shareddomain.NearbyChurch{nearbyChurchFixture()}
		results := make([]domain.ResponseNearbyChurch, 1)
		results[0].Serialize(&sources[0], time.Now(), 0, "09:00")

		uc := churchUsecaseImpl{
			repoRouting: routingRepo,
		}
		uc.enrichRoutes(ctx, origin, sources, results)

		assert.Equal(t, map[string]interface{}{"error": routeErrorMessage}, results[0].ProfilesData)
		assert.Len(t, results[0].Masses, 1)
	})

	t.Run("Testcase #3: no routing repository configured", func(t *testing.T) {

		sources := []shareddomain.NearbyChurch{nearbyChurchFixture()}
		results := make([]domain.ResponseNearbyChurch, 1)

		uc := churchUsecaseImpl{}
		uc.enrichRoutes(ctx, origin, sources, results)

		assert.Nil(t, results[0].ProfilesData)
	})
}
