package usecase

import (
	"context"
	"net/url"
	"testing"
	"time"

	"church-finder-service/internal/modules/church/domain"
	mockrepo "church-finder-service/pkg/mocks/modules/church/repository"
	mocksharedrepo "church-finder-service/pkg/mocks/shared/repository"
	shareddomain "church-finder-service/pkg/shared/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func nearbyChurchFixture() shareddomain.NearbyChurch {
	return shareddomain.NearbyChurch{
		Church: shareddomain.Church{
			ID:       primitive.NewObjectID(),
			Name:     "Katedral Jakarta",
			City:     "Jakarta",
			Location: shareddomain.NewPointLocation(106.8326, -6.1692),
		},
		Distance: 1250.5,
		Masses: []shareddomain.Mass{
			{ID: primitive.NewObjectID(), Time: "09:00", Day: shareddomain.DaySunday},
		},
		RecurringConfessions: []shareddomain.RecurringConfession{
			{ID: primitive.NewObjectID(), DayOfWeek: 0, StartTime: "08:00", EndTime: "21:00"},
		},
	}
}

func Test_churchUsecaseImpl_FindNearbyChurch(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, found on first radius", func(t *testing.T) {

		churchRepo := &mockrepo.ChurchRepository{}
		churchRepo.On("FindNearby", mock.Anything, mock.Anything).
			Return([]shareddomain.NearbyChurch{nearbyChurchFixture()}, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		results, err := uc.FindNearbyChurch(ctx, "-6.1754,106.8272", url.Values{"time": []string{"9"}, "day": []string{"0"}})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "Katedral Jakarta", results[0].Name)
		assert.Equal(t, 1250.5, results[0].Distance)
		assert.Len(t, results[0].Masses, 1)
		assert.NotNil(t, results[0].ActiveConfession)
		assert.Equal(t, domain.ConfessionKindRecurring, results[0].ActiveConfession.Kind)
		churchRepo.AssertNumberOfCalls(t, "FindNearby", 1)
	})

	t.Run("Testcase #2: Positive, radius widened until found", func(t *testing.T) {

		var radii []float64
		churchRepo := &mockrepo.ChurchRepository{}
		churchRepo.On("FindNearby", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				radii = append(radii, args.Get(1).(*domain.FilterNearbyChurch).RadiusKm)
			}).
			Return(nil, nil).Twice()
		churchRepo.On("FindNearby", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				radii = append(radii, args.Get(1).(*domain.FilterNearbyChurch).RadiusKm)
			}).
			Return([]shareddomain.NearbyChurch{nearbyChurchFixture()}, nil).Once()

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		results, err := uc.FindNearbyChurch(ctx, "-6.1754,106.8272", url.Values{})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, []float64{5, 10, 15}, radii)
	})

	t.Run("Testcase #3: Positive, explicit radius skips the ladder", func(t *testing.T) {

		var radii []float64
		churchRepo := &mockrepo.ChurchRepository{}
		churchRepo.On("FindNearby", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				radii = append(radii, args.Get(1).(*domain.FilterNearbyChurch).RadiusKm)
			}).
			Return(nil, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		results, err := uc.FindNearbyChurch(ctx, "-6.1754,106.8272", url.Values{"radius": []string{"2.5"}})
		assert.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, []float64{2.5}, radii)
	})

	t.Run("Testcase #4: Negative, invalid coordinates", func(t *testing.T) {

		uc := churchUsecaseImpl{}

		_, err := uc.FindNearbyChurch(ctx, "not-a-coordinate", url.Values{})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))
	})

	t.Run("Testcase #5: Negative, invalid time", func(t *testing.T) {

		uc := churchUsecaseImpl{}

		_, err := uc.FindNearbyChurch(ctx, "-6.1754,106.8272", url.Values{"time": []string{"25:00"}})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))
	})

	t.Run("Testcase #6: Negative, invalid day and radius", func(t *testing.T) {

		uc := churchUsecaseImpl{}

		_, err := uc.FindNearbyChurch(ctx, "-6.1754,106.8272", url.Values{"day": []string{"monday"}})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))

		_, err = uc.FindNearbyChurch(ctx, "-6.1754,106.8272", url.Values{"radius": []string{"-3"}})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))
	})

	t.Run("Testcase #7: Positive, live confession wins over recurring", func(t *testing.T) {

		source := nearbyChurchFixture()
		source.LiveConfessions = []shareddomain.LiveConfession{
			{ID: primitive.NewObjectID(), ExpireAt: time.Now().Add(20 * time.Minute)},
		}

		churchRepo := &mockrepo.ChurchRepository{}
		churchRepo.On("FindNearby", mock.Anything, mock.Anything).
			Return([]shareddomain.NearbyChurch{source}, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := churchUsecaseImpl{
			repoMongo: repoMongo,
		}

		results, err := uc.FindNearbyChurch(ctx, "-6.1754,106.8272", url.Values{"day": []string{"0"}})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.NotNil(t, results[0].ActiveConfession)
		assert.Equal(t, domain.ConfessionKindLive, results[0].ActiveConfession.Kind)
	})
}
