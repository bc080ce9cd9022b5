package usecase

import (
	"context"
	"errors"
	"testing"

	"church-finder-service/internal/modules/confession/domain"
	mockchurchrepo "church-finder-service/pkg/mocks/modules/church/repository"
	mockrepo "church-finder-service/pkg/mocks/modules/confession/repository"
	mocksharedrepo "church-finder-service/pkg/mocks/shared/repository"
	shareddomain "church-finder-service/pkg/shared/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const churchIDHex = "507f191e810c19729de860ea"

func Test_confessionUsecaseImpl_GetAllRecurringConfession(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		confessionRepo := &mockrepo.ConfessionRepository{}
		confessionRepo.On("FetchAllRecurring", mock.Anything, mock.Anything).
			Return([]shareddomain.RecurringConfession{{DayOfWeek: 6, StartTime: "17:00", EndTime: "18:00"}}, nil)
		confessionRepo.On("CountRecurring", mock.Anything, mock.Anything).Return(1)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ConfessionRepo").Return(confessionRepo)

		uc := confessionUsecaseImpl{
			repoMongo: repoMongo,
		}

		results, meta, err := uc.GetAllRecurringConfession(context.Background(), &domain.FilterConfession{})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, 1, meta.TotalRecords)
	})

	t.Run("Testcase #2: Negative", func(t *testing.T) {

		confessionRepo := &mockrepo.ConfessionRepository{}
		confessionRepo.On("FetchAllRecurring", mock.Anything, mock.Anything).
			Return([]shareddomain.RecurringConfession{}, errors.New("Error"))
		confessionRepo.On("CountRecurring", mock.Anything, mock.Anything).Return(0)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ConfessionRepo").Return(confessionRepo)

		uc := confessionUsecaseImpl{
			repoMongo: repoMongo,
		}

		_, _, err := uc.GetAllRecurringConfession(context.Background(), &domain.FilterConfession{})
		assert.Error(t, err)
	})
}

func Test_confessionUsecaseImpl_CreateRecurringConfession(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, times normalized", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, nil)

		var saved *shareddomain.RecurringConfession
		confessionRepo := &mockrepo.ConfessionRepository{}
		confessionRepo.On("SaveRecurring", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*shareddomain.RecurringConfession)
			}).
			Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)
		repoMongo.On("ConfessionRepo").Return(confessionRepo)

		uc := confessionUsecaseImpl{
			repoMongo: repoMongo,
		}

		result, err := uc.CreateRecurringConfession(ctx, &domain.RequestRecurringConfession{
			DayOfWeek: 6, StartTime: "9:0", EndTime: "10:30", ChurchID: churchIDHex,
		})
		assert.Error(t, err) // "9:0" has a single minute digit
		assert.True(t, schedule.IsValidationError(err))

		result, err = uc.CreateRecurringConfession(ctx, &domain.RequestRecurringConfession{
			DayOfWeek: 6, StartTime: "9:30", EndTime: "10:30", ChurchID: churchIDHex,
		})
		assert.NoError(t, err)
		assert.Equal(t, "09:30", saved.StartTime)
		assert.Equal(t, "09:30", result.StartTime)
	})

	t.Run("Testcase #2: Negative, window must end after it starts", func(t *testing.T) {

		uc := confessionUsecaseImpl{}

		_, err := uc.CreateRecurringConfession(ctx, &domain.RequestRecurringConfession{
			DayOfWeek: 0, StartTime: "10:00", EndTime: "10:00", ChurchID: churchIDHex,
		})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))

		_, err = uc.CreateRecurringConfession(ctx, &domain.RequestRecurringConfession{
			DayOfWeek: 0, StartTime: "10:00", EndTime: "09:00", ChurchID: churchIDHex,
		})
		assert.Error(t, err)
	})

	t.Run("Testcase #3: Negative, dayOfWeek out of range", func(t *testing.T) {

		uc := confessionUsecaseImpl{}

		_, err := uc.CreateRecurringConfession(ctx, &domain.RequestRecurringConfession{
			DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00", ChurchID: churchIDHex,
		})
		assert.Error(t, err)
		assert.True(t, schedule.IsValidationError(err))
	})

	t.Run("Testcase #4: Negative, church does not exist", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)

		uc := confessionUsecaseImpl{
			repoMongo: repoMongo,
		}

		_, err := uc.CreateRecurringConfession(ctx, &domain.RequestRecurringConfession{
			DayOfWeek: 0, StartTime: "09:00", EndTime: "10:00", ChurchID: churchIDHex,
		})
		assert.Error(t, err)
	})
}

func Test_confessionUsecaseImpl_UpdateRecurringConfession(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		churchRepo := &mockchurchrepo.ChurchRepository{}
		churchRepo.On("Find", mock.Anything, mock.Anything).Return(shareddomain.Church{}, nil)

		confessionRepo := &mockrepo.ConfessionRepository{}
		confessionRepo.On("FindRecurring", mock.Anything, mock.Anything).Return(shareddomain.RecurringConfession{}, nil)
		confessionRepo.On("SaveRecurring", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ChurchRepo").Return(churchRepo)
		repoMongo.On("ConfessionRepo").Return(confessionRepo)

		uc := confessionUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.UpdateRecurringConfession(context.Background(), &domain.RequestRecurringConfession{
			ID: churchIDHex, DayOfWeek: 2, StartTime: "17:00", EndTime: "18:00", ChurchID: churchIDHex,
		})
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		confessionRepo := &mockrepo.ConfessionRepository{}
		confessionRepo.On("FindRecurring", mock.Anything, mock.Anything).
			Return(shareddomain.RecurringConfession{}, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ConfessionRepo").Return(confessionRepo)

		uc := confessionUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.UpdateRecurringConfession(context.Background(), &domain.RequestRecurringConfession{ID: churchIDHex})
		assert.Error(t, err)
	})
}

func Test_confessionUsecaseImpl_DeleteRecurringConfession(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		confessionRepo := &mockrepo.ConfessionRepository{}
		confessionRepo.On("FindRecurring", mock.Anything, mock.Anything).Return(shareddomain.RecurringConfession{}, nil)
		confessionRepo.On("DeleteRecurring", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ConfessionRepo").Return(confessionRepo)

		uc := confessionUsecaseImpl{
			repoMongo: repoMongo,
		}

		err := uc.DeleteRecurringConfession(context.Background(), churchIDHex)
		assert.NoError(t, err)
	})
}
