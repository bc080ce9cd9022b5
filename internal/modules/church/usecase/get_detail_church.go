package usecase

import (
	"context"

	"church-finder-service/internal/modules/church/domain"
	confessiondomain "church-finder-service/internal/modules/confession/domain"
	massdomain "church-finder-service/internal/modules/mass/domain"

	"github.com/golangid/candi/tracer"
)

// GetDetailChurch fetch one church together with all its mass schedules and
// recurring confession windows
func (uc *churchUsecaseImpl) GetDetailChurch(ctx context.Context, id string) (result domain.ResponseChurch, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchUsecase:GetDetailChurch")
	defer trace.Finish()

	repoFilter := domain.FilterChurch{ID: &id}
	data, err := uc.repoMongo.ChurchRepo().Find(ctx, &repoFilter)
	if err != nil {
		return result, err
	}
	result.Serialize(&data)

	massFilter := massdomain.FilterMass{ChurchID: id}
	massFilter.ShowAll = true
	masses, err := uc.repoMongo.MassRepo().FetchAll(ctx, &massFilter)
	if err != nil {
		return result, err
	}
	for _, mass := range masses {
		result.Masses = append(result.Masses, domain.ResponseMassSchedule{
			ID:          mass.ID.Hex(),
			Time:        mass.Time,
			Day:         mass.Day,
			Description: mass.Description,
		})
	}

	confessionFilter := confessiondomain.FilterConfession{ChurchID: id}
	confessionFilter.ShowAll = true
	recurring, err := uc.repoMongo.ConfessionRepo().FetchAllRecurring(ctx, &confessionFilter)
	if err != nil {
		return result, err
	}
	for _, window := range recurring {
		result.RecurringConfessions = append(result.RecurringConfessions, domain.ResponseConfessionSchedule{
			ID:        window.ID.Hex(),
			DayOfWeek: window.DayOfWeek,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		})
	}

	return
}
