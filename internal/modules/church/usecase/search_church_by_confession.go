package usecase

import (
	"context"
	"net/url"
	"time"

	"church-finder-service/internal/modules/church/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/golangid/candi/tracer"
)

// SearchChurchByConfession list churches with a confession available at the
// requested day and time. Live sessions only count when the requested day is
// today, otherwise only recurring windows qualify.
func (uc *churchUsecaseImpl) SearchChurchByConfession(ctx context.Context, rawTime string, query url.Values) (results []domain.ResponseNearbyChurch, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchUsecase:SearchChurchByConfession")
	defer func() { trace.SetError(err); trace.Finish() }()

	timeOfDay, err := schedule.NormalizeClock(rawTime)
	if err != nil {
		return nil, err
	}
	day, err := parseDayParam(query)
	if err != nil {
		return nil, err
	}
	_, dayOfWeek := schedule.ResolveDay(day)

	scope, err := parseSearchScope(query)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filter := domain.FilterConfessionSchedule{
		TimeOfDay:   timeOfDay,
		DayOfWeek:   dayOfWeek,
		IncludeLive: dayOfWeek == int(now.Weekday()),
		At:          now,
		City:        scope.City,
		Longitude:   scope.Longitude,
		Latitude:    scope.Latitude,
		RadiusKm:    scope.RadiusKm,
	}
	data, err := uc.repoMongo.ChurchRepo().FetchByConfessionSchedule(ctx, &filter)
	if err != nil {
		return nil, err
	}

	results = make([]domain.ResponseNearbyChurch, len(data))
	for i := range data {
		results[i].Serialize(&data[i], now, dayOfWeek, timeOfDay)
	}
	return results, nil
}
