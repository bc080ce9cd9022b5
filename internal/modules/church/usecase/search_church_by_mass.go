package usecase

import (
	"context"
	"net/url"
	"time"

	"church-finder-service/configs"
	"church-finder-service/internal/modules/church/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/golangid/candi/tracer"
)

// searchScope city or coordinate scope shared by the schedule searches
type searchScope struct {
	City      string
	Longitude *float64
	Latitude  *float64
	RadiusKm  float64
}

// parseSearchScope resolve the search scope, coordinates win over city and one
// of the two must be supplied
func parseSearchScope(query url.Values) (scope searchScope, err error) {
	scope.City = query.Get("city")

	near := query.Get("near")
	if near == "" {
		if scope.City == "" {
			return scope, &schedule.ValidationError{Message: "please provide city or coordinates"}
		}
		return scope, nil
	}

	lng, lat, err := schedule.ParseCoordinates(near)
	if err != nil {
		return scope, err
	}
	scope.Longitude, scope.Latitude = &lng, &lat

	radiusLadder := configs.GetEnv().NearbyRadiusLadderKm
	if len(radiusLadder) == 0 {
		radiusLadder = configs.DefaultNearbyRadiusLadderKm
	}
	scope.RadiusKm = radiusLadder[0]
	if radius, err := parseRadiusParam(query); err != nil {
		return scope, err
	} else if radius != nil {
		scope.RadiusKm = *radius
	}
	return scope, nil
}

func (uc *churchUsecaseImpl) SearchChurchByMassSchedule(ctx context.Context, rawTime string, query url.Values) (results []domain.ResponseNearbyChurch, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchUsecase:SearchChurchByMassSchedule")
	defer func() { trace.SetError(err); trace.Finish() }()

	normalized, err := schedule.NormalizeClock(rawTime)
	if err != nil {
		return nil, err
	}
	day, err := parseDayParam(query)
	if err != nil {
		return nil, err
	}
	dayClass, dayOfWeek := schedule.ResolveDay(day)

	scope, err := parseSearchScope(query)
	if err != nil {
		return nil, err
	}
	filter := domain.FilterMassSchedule{
		Time:      schedule.TimeFilter{Eq: normalized},
		Day:       dayClass,
		City:      scope.City,
		Longitude: scope.Longitude,
		Latitude:  scope.Latitude,
		RadiusKm:  scope.RadiusKm,
	}
	data, err := uc.repoMongo.ChurchRepo().FetchByMassSchedule(ctx, &filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	results = make([]domain.ResponseNearbyChurch, len(data))
	for i := range data {
		results[i].Serialize(&data[i], now, dayOfWeek, normalized)
	}
	return results, nil
}
