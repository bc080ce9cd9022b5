package usecase

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"church-finder-service/configs"
	"church-finder-service/internal/modules/church/domain"
	shareddomain "church-finder-service/pkg/shared/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/golangid/candi/tracer"
)

func parseDayParam(query url.Values) (*int, error) {
	raw := query.Get("day")
	if raw == "" {
		return nil, nil
	}
	day, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &schedule.ValidationError{Message: "day must be a number, 0 for sunday up to 6 for saturday"}
	}
	return &day, nil
}

func parseRadiusParam(query url.Values) (*float64, error) {
	raw := query.Get("radius")
	if raw == "" {
		return nil, nil
	}
	radius, err := strconv.ParseFloat(raw, 64)
	if err != nil || radius <= 0 {
		return nil, &schedule.ValidationError{Message: "radius must be a positive number of kilometers"}
	}
	return &radius, nil
}

func (uc *churchUsecaseImpl) FindNearbyChurch(ctx context.Context, latlng string, query url.Values) (results []domain.ResponseNearbyChurch, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchUsecase:FindNearbyChurch")
	defer func() { trace.SetError(err); trace.Finish() }()

	lng, lat, err := schedule.ParseCoordinates(latlng)
	if err != nil {
		return nil, err
	}
	timeFilter, err := schedule.ParseTimeFilter(query)
	if err != nil {
		return nil, err
	}
	day, err := parseDayParam(query)
	if err != nil {
		return nil, err
	}
	dayClass, dayOfWeek := schedule.ResolveDay(day)

	// an explicit radius is honored as given, otherwise widen step by step
	// until something is found
	radiusLadder := configs.GetEnv().NearbyRadiusLadderKm
	if len(radiusLadder) == 0 {
		radiusLadder = configs.DefaultNearbyRadiusLadderKm
	}
	if radius, err := parseRadiusParam(query); err != nil {
		return nil, err
	} else if radius != nil {
		radiusLadder = []float64{*radius}
	}

	maxResults := configs.GetEnv().NearbyMaxResults
	if maxResults <= 0 {
		maxResults = configs.DefaultNearbyMaxResults
	}
	filter := domain.FilterNearbyChurch{
		Longitude: lng,
		Latitude:  lat,
		Day:       dayClass,
		DayOfWeek: dayOfWeek,
		Time:      timeFilter,
		Limit:     maxResults,
	}

	var nearby []shareddomain.NearbyChurch
	for _, radiusKm := range radiusLadder {
		filter.RadiusKm = radiusKm
		if nearby, err = uc.repoMongo.ChurchRepo().FindNearby(ctx, &filter); err != nil {
			return nil, err
		}
		if len(nearby) > 0 {
			break
		}
	}

	now := time.Now()
	timeOfDay := timeFilter.EffectiveTime()
	results = make([]domain.ResponseNearbyChurch, len(nearby))
	for i := range nearby {
		results[i].Serialize(&nearby[i], now, dayOfWeek, timeOfDay)
	}

	uc.enrichRoutes(ctx, [2]float64{lng, lat}, nearby, results)
	return results, nil
}
