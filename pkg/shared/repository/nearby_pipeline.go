package repository

import (
	"strings"
	"time"

	churchdomain "church-finder-service/internal/modules/church/domain"
	"church-finder-service/pkg/shared/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildMassTimeCondition translate a normalized time filter to a mongo condition
// on the mass "time" field. An exact on-the-hour value matches the whole hour by
// prefix, any other exact value matches literally. Range bounds compare
// lexicographically, valid because times are zero padded "HH:mm".
func buildMassTimeCondition(filter schedule.TimeFilter) interface{} {
	if filter.Eq != "" {
		if hour := strings.TrimSuffix(filter.Eq, ":00"); hour != filter.Eq {
			return primitive.Regex{Pattern: "^" + hour + ":"}
		}
		return filter.Eq
	}

	bounds := bson.M{}
	for op, value := range filter.Bounds {
		bounds["$"+op] = value
	}
	return bounds
}

// buildMassLookupMatch match stage for the mass lookup pipeline, joined on the
// church reference captured in the $$churchID variable
func buildMassLookupMatch(day string, timeFilter schedule.TimeFilter) bson.M {
	match := bson.M{
		"$expr": bson.M{"$eq": bson.A{"$church", "$$churchID"}},
	}
	if day != "" {
		match["day"] = day
	}
	if !timeFilter.IsZero() {
		match["time"] = buildMassTimeCondition(timeFilter)
	}
	return match
}

// buildNearbyPipeline aggregation over the churches collection: $geoNear orders
// by distance inside the radius, three lookups attach the qualifying schedule
// documents, churches without a matching mass are dropped.
func buildNearbyPipeline(filter *churchdomain.FilterNearbyChurch, now time.Time) []bson.M {
	pipeline := []bson.M{
		{"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": []float64{filter.Longitude, filter.Latitude},
			},
			"distanceField": "distance",
			"maxDistance":   filter.RadiusKm * 1000,
			"spherical":     true,
		}},
		{"$lookup": bson.M{
			"from": "masses",
			"let":  bson.M{"churchID": "$_id"},
			"pipeline": []bson.M{
				{"$match": buildMassLookupMatch(filter.Day, filter.Time)},
				{"$sort": bson.M{"time": 1}},
			},
			"as": "masses",
		}},
		{"$lookup": bson.M{
			"from": "liveConfessions",
			"let":  bson.M{"churchID": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{
					"$expr":    bson.M{"$eq": bson.A{"$church", "$$churchID"}},
					"expireAt": bson.M{"$gt": now},
				}},
			},
			"as": "liveConfessions",
		}},
	}

	recurringMatch := bson.M{
		"$expr":     bson.M{"$eq": bson.A{"$church", "$$churchID"}},
		"dayOfWeek": filter.DayOfWeek,
	}
	if timeOfDay := filter.Time.EffectiveTime(); timeOfDay != "" {
		recurringMatch["endTime"] = bson.M{"$gt": timeOfDay}
	}
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from": "recurringConfessions",
			"let":  bson.M{"churchID": "$_id"},
			"pipeline": []bson.M{
				{"$match": recurringMatch},
				{"$sort": bson.M{"startTime": 1}},
			},
			"as": "recurringConfessions",
		}},
		bson.M{"$match": bson.M{"masses.0": bson.M{"$exists": true}}},
	)

	if filter.Limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": filter.Limit})
	}
	return pipeline
}

// earthRadiusKm used to convert a kilometer radius to radians for $centerSphere
const earthRadiusKm = 6378.1

// buildScopeMatch match stage scoping a schedule search, coordinates win over city
func buildScopeMatch(city string, lng, lat *float64, radiusKm float64) bson.M {
	if lng != nil && lat != nil {
		return bson.M{
			"location": bson.M{"$geoWithin": bson.M{"$centerSphere": bson.A{
				[]float64{*lng, *lat},
				radiusKm / earthRadiusKm,
			}}},
		}
	}
	if city != "" {
		return bson.M{"city": city}
	}
	return nil
}

// buildMassSchedulePipeline aggregation for searching churches by mass time,
// scoped by city match or by $geoWithin when coordinates are supplied
func buildMassSchedulePipeline(filter *churchdomain.FilterMassSchedule) []bson.M {
	pipeline := []bson.M{}
	if match := buildScopeMatch(filter.City, filter.Longitude, filter.Latitude, filter.RadiusKm); match != nil {
		pipeline = append(pipeline, bson.M{"$match": match})
	}

	return append(pipeline,
		bson.M{"$lookup": bson.M{
			"from": "masses",
			"let":  bson.M{"churchID": "$_id"},
			"pipeline": []bson.M{
				{"$match": buildMassLookupMatch(filter.Day, filter.Time)},
				{"$sort": bson.M{"time": 1}},
			},
			"as": "masses",
		}},
		bson.M{"$match": bson.M{"masses.0": bson.M{"$exists": true}}},
		bson.M{"$sort": bson.D{{Key: "masses.time", Value: 1}, {Key: "name", Value: 1}}},
	)
}

// buildConfessionSchedulePipeline aggregation for searching churches by active
// confession. The live lookup is only attached when the requested day is the
// current one, recurring windows match on day of week and end time.
func buildConfessionSchedulePipeline(filter *churchdomain.FilterConfessionSchedule) []bson.M {
	pipeline := []bson.M{}
	if match := buildScopeMatch(filter.City, filter.Longitude, filter.Latitude, filter.RadiusKm); match != nil {
		pipeline = append(pipeline, bson.M{"$match": match})
	}

	if filter.IncludeLive {
		pipeline = append(pipeline, bson.M{"$lookup": bson.M{
			"from": "liveConfessions",
			"let":  bson.M{"churchID": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{
					"$expr":    bson.M{"$eq": bson.A{"$church", "$$churchID"}},
					"expireAt": bson.M{"$gt": filter.At},
				}},
			},
			"as": "liveConfessions",
		}})
	}

	recurringMatch := bson.M{
		"$expr":     bson.M{"$eq": bson.A{"$church", "$$churchID"}},
		"dayOfWeek": filter.DayOfWeek,
	}
	if filter.TimeOfDay != "" {
		recurringMatch["endTime"] = bson.M{"$gt": filter.TimeOfDay}
	}
	return append(pipeline,
		bson.M{"$lookup": bson.M{
			"from": "recurringConfessions",
			"let":  bson.M{"churchID": "$_id"},
			"pipeline": []bson.M{
				{"$match": recurringMatch},
				{"$sort": bson.M{"startTime": 1}},
			},
			"as": "recurringConfessions",
		}},
		bson.M{"$match": bson.M{"$or": []bson.M{
			{"liveConfessions.0": bson.M{"$exists": true}},
			{"recurringConfessions.0": bson.M{"$exists": true}},
		}}},
		bson.M{"$sort": bson.M{"name": 1}},
	)
}
