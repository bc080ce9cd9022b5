package domain

// RouteSummary distance/duration summary for one travel profile,
// distance in meters and duration in seconds
type RouteSummary struct {
	DistanceFromUser float64 `json:"distanceFromUser"`
	Duration         float64 `json:"duration"`
}
