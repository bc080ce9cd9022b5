package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
	"github.com/golangid/candi/tracer"
)

// ORSOptions config for the OpenRouteService client
type ORSOptions struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RetryCount    int
	RetryInterval time.Duration
}

type routingRepoORS struct {
	opt    ORSOptions
	client *httpclient.Client
}

// NewRoutingRepoORS repo constructor, the client retries transient failures
// with a constant backoff
func NewRoutingRepoORS(opt ORSOptions) RoutingRepository {
	backoff := heimdall.NewConstantBackoff(opt.RetryInterval, 5*time.Millisecond)
	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(opt.Timeout),
		httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
		httpclient.WithRetryCount(opt.RetryCount),
	)
	return &routingRepoORS{opt: opt, client: client}
}

type orsDirectionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

func formatCoordinate(point [2]float64) string {
	return strconv.FormatFloat(point[0], 'f', -1, 64) + "," + strconv.FormatFloat(point[1], 'f', -1, 64)
}

func (r *routingRepoORS) DirectionsSummary(ctx context.Context, profile string, start, end [2]float64) (summary shareddomain.RouteSummary, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "RoutingRepoORS:DirectionsSummary")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("profile", profile)

	query := url.Values{}
	query.Set("api_key", r.opt.APIKey)
	query.Set("start", formatCoordinate(start))
	query.Set("end", formatCoordinate(end))
	endpoint := fmt.Sprintf("%s/v2/directions/%s?%s", r.opt.BaseURL, profile, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return summary, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return summary, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return summary, fmt.Errorf("routing provider returned status %d for profile %s", resp.StatusCode, profile)
	}

	var body orsDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return summary, err
	}
	if len(body.Features) == 0 {
		return summary, errors.New("routing provider returned no route")
	}

	summary.DistanceFromUser = body.Features[0].Properties.Summary.Distance
	summary.Duration = body.Features[0].Properties.Summary.Duration
	return summary, nil
}
