package usecase

import (
	"context"
	"strings"
	"sync"

	"church-finder-service/configs"
	"church-finder-service/internal/modules/church/domain"
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/golangid/candi/logger"
	"golang.org/x/sync/errgroup"
)

// shown instead of route summaries when any profile fails for a church
const routeErrorMessage = "couldn't find distance or duration"

// kebabToCamel "driving-car" to "drivingCar", profile names become json keys
func kebabToCamel(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// enrichRoutes attach travel distance/duration per configured profile to each
// result, one goroutine per church so a slow or failing venue never blocks the
// others. A church whose enrichment fails keeps its schedule data and gets an
// error marker in profilesData instead.
func (uc *churchUsecaseImpl) enrichRoutes(ctx context.Context, origin [2]float64, sources []shareddomain.NearbyChurch, results []domain.ResponseNearbyChurch) {
	if uc.repoRouting == nil || len(results) == 0 {
		return
	}

	profiles := configs.GetEnv().RoutingProfiles
	if len(profiles) == 0 {
		profiles = configs.DefaultRoutingProfiles
	}
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			destination := sources[i].Location.Coordinates
			profilesData := make(map[string]interface{}, len(profiles))
			var mu sync.Mutex

			group, groupCtx := errgroup.WithContext(ctx)
			for _, profile := range profiles {
				profile := profile
				group.Go(func() error {
					summary, err := uc.repoRouting.DirectionsSummary(groupCtx, profile, origin, destination)
					if err != nil {
						return err
					}
					mu.Lock()
					profilesData[kebabToCamel(profile)] = summary
					mu.Unlock()
					return nil
				})
			}

			if err := group.Wait(); err != nil {
				logger.LogEf("route enrichment for church %s: %s", results[i].ID, err.Error())
				results[i].ProfilesData = map[string]interface{}{"error": routeErrorMessage}
				return
			}
			results[i].ProfilesData = profilesData
		}(i)
	}
	wg.Wait()
}
