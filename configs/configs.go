package configs

import (
	"context"

	"church-finder-service/pkg/shared/repository"

	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/config"
	"github.com/golangid/candi/config/database"
	"github.com/golangid/candi/middleware"
	"github.com/golangid/candi/validator"
)

// LoadServiceConfigs load selected dependency configuration in this service
func LoadServiceConfigs(baseCfg *config.Config) (deps dependency.Dependency) {

	loadAdditionalEnv()

	baseCfg.LoadFunc(func(ctx context.Context) []interfaces.Closer {
		mongoDeps := database.InitMongoDB(ctx)

		// inject all service dependencies
		deps = dependency.InitDependency(
			dependency.SetMiddleware(middleware.NewMiddlewareWithOption()),
			dependency.SetValidator(validator.NewValidator()),
			dependency.SetMongoDatabase(mongoDeps),
		)

		repository.SetSharedRepository(deps)
		repository.SetSharedRoutingRepository(newRoutingRepository())

		if err := repository.GetSharedRepoMongo().EnsureIndexes(ctx); err != nil {
			panic(err)
		}

		return []interfaces.Closer{ // throw back to base config for close connection when application shutdown
			mongoDeps,
		}
	})

	return deps
}

// newRoutingRepository construct the routing provider client from additional env,
// nil when no api key is configured so nearby lookups skip enrichment
func newRoutingRepository() repository.RoutingRepository {
	if env.RoutingAPIKey == "" {
		return nil
	}
	return repository.NewRoutingRepoORS(repository.ORSOptions{
		BaseURL:       env.RoutingBaseURL,
		APIKey:        env.RoutingAPIKey,
		Timeout:       env.RoutingTimeout,
		RetryCount:    env.RoutingRetryCount,
		RetryInterval: env.RoutingRetryInterval,
	})
}
