package configs

import (
	"github.com/golangid/candi/codebase/factory"
	"github.com/golangid/candi/codebase/factory/appfactory"
)

// InitAppFromEnvironmentConfig construct the application servers enabled by
// environment value, USE_REST=true is the only one this service needs
func InitAppFromEnvironmentConfig(service factory.ServiceFactory) []factory.AppServerFactory {
	return appfactory.NewAppFromEnvironmentConfig(service)
}
