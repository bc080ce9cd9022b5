package mass

import (
	"testing"

	"github.com/golangid/candi/codebase/factory"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/stretchr/testify/assert"
)

func TestModule(t *testing.T) {
	var mod Module
	var _ factory.ModuleFactory = &mod

	assert.Equal(t, Name, mod.Name())
	assert.Nil(t, mod.GRPCHandler())
	assert.Nil(t, mod.GraphQLHandler())
	assert.Nil(t, mod.WorkerHandler(types.Kafka))
	assert.Nil(t, mod.ServerHandler(types.GRPC))
}
