package repository

import (
	"context"

	shareddomain "church-finder-service/pkg/shared/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	// RepoMongo abstraction
	RepoMongo interface {
		ChurchRepo() ChurchRepository
		MassRepo() MassRepository
		ConfessionRepo() ConfessionRepository

		EnsureIndexes(ctx context.Context) error
	}

	repoMongoImpl struct {
		readDB, writeDB *mongo.Database

		// register all repository from modules
		churchRepo     ChurchRepository
		massRepo       MassRepository
		confessionRepo ConfessionRepository
	}
)

var globalRepoMongo RepoMongo

// setSharedRepoMongo set the global singleton "RepoMongo" implementation
func setSharedRepoMongo(readDB, writeDB *mongo.Database) {
	globalRepoMongo = &repoMongoImpl{
		readDB: readDB, writeDB: writeDB,

		churchRepo:     NewChurchRepoMongo(readDB, writeDB),
		massRepo:       NewMassRepoMongo(readDB, writeDB),
		confessionRepo: NewConfessionRepoMongo(readDB, writeDB),
	}
}

// GetSharedRepoMongo returns the global singleton "RepoMongo" implementation
func GetSharedRepoMongo() RepoMongo {
	return globalRepoMongo
}

func (r *repoMongoImpl) ChurchRepo() ChurchRepository {
	return r.churchRepo
}

func (r *repoMongoImpl) MassRepo() MassRepository {
	return r.massRepo
}

func (r *repoMongoImpl) ConfessionRepo() ConfessionRepository {
	return r.confessionRepo
}

// EnsureIndexes create the indexes the geo query and TTL expiry depend on,
// safe to call on every startup
func (r *repoMongoImpl) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		shareddomain.Church{}.CollectionName(): {
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
			{Keys: bson.D{{Key: "city", Value: 1}}},
		},
		shareddomain.Mass{}.CollectionName(): {
			{Keys: bson.D{{Key: "church", Value: 1}, {Key: "day", Value: 1}, {Key: "time", Value: 1}}},
		},
		shareddomain.RecurringConfession{}.CollectionName(): {
			{Keys: bson.D{{Key: "church", Value: 1}, {Key: "dayOfWeek", Value: 1}}},
		},
		shareddomain.LiveConfession{}.CollectionName(): {
			{Keys: bson.D{{Key: "church", Value: 1}}},
			{
				Keys:    bson.D{{Key: "expireAt", Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := r.writeDB.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
