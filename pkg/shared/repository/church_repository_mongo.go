package repository

import (
	"context"
	"time"

	churchdomain "church-finder-service/internal/modules/church/domain"
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/tracer"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type churchRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewChurchRepoMongo mongo repo constructor
func NewChurchRepoMongo(readDB, writeDB *mongo.Database) ChurchRepository {
	return &churchRepoMongo{
		readDB, writeDB, shareddomain.Church{}.CollectionName(),
	}
}

func (r *churchRepoMongo) buildFilter(filter *churchdomain.FilterChurch) bson.M {
	where := bson.M{}
	if filter.ID != nil {
		objectID, _ := primitive.ObjectIDFromHex(*filter.ID)
		where["_id"] = objectID
	}
	if filter.City != "" {
		where["city"] = filter.City
	}
	if filter.IsCathedral != nil {
		where["isCathedral"] = *filter.IsCathedral
	}
	if filter.Search != "" {
		where["name"] = primitive.Regex{Pattern: filter.Search, Options: "i"}
	}
	return where
}

func (r *churchRepoMongo) FetchAll(ctx context.Context, filter *churchdomain.FilterChurch) (data []shareddomain.Church, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildFilter(filter)
	trace.SetTag("query", where)

	findOptions := options.Find().SetSort(bson.M{"name": 1})
	if !filter.ShowAll {
		findOptions.SetLimit(int64(filter.Limit))
		findOptions.SetSkip(int64(filter.CalculateOffset()))
	}
	cur, err := r.readDB.Collection(r.collection).Find(ctx, where, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}

func (r *churchRepoMongo) Count(ctx context.Context, filter *churchdomain.FilterChurch) int {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchRepoMongo:Count")
	defer trace.Finish()

	count, err := r.readDB.Collection(r.collection).CountDocuments(ctx, r.buildFilter(filter))
	trace.SetError(err)
	return int(count)
}

func (r *churchRepoMongo) Find(ctx context.Context, filter *churchdomain.FilterChurch) (result shareddomain.Church, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchRepoMongo:Find")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildFilter(filter)
	trace.SetTag("query", where)

	err = r.readDB.Collection(r.collection).FindOne(ctx, where).Decode(&result)
	return
}

func (r *churchRepoMongo) Save(ctx context.Context, data *shareddomain.Church) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchRepoMongo:Save")
	defer func() { trace.SetError(err); trace.Finish() }()
	tracer.Log(ctx, "data", data)

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	} else {
		opt := options.UpdateOptions{
			Upsert: candihelper.ToBoolPtr(true),
		}
		_, err = r.writeDB.Collection(r.collection).UpdateOne(ctx,
			bson.M{"_id": data.ID},
			bson.M{"$set": data}, &opt)
	}

	return
}

func (r *churchRepoMongo) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchRepoMongo:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	_, err = r.writeDB.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": id})
	return
}

func (r *churchRepoMongo) FindNearby(ctx context.Context, filter *churchdomain.FilterNearbyChurch) (data []shareddomain.NearbyChurch, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchRepoMongo:FindNearby")
	defer func() { trace.SetError(err); trace.Finish() }()

	pipeline := buildNearbyPipeline(filter, time.Now())
	trace.SetTag("pipeline", pipeline)

	cur, err := r.readDB.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}

func (r *churchRepoMongo) FetchByMassSchedule(ctx context.Context, filter *churchdomain.FilterMassSchedule) (data []shareddomain.NearbyChurch, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchRepoMongo:FetchByMassSchedule")
	defer func() { trace.SetError(err); trace.Finish() }()

	pipeline := buildMassSchedulePipeline(filter)
	trace.SetTag("pipeline", pipeline)

	cur, err := r.readDB.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}

func (r *churchRepoMongo) FetchByConfessionSchedule(ctx context.Context, filter *churchdomain.FilterConfessionSchedule) (data []shareddomain.NearbyChurch, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchRepoMongo:FetchByConfessionSchedule")
	defer func() { trace.SetError(err); trace.Finish() }()

	pipeline := buildConfessionSchedulePipeline(filter)
	trace.SetTag("pipeline", pipeline)

	cur, err := r.readDB.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}
