package repository

import (
	"context"
	"time"

	confessiondomain "church-finder-service/internal/modules/confession/domain"
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/tracer"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type confessionRepoMongo struct {
	readDB, writeDB     *mongo.Database
	recurringCollection string
	liveCollection      string
}

// NewConfessionRepoMongo mongo repo constructor
func NewConfessionRepoMongo(readDB, writeDB *mongo.Database) ConfessionRepository {
	return &confessionRepoMongo{
		readDB:              readDB,
		writeDB:             writeDB,
		recurringCollection: shareddomain.RecurringConfession{}.CollectionName(),
		liveCollection:      shareddomain.LiveConfession{}.CollectionName(),
	}
}

func (r *confessionRepoMongo) buildFilter(filter *confessiondomain.FilterConfession) bson.M {
	where := bson.M{}
	if filter.ID != nil {
		objectID, _ := primitive.ObjectIDFromHex(*filter.ID)
		where["_id"] = objectID
	}
	if filter.ChurchID != "" {
		churchID, _ := primitive.ObjectIDFromHex(filter.ChurchID)
		where["church"] = churchID
	}
	return where
}

func (r *confessionRepoMongo) FetchAllRecurring(ctx context.Context, filter *confessiondomain.FilterConfession) (data []shareddomain.RecurringConfession, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:FetchAllRecurring")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildFilter(filter)
	trace.SetTag("query", where)

	findOptions := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}})
	if !filter.ShowAll {
		findOptions.SetLimit(int64(filter.Limit))
		findOptions.SetSkip(int64(filter.CalculateOffset()))
	}
	cur, err := r.readDB.Collection(r.recurringCollection).Find(ctx, where, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}

func (r *confessionRepoMongo) CountRecurring(ctx context.Context, filter *confessiondomain.FilterConfession) int {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:CountRecurring")
	defer trace.Finish()

	count, err := r.readDB.Collection(r.recurringCollection).CountDocuments(ctx, r.buildFilter(filter))
	trace.SetError(err)
	return int(count)
}

func (r *confessionRepoMongo) FindRecurring(ctx context.Context, filter *confessiondomain.FilterConfession) (result shareddomain.RecurringConfession, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:FindRecurring")
	defer func() { trace.SetError(err); trace.Finish() }()

	err = r.readDB.Collection(r.recurringCollection).FindOne(ctx, r.buildFilter(filter)).Decode(&result)
	return
}

func (r *confessionRepoMongo) SaveRecurring(ctx context.Context, data *shareddomain.RecurringConfession) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:SaveRecurring")
	defer func() { trace.SetError(err); trace.Finish() }()
	tracer.Log(ctx, "data", data)

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		_, err = r.writeDB.Collection(r.recurringCollection).InsertOne(ctx, data)
	} else {
		opt := options.UpdateOptions{
			Upsert: candihelper.ToBoolPtr(true),
		}
		_, err = r.writeDB.Collection(r.recurringCollection).UpdateOne(ctx,
			bson.M{"_id": data.ID},
			bson.M{"$set": data}, &opt)
	}

	return
}

func (r *confessionRepoMongo) DeleteRecurring(ctx context.Context, id primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:DeleteRecurring")
	defer func() { trace.SetError(err); trace.Finish() }()

	_, err = r.writeDB.Collection(r.recurringCollection).DeleteOne(ctx, bson.M{"_id": id})
	return
}

func (r *confessionRepoMongo) FetchAllLive(ctx context.Context, filter *confessiondomain.FilterConfession) (data []shareddomain.LiveConfession, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:FetchAllLive")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildFilter(filter)
	// expired but not yet reaped documents count as absent
	where["expireAt"] = bson.M{"$gt": time.Now()}
	trace.SetTag("query", where)

	cur, err := r.readDB.Collection(r.liveCollection).Find(ctx, where, options.Find().SetSort(bson.M{"expireAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}

func (r *confessionRepoMongo) SaveLive(ctx context.Context, data *shareddomain.LiveConfession) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:SaveLive")
	defer func() { trace.SetError(err); trace.Finish() }()
	tracer.Log(ctx, "data", data)

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	_, err = r.writeDB.Collection(r.liveCollection).InsertOne(ctx, data)
	return
}

func (r *confessionRepoMongo) DeleteLive(ctx context.Context, id primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:DeleteLive")
	defer func() { trace.SetError(err); trace.Finish() }()

	_, err = r.writeDB.Collection(r.liveCollection).DeleteOne(ctx, bson.M{"_id": id})
	return
}

func (r *confessionRepoMongo) DeleteByChurch(ctx context.Context, churchID primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionRepoMongo:DeleteByChurch")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := bson.M{"church": churchID}
	if _, err = r.writeDB.Collection(r.recurringCollection).DeleteMany(ctx, where); err != nil {
		return err
	}
	_, err = r.writeDB.Collection(r.liveCollection).DeleteMany(ctx, where)
	return
}
