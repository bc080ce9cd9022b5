package repository

import (
	"context"

	massdomain "church-finder-service/internal/modules/mass/domain"
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/tracer"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type massRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewMassRepoMongo mongo repo constructor
func NewMassRepoMongo(readDB, writeDB *mongo.Database) MassRepository {
	return &massRepoMongo{
		readDB, writeDB, shareddomain.Mass{}.CollectionName(),
	}
}

func (r *massRepoMongo) buildFilter(filter *massdomain.FilterMass) bson.M {
	where := bson.M{}
	if filter.ID != nil {
		objectID, _ := primitive.ObjectIDFromHex(*filter.ID)
		where["_id"] = objectID
	}
	if filter.ChurchID != "" {
		churchID, _ := primitive.ObjectIDFromHex(filter.ChurchID)
		where["church"] = churchID
	}
	if filter.Day != "" {
		where["day"] = filter.Day
	}
	return where
}

func (r *massRepoMongo) FetchAll(ctx context.Context, filter *massdomain.FilterMass) (data []shareddomain.Mass, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildFilter(filter)
	trace.SetTag("query", where)

	findOptions := options.Find().SetSort(bson.M{"time": 1})
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

func (r *massRepoMongo) Count(ctx context.Context, filter *massdomain.FilterMass) int {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassRepoMongo:Count")
	defer trace.Finish()

	count, err := r.readDB.Collection(r.collection).CountDocuments(ctx, r.buildFilter(filter))
	trace.SetError(err)
	return int(count)
}

func (r *massRepoMongo) Find(ctx context.Context, filter *massdomain.FilterMass) (result shareddomain.Mass, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassRepoMongo:Find")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildFilter(filter)
	trace.SetTag("query", where)

	err = r.readDB.Collection(r.collection).FindOne(ctx, where).Decode(&result)
	return
}

func (r *massRepoMongo) Save(ctx context.Context, data *shareddomain.Mass) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassRepoMongo:Save")
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

func (r *massRepoMongo) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassRepoMongo:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	_, err = r.writeDB.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": id})
	return
}

func (r *massRepoMongo) DeleteByChurch(ctx context.Context, churchID primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassRepoMongo:DeleteByChurch")
	defer func() { trace.SetError(err); trace.Finish() }()

	_, err = r.writeDB.Collection(r.collection).DeleteMany(ctx, bson.M{"church": churchID})
	return
}
