package usecase

import (
	"context"
	"time"

	churchdomain "church-finder-service/internal/modules/church/domain"
	"church-finder-service/internal/modules/confession/domain"
	shareddomain "church-finder-service/pkg/shared/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/golangid/candi/tracer"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (uc *confessionUsecaseImpl) GetAllLiveConfession(ctx context.Context, filter *domain.FilterConfession) (results []domain.ResponseLiveConfession, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionUsecase:GetAllLiveConfession")
	defer trace.Finish()

	data, err := uc.repoMongo.ConfessionRepo().FetchAllLive(ctx, filter)
	if err != nil {
		return results, err
	}

	for _, detail := range data {
		var res domain.ResponseLiveConfession
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}

func (uc *confessionUsecaseImpl) CreateLiveConfession(ctx context.Context, req *domain.RequestLiveConfession) (result domain.ResponseLiveConfession, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionUsecase:CreateLiveConfession")
	defer trace.Finish()

	churchID, err := primitive.ObjectIDFromHex(req.ChurchID)
	if err != nil {
		return result, &schedule.ValidationError{Message: "invalid church id format"}
	}
	churchFilter := churchdomain.FilterChurch{ID: &req.ChurchID}
	if _, err := uc.repoMongo.ChurchRepo().Find(ctx, &churchFilter); err != nil {
		return result, err
	}

	data := shareddomain.LiveConfession{
		StartTime: req.StartTime,
		ChurchID:  churchID,
	}
	if req.ExpireAt != nil {
		data.ExpireAt = *req.ExpireAt
	} else {
		data.ExpireAt = time.Now().Add(shareddomain.DefaultLiveConfessionTTL)
	}

	if !data.ExpireAt.After(time.Now()) {
		return result, &schedule.ValidationError{Message: "expireAt must be in the future"}
	}
	if data.StartTime != nil && !data.StartTime.Before(data.ExpireAt) {
		return result, &schedule.ValidationError{Message: "startTime must be before expireAt"}
	}

	if err = uc.repoMongo.ConfessionRepo().SaveLive(ctx, &data); err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}

func (uc *confessionUsecaseImpl) DeleteLiveConfession(ctx context.Context, id string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionUsecase:DeleteLiveConfession")
	defer trace.Finish()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &schedule.ValidationError{Message: "invalid id format"}
	}

	return uc.repoMongo.ConfessionRepo().DeleteLive(ctx, objectID)
}
