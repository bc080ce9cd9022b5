package usecase

import (
	"context"

	churchdomain "church-finder-service/internal/modules/church/domain"
	"church-finder-service/internal/modules/confession/domain"
	shareddomain "church-finder-service/pkg/shared/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/tracer"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (uc *confessionUsecaseImpl) GetAllRecurringConfession(ctx context.Context, filter *domain.FilterConfession) (results []domain.ResponseRecurringConfession, meta candishared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionUsecase:GetAllRecurringConfession")
	defer trace.Finish()

	data, err := uc.repoMongo.ConfessionRepo().FetchAllRecurring(ctx, filter)
	if err != nil {
		return results, meta, err
	}
	count := uc.repoMongo.ConfessionRepo().CountRecurring(ctx, filter)
	meta = candishared.NewMeta(filter.Page, filter.Limit, count)

	for _, detail := range data {
		var res domain.ResponseRecurringConfession
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}

// normalizeRecurringRequest validate and canonicalize a recurring confession payload,
// the window must lay inside one day so endTime must be greater than startTime
func (uc *confessionUsecaseImpl) normalizeRecurringRequest(ctx context.Context, req *domain.RequestRecurringConfession) (data shareddomain.RecurringConfession, err error) {
	startTime, err := schedule.NormalizeClock(req.StartTime)
	if err != nil {
		return data, err
	}
	endTime, err := schedule.NormalizeClock(req.EndTime)
	if err != nil {
		return data, err
	}
	if endTime <= startTime {
		return data, &schedule.ValidationError{Message: "endTime must be greater than startTime"}
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return data, &schedule.ValidationError{Message: "dayOfWeek must be between 0 (sunday) and 6 (saturday)"}
	}

	churchID, err := primitive.ObjectIDFromHex(req.ChurchID)
	if err != nil {
		return data, &schedule.ValidationError{Message: "invalid church id format"}
	}
	churchFilter := churchdomain.FilterChurch{ID: &req.ChurchID}
	if _, err := uc.repoMongo.ChurchRepo().Find(ctx, &churchFilter); err != nil {
		return data, err
	}

	data = req.Deserialize()
	data.StartTime = startTime
	data.EndTime = endTime
	data.ChurchID = churchID
	return data, nil
}

func (uc *confessionUsecaseImpl) CreateRecurringConfession(ctx context.Context, req *domain.RequestRecurringConfession) (result domain.ResponseRecurringConfession, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionUsecase:CreateRecurringConfession")
	defer trace.Finish()

	data, err := uc.normalizeRecurringRequest(ctx, req)
	if err != nil {
		return result, err
	}
	if err = uc.repoMongo.ConfessionRepo().SaveRecurring(ctx, &data); err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}

func (uc *confessionUsecaseImpl) UpdateRecurringConfession(ctx context.Context, req *domain.RequestRecurringConfession) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionUsecase:UpdateRecurringConfession")
	defer trace.Finish()

	repoFilter := domain.FilterConfession{ID: &req.ID}
	existing, err := uc.repoMongo.ConfessionRepo().FindRecurring(ctx, &repoFilter)
	if err != nil {
		return err
	}

	data, err := uc.normalizeRecurringRequest(ctx, req)
	if err != nil {
		return err
	}
	data.ID = existing.ID

	return uc.repoMongo.ConfessionRepo().SaveRecurring(ctx, &data)
}

func (uc *confessionUsecaseImpl) DeleteRecurringConfession(ctx context.Context, id string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ConfessionUsecase:DeleteRecurringConfession")
	defer trace.Finish()

	repoFilter := domain.FilterConfession{ID: &id}
	existing, err := uc.repoMongo.ConfessionRepo().FindRecurring(ctx, &repoFilter)
	if err != nil {
		return err
	}

	return uc.repoMongo.ConfessionRepo().DeleteRecurring(ctx, existing.ID)
}
