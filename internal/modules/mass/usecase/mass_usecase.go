package usecase

import (
	"context"

	churchdomain "church-finder-service/internal/modules/church/domain"
	"church-finder-service/internal/modules/mass/domain"
	shareddomain "church-finder-service/pkg/shared/domain"
	"church-finder-service/pkg/shared/schedule"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/tracer"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (uc *massUsecaseImpl) GetAllMass(ctx context.Context, filter *domain.FilterMass) (results []domain.ResponseMass, meta candishared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassUsecase:GetAllMass")
	defer trace.Finish()

	data, err := uc.repoMongo.MassRepo().FetchAll(ctx, filter)
	if err != nil {
		return results, meta, err
	}
	count := uc.repoMongo.MassRepo().Count(ctx, filter)
	meta = candishared.NewMeta(filter.Page, filter.Limit, count)

	for _, detail := range data {
		var res domain.ResponseMass
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}

func (uc *massUsecaseImpl) GetDetailMass(ctx context.Context, id string) (result domain.ResponseMass, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassUsecase:GetDetailMass")
	defer trace.Finish()

	repoFilter := domain.FilterMass{ID: &id}
	data, err := uc.repoMongo.MassRepo().Find(ctx, &repoFilter)
	if err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}

// normalizeMassRequest validate and canonicalize the schedule fields of a mass payload
func (uc *massUsecaseImpl) normalizeMassRequest(ctx context.Context, req *domain.RequestMass) (data shareddomain.Mass, err error) {
	normalizedTime, err := schedule.NormalizeClock(req.Time)
	if err != nil {
		return data, err
	}
	if req.Day != shareddomain.DaySunday && req.Day != shareddomain.DayWeekday {
		return data, &schedule.ValidationError{Message: "day must be sunday or weekday"}
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
	data.Time = normalizedTime
	data.ChurchID = churchID
	return data, nil
}

func (uc *massUsecaseImpl) CreateMass(ctx context.Context, req *domain.RequestMass) (result domain.ResponseMass, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassUsecase:CreateMass")
	defer trace.Finish()

	data, err := uc.normalizeMassRequest(ctx, req)
	if err != nil {
		return result, err
	}
	if err = uc.repoMongo.MassRepo().Save(ctx, &data); err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}

func (uc *massUsecaseImpl) UpdateMass(ctx context.Context, req *domain.RequestMass) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassUsecase:UpdateMass")
	defer trace.Finish()

	repoFilter := domain.FilterMass{ID: &req.ID}
	existing, err := uc.repoMongo.MassRepo().Find(ctx, &repoFilter)
	if err != nil {
		return err
	}

	data, err := uc.normalizeMassRequest(ctx, req)
	if err != nil {
		return err
	}
	data.ID = existing.ID

	return uc.repoMongo.MassRepo().Save(ctx, &data)
}

func (uc *massUsecaseImpl) DeleteMass(ctx context.Context, id string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MassUsecase:DeleteMass")
	defer trace.Finish()

	repoFilter := domain.FilterMass{ID: &id}
	existing, err := uc.repoMongo.MassRepo().Find(ctx, &repoFilter)
	if err != nil {
		return err
	}

	return uc.repoMongo.MassRepo().Delete(ctx, existing.ID)
}
