package usecase

import (
	"context"

	"church-finder-service/internal/modules/church/domain"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/tracer"
)

func (uc *churchUsecaseImpl) GetAllChurch(ctx context.Context, filter *domain.FilterChurch) (results []domain.ResponseChurch, meta candishared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchUsecase:GetAllChurch")
	defer trace.Finish()

	data, err := uc.repoMongo.ChurchRepo().FetchAll(ctx, filter)
	if err != nil {
		return results, meta, err
	}
	count := uc.repoMongo.ChurchRepo().Count(ctx, filter)
	meta = candishared.NewMeta(filter.Page, filter.Limit, count)

	for _, detail := range data {
		var res domain.ResponseChurch
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}
