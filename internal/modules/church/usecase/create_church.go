package usecase

import (
	"context"

	"church-finder-service/internal/modules/church/domain"

	"github.com/golangid/candi/tracer"
)

func (uc *churchUsecaseImpl) CreateChurch(ctx context.Context, req *domain.RequestChurch) (result domain.ResponseChurch, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchUsecase:CreateChurch")
	defer trace.Finish()

	data := req.Deserialize()
	if err = uc.repoMongo.ChurchRepo().Save(ctx, &data); err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}
