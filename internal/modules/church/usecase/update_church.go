package usecase

import (
	"context"

	"church-finder-service/internal/modules/church/domain"
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/golangid/candi/tracer"
)

func (uc *churchUsecaseImpl) UpdateChurch(ctx context.Context, req *domain.RequestChurch) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchUsecase:UpdateChurch")
	defer trace.Finish()

	repoFilter := domain.FilterChurch{ID: &req.ID}
	existing, err := uc.repoMongo.ChurchRepo().Find(ctx, &repoFilter)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.City = req.City
	existing.Address = req.Address
	existing.Location = shareddomain.NewPointLocation(req.Longitude, req.Latitude)
	existing.IsCathedral = req.IsCathedral
	existing.Image = req.Image

	return uc.repoMongo.ChurchRepo().Save(ctx, &existing)
}
