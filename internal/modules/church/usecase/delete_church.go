package usecase

import (
	"context"

	"church-finder-service/internal/modules/church/domain"

	"github.com/golangid/candi/tracer"
)

// DeleteChurch remove a church together with its masses and confession
// schedules, dangling schedule documents would otherwise keep matching lookups
func (uc *churchUsecaseImpl) DeleteChurch(ctx context.Context, id string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChurchUsecase:DeleteChurch")
	defer trace.Finish()

	repoFilter := domain.FilterChurch{ID: &id}
	existing, err := uc.repoMongo.ChurchRepo().Find(ctx, &repoFilter)
	if err != nil {
		return err
	}

	if err := uc.repoMongo.ChurchRepo().Delete(ctx, existing.ID); err != nil {
		return err
	}
	if err := uc.repoMongo.MassRepo().DeleteByChurch(ctx, existing.ID); err != nil {
		return err
	}
	return uc.repoMongo.ConfessionRepo().DeleteByChurch(ctx, existing.ID)
}
