package middlewares

import (
	"context"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type regionReader struct {
	db *gorm.DB
}

func (r *regionReader) getRegions(ctx context.Context, ids []int) []*dataloader.Result[*models.Region] {
	var results []models.Region
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Region](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetRegion(ctx context.Context, id int) (*models.Region, error) {
	loaders := For(ctx)
	if loaders == nil {
		return models.GetRegionById(ctx, id)
	}
	return loaders.regionLoader.Load(ctx, id)()
}
