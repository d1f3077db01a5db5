package middlewares

import (
	"context"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type vendorReader struct {
	db *gorm.DB
}

func (r *vendorReader) getVendors(ctx context.Context, ids []int) []*dataloader.Result[*models.Vendor] {
	var results []models.Vendor
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Vendor](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

// GetVendor loads through the request's dataloader when present, falling back
// to a direct query (CLI harness, background jobs).
func GetVendor(ctx context.Context, id int) (*models.Vendor, error) {
	loaders := For(ctx)
	if loaders == nil {
		return models.GetVendorById(ctx, id)
	}
	return loaders.vendorLoader.Load(ctx, id)()
}
