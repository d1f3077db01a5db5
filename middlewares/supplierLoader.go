package middlewares

import (
	"context"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type supplierReader struct {
	db *gorm.DB
}

func (r *supplierReader) getSuppliers(ctx context.Context, ids []int) []*dataloader.Result[*models.Supplier] {
	var results []models.Supplier
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Supplier](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetSupplier(ctx context.Context, id int) (*models.Supplier, error) {
	loaders := For(ctx)
	if loaders == nil {
		return models.GetSupplierById(ctx, id)
	}
	return loaders.supplierLoader.Load(ctx, id)()
}
