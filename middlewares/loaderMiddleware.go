package middlewares

import (
	"context"
	"reflect"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders wrap the directory data loaders to inject via middleware. One set
// per request, so lookups within a single report computation are batched and
// memoized.
type Loaders struct {
	vendorLoader   *dataloader.Loader[int, *models.Vendor]
	supplierLoader *dataloader.Loader[int, *models.Supplier]
	regionLoader   *dataloader.Loader[int, *models.Region]
}

// NewLoaders instantiates data loaders for the middleware
func NewLoaders(conn *gorm.DB) *Loaders {
	vendorReader := &vendorReader{db: conn}
	supplierReader := &supplierReader{db: conn}
	regionReader := &regionReader{db: conn}

	return &Loaders{
		vendorLoader:   dataloader.NewBatchedLoader(vendorReader.getVendors, dataloader.WithWait[int, *models.Vendor](time.Millisecond)),
		supplierLoader: dataloader.NewBatchedLoader(supplierReader.getSuppliers, dataloader.WithWait[int, *models.Supplier](time.Millisecond)),
		regionLoader:   dataloader.NewBatchedLoader(regionReader.getRegions, dataloader.WithWait[int, *models.Region](time.Millisecond)),
	}
}

func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loader := NewLoaders(config.GetDB())
		ctx := context.WithValue(c.Request.Context(), loadersKey, loader)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// For returns nil outside HTTP requests (CLI harness, tests); callers fall
// back to direct lookups.
func For(ctx context.Context) *Loaders {
	loaders, _ := ctx.Value(loadersKey).(*Loaders)
	return loaders
}

// handleError creates array of result with the same error repeated for as many items requested
func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// turns results from db into dataloader results
// (T must be a struct)
func generateLoaderResults[T models.Data](results []T, ids []int) []*dataloader.Result[*T] {
	// generate resultMap from results
	resultMap := make(map[int]T)
	var resultZero T
	resultMap[0] = resultZero.GetDefault(0).(T)
	for _, result := range results {
		resultMap[result.GetId()] = result
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(ids))
	for _, id := range ids {
		data := resultMap[id]
		if reflect.ValueOf(data).IsZero() {
			data = data.GetDefault(id).(T)
		}
		loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: &data})
	}
	return loaderResults
}
