package reports

import (
	"context"
	"errors"
	"sync"

	"bitbucket.org/craftlane/marketplace_backend/middlewares"
	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/utils"
)

// EntityKey is the merge identity: kind + id. Display names and cities can
// collide across entities and are never used as keys.
type EntityKey struct {
	Kind models.OwnerKind `json:"kind"`
	ID   int              `json:"id"`
}

// Entity is the canonical billing subject a transaction resolves to.
// Placeholder marks an owner id that missed the directory; such rows are
// excluded from final output by policy.
type Entity struct {
	Key         EntityKey
	DisplayName string
	City        string
	RegionId    int
	Placeholder bool
}

// EntityResolver maps raw owner ids to canonical entities. Lookups go through
// the request's dataloaders (batched and memoized per request) and are
// additionally cached here because the four aggregators resolve concurrently.
type EntityResolver struct {
	mu    sync.Mutex
	cache map[EntityKey]*Entity
}

func NewEntityResolver() *EntityResolver {
	return &EntityResolver{cache: make(map[EntityKey]*Entity)}
}

func (r *EntityResolver) Resolve(ctx context.Context, kind models.OwnerKind, id int) (*Entity, error) {
	key := EntityKey{Kind: kind, ID: id}

	r.mu.Lock()
	if e, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return e, nil
	}
	r.mu.Unlock()

	var entity *Entity
	switch kind {
	case models.OwnerKindSupplier:
		supplier, err := middlewares.GetSupplier(ctx, id)
		if err != nil {
			if !errors.Is(err, utils.ErrorRecordNotFound) {
				return nil, err
			}
			d := models.Supplier{}.GetDefault(id).(models.Supplier)
			supplier = &d
		}
		entity = &Entity{
			Key:         key,
			DisplayName: supplier.Name,
			City:        supplier.CityName,
			RegionId:    supplier.RegionId,
			// Directory rows always carry a business id; the loader default doesn't.
			Placeholder: supplier.BusinessId == "",
		}
	default:
		vendor, err := middlewares.GetVendor(ctx, id)
		if err != nil {
			if !errors.Is(err, utils.ErrorRecordNotFound) {
				return nil, err
			}
			d := models.Vendor{}.GetDefault(id).(models.Vendor)
			vendor = &d
		}
		entity = &Entity{
			Key:         key,
			DisplayName: vendor.Name,
			City:        vendor.CityName,
			RegionId:    vendor.RegionId,
			Placeholder: vendor.BusinessId == "",
		}
	}

	r.mu.Lock()
	r.cache[key] = entity
	r.mu.Unlock()
	return entity, nil
}
