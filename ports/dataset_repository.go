// Package ports declares the interfaces the core depends on; adapters provide
// the implementations.
package ports

import (
	"context"

	"vizlens/domain/core"
	"vizlens/domain/dataset"
	"vizlens/domain/profile"
)

// DatasetRepository persists uploaded dataset metadata and profiles
type DatasetRepository interface {
	Create(ctx context.Context, ds *dataset.Dataset) error
	GetByID(ctx context.Context, id core.DatasetID) (*dataset.Dataset, error)
	List(ctx context.Context, limit, offset int) ([]*dataset.Dataset, error)
	UpdateStatus(ctx context.Context, id core.DatasetID, status dataset.DatasetStatus, errorMsg string) error
	SaveProfile(ctx context.Context, id core.DatasetID, report *profile.Report) error
	GetProfile(ctx context.Context, id core.DatasetID) (*profile.Report, error)
	Delete(ctx context.Context, id core.DatasetID) error
}
