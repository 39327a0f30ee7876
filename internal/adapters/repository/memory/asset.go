package memory

import (
	"context"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"fmt"
	"sort"
	"sync"
)

type assetRepository struct {
	mu     sync.RWMutex
	assets map[domain.AssetID]domain.HostedAsset
}

// NewAssetRepository creates an in memory port.AssetStore
func NewAssetRepository() port.AssetStore {
	return &assetRepository{assets: make(map[domain.AssetID]domain.HostedAsset)}
}

// Create stores a new asset
func (r *assetRepository) Create(ctx context.Context, asset domain.HostedAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assets[asset.ID]; exists {
		return fmt.Errorf("asset %s already exists", asset.ID)
	}
	r.assets[asset.ID] = asset
	return nil
}

// FindByID finds by id
func (r *assetRepository) FindByID(ctx context.Context, id domain.AssetID) (*domain.HostedAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	return &asset, nil
}

// List returns every asset, newest first
func (r *assetRepository) List(ctx context.Context) ([]domain.HostedAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assets := make([]domain.HostedAsset, 0, len(r.assets))
	for _, asset := range r.assets {
		assets = append(assets, asset)
	}
	sort.Slice(assets, func(i, j int) bool {
		if assets[i].CreatedAt.Equal(assets[j].CreatedAt) {
			return assets[i].ID < assets[j].ID
		}
		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})
	return assets, nil
}

// Update applies fn under the write lock; the asset is left untouched when fn fails
func (r *assetRepository) Update(ctx context.Context, id domain.AssetID, fn func(*domain.HostedAsset) error) (*domain.HostedAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	if err := fn(&asset); err != nil {
		return nil, err
	}
	r.assets[id] = asset
	return &asset, nil
}

// Delete removes an asset
func (r *assetRepository) Delete(ctx context.Context, id domain.AssetID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[id]; !ok {
		return domain.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}

// DeleteIf removes an asset when cond holds, checked under the write lock
func (r *assetRepository) DeleteIf(ctx context.Context, id domain.AssetID, cond func(domain.HostedAsset) bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[id]
	if !ok {
		return false, domain.ErrAssetNotFound
	}
	if !cond(asset) {
		return false, nil
	}
	delete(r.assets, id)
	return true, nil
}
