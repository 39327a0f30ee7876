package memory_test

import (
	"context"
	"drm-play/internal/adapters/repository/memory"
	"drm-play/internal/core/domain"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("create and find", func(t *testing.T) {
		// Arrange
		repo := memory.NewAssetRepository()
		asset := domain.HostedAsset{ID: "a", Title: "A", Status: domain.AssetStatusPreUpload, CreatedAt: base}

		// Act
		err := repo.Create(ctx, asset)
		found, findErr := repo.FindByID(ctx, "a")

		// Assert
		require.NoError(t, err)
		require.NoError(t, findErr)
		assert.Equal(t, asset, *found)
	})

	t.Run("duplicate id", func(t *testing.T) {
		// Arrange
		repo := memory.NewAssetRepository()
		require.NoError(t, repo.Create(ctx, domain.HostedAsset{ID: "a"}))

		// Act
		err := repo.Create(ctx, domain.HostedAsset{ID: "a"})

		// Assert
		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		// Arrange
		repo := memory.NewAssetRepository()

		// Act
		_, findErr := repo.FindByID(ctx, "missing")
		deleteErr := repo.Delete(ctx, "missing")
		_, updateErr := repo.Update(ctx, "missing", func(*domain.HostedAsset) error { return nil })

		// Assert
		assert.ErrorIs(t, findErr, domain.ErrAssetNotFound)
		assert.ErrorIs(t, deleteErr, domain.ErrAssetNotFound)
		assert.ErrorIs(t, updateErr, domain.ErrAssetNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		// Arrange
		repo := memory.NewAssetRepository()
		require.NoError(t, repo.Create(ctx, domain.HostedAsset{ID: "old", CreatedAt: base}))
		require.NoError(t, repo.Create(ctx, domain.HostedAsset{ID: "new", CreatedAt: base.Add(time.Hour)}))

		// Act
		assets, err := repo.List(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, assets, 2)
		assert.Equal(t, domain.AssetID("new"), assets[0].ID)
		assert.Equal(t, domain.AssetID("old"), assets[1].ID)
	})

	t.Run("failed update leaves asset untouched", func(t *testing.T) {
		// Arrange
		repo := memory.NewAssetRepository()
		require.NoError(t, repo.Create(ctx, domain.HostedAsset{ID: "a", Status: domain.AssetStatusQueued}))

		// Act
		_, err := repo.Update(ctx, "a", func(a *domain.HostedAsset) error {
			a.Status = domain.AssetStatusReady
			return errors.New("nope")
		})

		// Assert
		assert.Error(t, err)
		found, _ := repo.FindByID(ctx, "a")
		assert.Equal(t, domain.AssetStatusQueued, found.Status)
	})

	t.Run("concurrent updates", func(t *testing.T) {
		// Arrange
		repo := memory.NewAssetRepository()
		require.NoError(t, repo.Create(ctx, domain.HostedAsset{ID: "a"}))
		var wg sync.WaitGroup

		// Act
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = repo.Update(ctx, "a", func(a *domain.HostedAsset) error {
					a.Size++
					return nil
				})
			}()
		}
		wg.Wait()

		// Assert
		found, err := repo.FindByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, int64(50), found.Size)
	})
	t.Run("conditional delete", func(t *testing.T) {
		// Arrange
		repo := memory.NewAssetRepository()
		require.NoError(t, repo.Create(ctx, domain.HostedAsset{ID: "pending", Status: domain.AssetStatusPreUpload}))
		require.NoError(t, repo.Create(ctx, domain.HostedAsset{ID: "queued", Status: domain.AssetStatusQueued}))
		isPending := func(a domain.HostedAsset) bool { return a.Status == domain.AssetStatusPreUpload }

		// Act
		pendingDeleted, pendingErr := repo.DeleteIf(ctx, "pending", isPending)
		queuedDeleted, queuedErr := repo.DeleteIf(ctx, "queued", isPending)
		_, missingErr := repo.DeleteIf(ctx, "missing", isPending)

		// Assert
		require.NoError(t, pendingErr)
		require.NoError(t, queuedErr)
		assert.True(t, pendingDeleted)
		assert.False(t, queuedDeleted)
		assert.ErrorIs(t, missingErr, domain.ErrAssetNotFound)
		_, err := repo.FindByID(ctx, "pending")
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
		_, err = repo.FindByID(ctx, "queued")
		assert.NoError(t, err)
	})
}
