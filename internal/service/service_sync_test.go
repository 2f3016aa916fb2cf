package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"braindrop/internal/logger"
	"braindrop/internal/mock"
	"braindrop/internal/store"
	"braindrop/models"
)

func newTestSyncSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*syncService,
	*mock.MockRaindropAPI,
	*mock.MockRaindropRepository,
	*mock.MockCollectionRepository,
	*mock.MockMetaRepository,
) {
	t.Helper()
	mockAPI := mock.NewMockRaindropAPI(ctrl)
	mockRaindrops := mock.NewMockRaindropRepository(ctrl)
	mockCollections := mock.NewMockCollectionRepository(ctrl)
	mockMeta := mock.NewMockMetaRepository(ctrl)

	storages := &store.Storages{
		Raindrops:   mockRaindrops,
		Collections: mockCollections,
		Meta:        mockMeta,
	}

	svc := NewSyncService(storages, mockAPI, logger.Nop()).(*syncService)
	return svc, mockAPI, mockRaindrops, mockCollections, mockMeta
}

// ── Download ─────────────────────────────────────────────────────────────────

func TestSyncService_Download_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockRaindrops, mockCollections, mockMeta := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 42}
	kept := []models.Raindrop{{ID: 1, Link: "https://one.example.com/"}, {ID: 2, Link: "https://two.example.com/"}}
	binned := []models.Raindrop{{ID: 3, Collection: int64(models.CollectionTrash)}}
	roots := []models.Collection{{ID: 7, Title: "Reading"}}
	children := []models.Collection{{ID: 8, Title: "Articles", Parent: 7}}

	var progressCalls []int
	progress := func(count int) { progressCalls = append(progressCalls, count) }

	mockAPI.EXPECT().User(ctx).Return(user, nil)
	mockAPI.EXPECT().Raindrops(ctx, int64(models.CollectionAll), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, cb func(int)) ([]models.Raindrop, error) {
			cb(2)
			return kept, nil
		})
	mockAPI.EXPECT().Raindrops(ctx, int64(models.CollectionTrash), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, cb func(int)) ([]models.Raindrop, error) {
			cb(1)
			return binned, nil
		})
	mockAPI.EXPECT().Collections(ctx, true).Return(roots, nil)
	mockAPI.EXPECT().Collections(ctx, false).Return(children, nil)

	mockRaindrops.EXPECT().ReplaceAll(ctx, append(kept, binned...)).Return(nil)
	mockCollections.EXPECT().ReplaceAll(ctx, append(roots, children...)).Return(nil)
	mockMeta.EXPECT().SaveUser(ctx, user).Return(nil)
	mockMeta.EXPECT().SetLastDownloaded(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, at time.Time) error {
			assert.Equal(t, time.UTC, at.Location())
			assert.WithinDuration(t, time.Now(), at, time.Minute)
			return nil
		})

	require.NoError(t, svc.Download(ctx, progress))
	assert.Equal(t, []int{2, 3}, progressCalls, "count keeps running through the trash pass")
}

func TestSyncService_Download_NilProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockRaindrops, mockCollections, mockMeta := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().User(ctx).Return(models.User{}, nil)
	mockAPI.EXPECT().Raindrops(ctx, int64(models.CollectionAll), gomock.Nil()).Return(nil, nil)
	mockAPI.EXPECT().Raindrops(ctx, int64(models.CollectionTrash), gomock.Nil()).Return(nil, nil)
	mockAPI.EXPECT().Collections(ctx, true).Return(nil, nil)
	mockAPI.EXPECT().Collections(ctx, false).Return(nil, nil)
	mockRaindrops.EXPECT().ReplaceAll(ctx, gomock.Any()).Return(nil)
	mockCollections.EXPECT().ReplaceAll(ctx, gomock.Any()).Return(nil)
	mockMeta.EXPECT().SaveUser(ctx, gomock.Any()).Return(nil)
	mockMeta.EXPECT().SetLastDownloaded(ctx, gomock.Any()).Return(nil)

	require.NoError(t, svc.Download(ctx, nil))
}

func TestSyncService_Download_APIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _, _, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().User(ctx).Return(models.User{}, errors.New("server unavailable"))

	require.Error(t, svc.Download(ctx, nil))
}

func TestSyncService_Download_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockRaindrops, _, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().User(ctx).Return(models.User{}, nil)
	mockAPI.EXPECT().Raindrops(ctx, gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	mockAPI.EXPECT().Collections(ctx, gomock.Any()).Return(nil, nil).Times(2)
	mockRaindrops.EXPECT().ReplaceAll(ctx, gomock.Any()).Return(errors.New("disk on fire"))

	require.Error(t, svc.Download(ctx, nil))
}

// ── NeedsRedownload ──────────────────────────────────────────────────────────

func TestNeedsRedownload_NeverDownloaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, mockMeta := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockMeta.EXPECT().GetLastDownloaded(ctx).Return(time.Time{}, store.ErrNotFound)

	stale, err := svc.NeedsRedownload(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
}

func TestNeedsRedownload_ServerMovedOn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _, _, mockMeta := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	downloaded := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mockMeta.EXPECT().GetLastDownloaded(ctx).Return(downloaded, nil)
	mockAPI.EXPECT().User(ctx).Return(models.User{LastUpdate: downloaded.Add(time.Hour)}, nil)

	stale, err := svc.NeedsRedownload(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
}

func TestNeedsRedownload_WithinWiggleRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _, _, mockMeta := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	downloaded := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mockMeta.EXPECT().GetLastDownloaded(ctx).Return(downloaded, nil)
	mockAPI.EXPECT().User(ctx).Return(models.User{LastUpdate: downloaded.Add(time.Second)}, nil)

	stale, err := svc.NeedsRedownload(ctx)
	require.NoError(t, err)
	assert.False(t, stale, "a stamp just after the download is the download itself")
}

func TestNeedsRedownload_NoServerStamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _, _, mockMeta := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockMeta.EXPECT().GetLastDownloaded(ctx).Return(time.Now(), nil)
	mockAPI.EXPECT().User(ctx).Return(models.User{}, nil)

	stale, err := svc.NeedsRedownload(ctx)
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestNeedsRedownload_APIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _, _, mockMeta := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockMeta.EXPECT().GetLastDownloaded(ctx).Return(time.Now(), nil)
	mockAPI.EXPECT().User(ctx).Return(models.User{}, errors.New("server unavailable"))

	_, err := svc.NeedsRedownload(ctx)
	require.Error(t, err)
}
