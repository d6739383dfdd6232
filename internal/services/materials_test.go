package services_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"interior-studio-backend/internal/apperrors"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/realtime"
	"interior-studio-backend/internal/services"
)

func TestMaterialService_RequestQueuesEdit(t *testing.T) {
	f := newFixture(t)
	svc := services.NewMaterialService(f.store, f.publisher, f.metrics, f.logger)

	edit, err := svc.Request(context.Background(), models.MaterialEditRequest{
		RenderID:    strPtr("unchecked"),
		ElementID:   strPtr("wall-1"),
		Description: strPtr("oak panelling"),
		Color:       strPtr("#c8a165"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, edit.EditID)
	assert.Equal(t, models.StatusQueued, edit.Status)
	assert.Nil(t, edit.PreviewURL)
	assert.Equal(t, "wall-1", edit.ElementID)
	assert.Equal(t, "oak panelling", edit.Description)
	assert.Equal(t, "#c8a165", edit.Color)

	assert.Equal(t, []string{realtime.EventMaterialQueued}, f.publisher.Types())
}

func TestMaterialService_RequestValidation(t *testing.T) {
	f := newFixture(t)
	svc := services.NewMaterialService(f.store, f.publisher, f.metrics, f.logger)

	_, err := svc.Request(context.Background(), models.MaterialEditRequest{ElementID: strPtr("wall-1")})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Len(t, apperrors.AsStructuredError(err).Fields, 2)
	assert.Empty(t, svc.List(context.Background()))
}

func TestMaterialService_RequestAcceptsEmptyText(t *testing.T) {
	f := newFixture(t)
	svc := services.NewMaterialService(f.store, f.publisher, f.metrics, f.logger)

	edit, err := svc.Request(context.Background(), models.MaterialEditRequest{
		ElementID: strPtr(""), Description: strPtr(""), Color: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusQueued, edit.Status)
	assert.Equal(t, "", edit.Description)
}

func TestMaterialService_CompleteIsIdempotent(t *testing.T) {
	f := newFixture(t)
	svc := services.NewMaterialService(f.store, f.publisher, f.metrics, f.logger)
	ctx := context.Background()

	edit, err := svc.Request(ctx, models.MaterialEditRequest{ElementID: strPtr("wall-1"), Description: strPtr("paint"), Color: strPtr("blue")})
	require.NoError(t, err)

	first, err := svc.Complete(ctx, edit.EditID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusComplete, first.Status)
	require.NotNil(t, first.PreviewURL)
	assert.Equal(t, models.PlaceholderPreviewURL, *first.PreviewURL)

	second, err := svc.Complete(ctx, edit.EditID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.MaterialEdits.WithLabelValues(models.StatusComplete)))
	assert.Equal(t, []string{realtime.EventMaterialQueued, realtime.EventMaterialCompleted}, f.publisher.Types())
}

func TestMaterialService_CompleteKeepsExistingPreview(t *testing.T) {
	f := newFixture(t)
	svc := services.NewMaterialService(f.store, f.publisher, f.metrics, f.logger)
	f.store.InsertMaterialEdit(models.MaterialEdit{
		EditID:     "edit-1",
		Status:     models.StatusQueued,
		PreviewURL: strPtr("https://cdn.example.com/preview.png"),
	})

	edit, err := svc.Complete(context.Background(), "edit-1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/preview.png", *edit.PreviewURL)
}

func TestMaterialService_CompleteUnknown(t *testing.T) {
	f := newFixture(t)
	svc := services.NewMaterialService(f.store, f.publisher, f.metrics, f.logger)

	_, err := svc.Complete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Material edit not found", apperrors.AsStructuredError(err).Message)
}

func TestMaterialService_PlaceholdersDiffer(t *testing.T) {
	assert.NotEqual(t, models.PlaceholderRenderURL, models.PlaceholderPreviewURL)
}
