package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/realtime"
	"interior-studio-backend/internal/services"
)

func TestSettingsService_StartsEmpty(t *testing.T) {
	f := newFixture(t)
	svc := services.NewSettingsService(f.store, f.publisher, f.metrics, f.logger)

	settings := svc.Read(context.Background())
	assert.Nil(t, settings.NanoBananaKey)
	assert.Nil(t, settings.AssetStorageKey)
}

func TestSettingsService_PartialUpdatesAccumulate(t *testing.T) {
	f := newFixture(t)
	svc := services.NewSettingsService(f.store, f.publisher, f.metrics, f.logger)
	ctx := context.Background()

	afterFirst := svc.Save(ctx, models.APISettings{NanoBananaKey: strPtr("X")})
	require.NotNil(t, afterFirst.NanoBananaKey)
	assert.Nil(t, afterFirst.AssetStorageKey)

	afterSecond := svc.Save(ctx, models.APISettings{AssetStorageKey: strPtr("Y")})
	require.NotNil(t, afterSecond.NanoBananaKey)
	require.NotNil(t, afterSecond.AssetStorageKey)
	assert.Equal(t, "X", *afterSecond.NanoBananaKey)
	assert.Equal(t, "Y", *afterSecond.AssetStorageKey)

	assert.Equal(t, afterSecond, svc.Read(ctx))
}

func TestSettingsService_EventCarriesFieldNamesOnly(t *testing.T) {
	f := newFixture(t)
	svc := services.NewSettingsService(f.store, f.publisher, f.metrics, f.logger)

	svc.Save(context.Background(), models.APISettings{NanoBananaKey: strPtr("super-secret")})
	svc.Save(context.Background(), models.APISettings{})

	require.Equal(t, []string{realtime.EventSettingsUpdated}, f.publisher.Types())
	payload := f.publisher.events[0].Payload
	assert.Equal(t, map[string]interface{}{"fields": []string{"nano_banana_key"}}, payload)
	assert.NotContains(t, payload, "super-secret")
}
