package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

func TestPersistenceStores(t *testing.T) {
	tests := []struct {
		name    string
		service PersistenceService
	}{
		{name: "memory", service: NewMemoryService()},
		{name: "json", service: &JsonPersistenceService{Directory: t.TempDir()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.service.NewStore("series", "data/renko-parsed/NQ-2023-M8.csv")

			var series types.Series
			assert.ErrorIs(t, store.Load(&series), ErrPersistenceNotExists)

			saved := types.Series{
				Name:   "NQ-2023-M8",
				Source: "data/renko-parsed/NQ-2023-M8.csv",
				Rows:   []types.PriceRow{{Label: "09:30:00", Open: 15000, Close: 15010, Volume: 120}},
			}
			require.NoError(t, store.Save(saved))
			require.NoError(t, store.Load(&series))
			assert.Equal(t, saved.Name, series.Name)
			assert.Equal(t, saved.Rows[0].Open, series.Rows[0].Open)
			assert.Equal(t, saved.Rows[0].Label, series.Rows[0].Label)

			require.NoError(t, store.Reset())
			assert.ErrorIs(t, store.Load(&series), ErrPersistenceNotExists)
		})
	}
}

func TestMemoryStore_TypeMismatch(t *testing.T) {
	store := NewMemoryService().NewStore("series")
	require.NoError(t, store.Save(types.Series{Name: "a"}))

	var n int
	assert.Error(t, store.Load(&n))
}

func TestPersistenceServiceFacade(t *testing.T) {
	facade := NewPersistenceServiceFacade(nil)
	assert.Equal(t, facade.Memory, facade.Get())

	facade = NewPersistenceServiceFacade(&PersistenceConfig{Json: &JsonPersistenceConfig{Directory: t.TempDir()}})
	assert.Equal(t, facade.Json, facade.Get())

	facade = NewPersistenceServiceFacade(&PersistenceConfig{Redis: &RedisPersistenceConfig{Host: "127.0.0.1", Port: "6379"}})
	assert.Equal(t, facade.Redis, facade.Get())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "data_renko_NQ-2023-M8.csv", fileName("data/renko/NQ-2023-M8.csv"))
	assert.Equal(t, "Week_No__1_From__2023-01-02", fileName("Week No: 1 From: 2023-01-02"))
}
