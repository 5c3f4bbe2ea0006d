package service

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

func TestRedisPersistenceService_NewStore(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		id        string
		subIDs    []string
		want      string
	}{
		{"namespace", "renkochart", "series", []string{"file", "data/NQ-2023-M8.csv"}, "renkochart:series:file:data/NQ-2023-M8.csv"},
		{"week key", "renkochart", "series", []string{"database", "12"}, "renkochart:series:database:12"},
		{"no namespace", "", "series", nil, "series"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRedisPersistenceService(&RedisPersistenceConfig{
				Host:       "127.0.0.1",
				Port:       "6379",
				Namespace:  tt.namespace,
				Expiration: 10 * time.Minute,
			})

			store, ok := s.NewStore(tt.id, tt.subIDs...).(*RedisStore)
			if assert.True(t, ok) {
				assert.Equal(t, tt.want, store.Key)
				assert.Equal(t, 10*time.Minute, store.Expiration)
			}
		})
	}
}

func TestRedisStore_NotConfigured(t *testing.T) {
	store := &RedisStore{Key: "series"}
	var series types.Series
	assert.Error(t, store.Load(&series))
}

func TestRedisPersistentService(t *testing.T) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		t.Skip("REDIS_HOST is not set")
	}

	redisService := NewRedisPersistenceService(&RedisPersistenceConfig{
		Host:      host,
		Port:      "6379",
		DB:        0,
		Namespace: "renkochart-test",
	})
	assert.NotNil(t, redisService)

	store := redisService.NewStore("series", "NQ-2023-M8.csv")
	assert.NotNil(t, store)

	err := store.Reset()
	assert.NoError(t, err)

	var series types.Series
	err = store.Load(&series)
	assert.Error(t, err)
	assert.EqualError(t, ErrPersistenceNotExists, err.Error())

	saved := types.Series{Name: "NQ-2023-M8", Rows: []types.PriceRow{{Label: "09:30:00", Open: 100, Close: 110}}}
	err = store.Save(saved)
	assert.NoError(t, err, "should store value without error")

	err = store.Load(&series)
	assert.NoError(t, err, "should load value without error")
	assert.Equal(t, saved.Name, series.Name)
	assert.Equal(t, saved.Rows[0].Close, series.Rows[0].Close)

	err = store.Reset()
	assert.NoError(t, err)
}
