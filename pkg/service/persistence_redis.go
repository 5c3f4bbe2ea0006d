package service

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// redisTimeout bounds every cache call.
const redisTimeout = 3 * time.Second

var redisLogger = log.WithField("cache", "redis")

// RedisPersistenceService keeps the cached datasets in redis as JSON documents.
type RedisPersistenceService struct {
	client     *redis.Client
	namespace  string
	expiration time.Duration
}

func NewRedisPersistenceService(config *RedisPersistenceConfig) *RedisPersistenceService {
	client := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort(config.Host, config.Port),
		// pragma: allowlist nextline secret
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  redisTimeout,
		ReadTimeout:  redisTimeout,
		WriteTimeout: redisTimeout,
	})

	return &RedisPersistenceService{
		client:     client,
		namespace:  config.Namespace,
		expiration: config.Expiration,
	}
}

// key joins the namespace and the key parts with colons, for example
// renkochart:series:file:data/NQ-2023-M8.csv
func (s *RedisPersistenceService) key(id string, subIDs ...string) string {
	parts := make([]string, 0, len(subIDs)+2)
	if len(s.namespace) > 0 {
		parts = append(parts, s.namespace)
	}

	parts = append(parts, id)
	parts = append(parts, subIDs...)
	return strings.Join(parts, ":")
}

func (s *RedisPersistenceService) NewStore(id string, subIDs ...string) Store {
	return &RedisStore{
		client:     s.client,
		Key:        s.key(id, subIDs...),
		Expiration: s.expiration,
	}
}

// RedisStore is one cache entry. Expiration 0 keeps the entry until it is reset.
type RedisStore struct {
	client *redis.Client

	Key        string
	Expiration time.Duration
}

func (store *RedisStore) Load(val interface{}) error {
	if store.client == nil {
		return errors.New("redis cache is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	data, err := store.client.Get(ctx, store.Key).Bytes()
	if err == redis.Nil || (err == nil && (len(data) == 0 || string(data) == "null")) {
		return ErrPersistenceNotExists
	} else if err != nil {
		return errors.Wrapf(err, "redis get %s", store.Key)
	}

	redisLogger.Debugf("cache hit %s, %d bytes", store.Key, len(data))
	return json.Unmarshal(data, val)
}

func (store *RedisStore) Save(val interface{}) error {
	if val == nil {
		return nil
	}

	expiration := store.Expiration
	if expirable, ok := val.(Expirable); ok {
		expiration = expirable.Expiration()
	}

	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "encode cache entry %s", store.Key)
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := store.client.Set(ctx, store.Key, data, expiration).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", store.Key)
	}

	redisLogger.Debugf("cached %s, %d bytes, expiration %s", store.Key, len(data), expiration)
	return nil
}

func (store *RedisStore) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return store.client.Del(ctx, store.Key).Err()
}
