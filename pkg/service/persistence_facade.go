package service

import (
	log "github.com/sirupsen/logrus"
)

type PersistenceServiceFacade struct {
	Redis  *RedisPersistenceService
	Json   *JsonPersistenceService
	Memory *MemoryService
}

func NewPersistenceServiceFacade(config *PersistenceConfig) *PersistenceServiceFacade {
	facade := &PersistenceServiceFacade{
		Memory: NewMemoryService(),
	}

	if config == nil {
		return facade
	}

	if config.Redis != nil {
		facade.Redis = NewRedisPersistenceService(config.Redis)
	}

	if config.Json != nil {
		facade.Json = &JsonPersistenceService{Directory: config.Json.Directory}
	}

	return facade
}

// Get returns the configured persistence service, redis first, then json and memory.
func (facade *PersistenceServiceFacade) Get() PersistenceService {
	if facade.Redis != nil {
		return facade.Redis
	}

	if facade.Json != nil {
		return facade.Json
	}

	if facade.Memory != nil {
		return facade.Memory
	}

	log.Warn("no persistence service is configured, falling back to memory")
	facade.Memory = NewMemoryService()
	return facade.Memory
}
