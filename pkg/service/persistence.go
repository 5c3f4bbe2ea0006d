package service

import (
	"errors"
	"time"
)

var ErrPersistenceNotExists = errors.New("persistent data does not exist")

// PersistenceService creates the stores of the cached datasets.
type PersistenceService interface {
	NewStore(id string, subIDs ...string) Store
}

type Store interface {
	Load(val interface{}) error
	Save(val interface{}) error
	Reset() error
}

type Expirable interface {
	Expiration() time.Duration
}

type RedisPersistenceConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      string `yaml:"port" json:"port"`
	Password  string `yaml:"password,omitempty" json:"password,omitempty"`
	DB        int    `yaml:"db" json:"db"`
	Namespace string `yaml:"namespace" json:"namespace"`

	// Expiration of the saved values, 0 keeps them forever.
	Expiration time.Duration `yaml:"expiration,omitempty" json:"expiration,omitempty"`
}

type JsonPersistenceConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}

// PersistenceConfig selects the store of the dataset cache, memory is used when none is set.
type PersistenceConfig struct {
	Redis *RedisPersistenceConfig `yaml:"redis,omitempty" json:"redis,omitempty"`
	Json  *JsonPersistenceConfig  `yaml:"json,omitempty" json:"json,omitempty"`
}
