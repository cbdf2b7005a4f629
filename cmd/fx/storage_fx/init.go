package storage_fx

import (
	"log"

	"go.uber.org/fx"

	"wanderpersona/internal/infra"
)

var Module = fx.Provide(provideObjectStorage)

func provideObjectStorage() infra.ObjectStorage {
	storage, err := infra.NewObjectStorage()
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	return storage
}
