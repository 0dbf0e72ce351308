package catalog

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
)

type inMemoryStore struct {
	mu       sync.RWMutex
	catalogs map[mechanics.Kind][]mechanics.PartDefinition
}

// NewInMemory creates a Store seeded with the given catalogs. Reads return copies.
func NewInMemory(seed map[mechanics.Kind][]mechanics.PartDefinition) (Store, error) {
	s := &inMemoryStore{catalogs: make(map[mechanics.Kind][]mechanics.PartDefinition)}
	for kind, parts := range seed {
		prepared, err := prepareParts(kind, parts)
		if err != nil {
			return nil, err
		}
		s.catalogs[kind] = prepared
	}
	return s, nil
}

func (s *inMemoryStore) GetParts(_ context.Context, input GetPartsInput) (*GetPartsOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	parts, ok := s.catalogs[input.Kind]
	if !ok {
		return nil, errors.NotFoundf("%s catalog not loaded", input.Kind)
	}
	return &GetPartsOutput{Parts: cloneParts(parts)}, nil
}

func (s *inMemoryStore) PutParts(_ context.Context, input PutPartsInput) (*PutPartsOutput, error) {
	prepared, err := prepareParts(input.Kind, input.Parts)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalogs[input.Kind] = prepared
	return &PutPartsOutput{Count: len(prepared)}, nil
}
