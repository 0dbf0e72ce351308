// Package catalog provides the part catalog providers the engine is fed from. The engine never
// fetches or caches catalogs itself; callers own the provider and its lifetime.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-mechanics/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// Repository provides read access to the part catalogs
type Repository interface {
	// GetParts returns every definition of a catalog kind
	// Returns errors.InvalidArgument for unknown kinds
	// Returns errors.NotFound when the catalog has never been loaded
	// Returns errors.Internal for storage failures
	GetParts(ctx context.Context, input GetPartsInput) (*GetPartsOutput, error)
}

// Store is a Repository that can also replace a catalog
type Store interface {
	Repository

	// PutParts replaces the whole catalog of a kind
	// Returns errors.InvalidArgument for unknown kinds or invalid definitions
	PutParts(ctx context.Context, input PutPartsInput) (*PutPartsOutput, error)
}

// GetPartsInput defines the input for reading a catalog
type GetPartsInput struct {
	Kind mechanics.Kind
}

// GetPartsOutput defines the output for reading a catalog
type GetPartsOutput struct {
	Parts []mechanics.PartDefinition
}

// PutPartsInput defines the input for replacing a catalog
type PutPartsInput struct {
	Kind  mechanics.Kind
	Parts []mechanics.PartDefinition
}

// PutPartsOutput defines the output for replacing a catalog
type PutPartsOutput struct {
	Count int
}
