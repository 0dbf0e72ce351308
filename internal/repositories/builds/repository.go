// Package builds provides the interface for saved power, technique and item persistence
package builds

//go:generate mockgen -destination=mock/mock_repository.go -package=buildsmock github.com/KirkDiggler/rpg-mechanics/internal/repositories/builds Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// Repository defines the interface for build persistence
type Repository interface {
	// Create stores a new build
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a build with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a build by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing build
	// Returns errors.NotFound if the build doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a build by ID
	// Returns errors.NotFound if the build doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves all builds of an owner, optionally filtered by kind
	// Returns errors.InvalidArgument for empty owner IDs
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a build
type CreateInput struct {
	Build *mechanics.Build
}

// CreateOutput defines the output for creating a build
type CreateOutput struct {
	Build *mechanics.Build
}

// GetInput defines the input for getting a build
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a build
type GetOutput struct {
	Build *mechanics.Build
}

// UpdateInput defines the input for updating a build
type UpdateInput struct {
	Build *mechanics.Build
}

// UpdateOutput defines the output for updating a build
type UpdateOutput struct {
	Build *mechanics.Build
}

// DeleteInput defines the input for deleting a build
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing an owner's builds
type ListByOwnerInput struct {
	OwnerID string
	// Kind filters the result when set
	Kind mechanics.Kind
}

// ListByOwnerOutput defines the output for listing an owner's builds
type ListByOwnerOutput struct {
	Builds []*mechanics.Build
}
