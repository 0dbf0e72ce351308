// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/builds"
	buildsmock "github.com/KirkDiggler/rpg-mechanics/internal/repositories/builds/mock"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/rpg-mechanics/internal/repositories/catalog/mock"
)

// ExpectCatalog sets up a single catalog load of kind returning parts
func ExpectCatalog(
	ctx context.Context,
	mockRepo *catalogmock.MockRepository,
	kind mechanics.Kind,
	parts []mechanics.PartDefinition,
) *gomock.Call {
	return mockRepo.EXPECT().
		GetParts(ctx, catalog.GetPartsInput{Kind: kind}).
		Return(&catalog.GetPartsOutput{Parts: parts}, nil)
}

// ExpectBuildGet sets up a mock expectation for getting a build from the repository
func ExpectBuildGet(
	ctx context.Context,
	mockRepo *buildsmock.MockRepository,
	buildID string,
	build *mechanics.Build,
	err error,
) *gomock.Call {
	call := mockRepo.EXPECT().Get(ctx, builds.GetInput{ID: buildID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&builds.GetOutput{Build: build}, nil)
}

// ExpectBuildCreate accepts any create and echoes the stored build back
func ExpectBuildCreate(ctx context.Context, mockRepo *buildsmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input builds.CreateInput) (*builds.CreateOutput, error) {
			return &builds.CreateOutput{Build: input.Build}, nil
		})
}
