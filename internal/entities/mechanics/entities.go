package mechanics

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeBuild is the entity type reported to rpg-toolkit for saved builds
const EntityTypeBuild = "mechanics.build"

// BuildEntity wraps a Build to implement core.Entity
type BuildEntity struct {
	*Build
}

// GetID returns the build's ID
func (b *BuildEntity) GetID() string {
	return b.ID
}

// GetType returns the entity type for rpg-toolkit
func (b *BuildEntity) GetType() string {
	return EntityTypeBuild
}

// WrapBuild converts a Build to a BuildEntity
func WrapBuild(build *Build) *BuildEntity {
	return &BuildEntity{Build: build}
}

var _ core.Entity = (*BuildEntity)(nil)
