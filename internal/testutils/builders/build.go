// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// BuildBuilder provides a fluent interface for building test Build instances
type BuildBuilder struct {
	build *mechanics.Build
}

// NewBuildBuilder creates a new builder with minimal defaults
func NewBuildBuilder() *BuildBuilder {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &BuildBuilder{
		build: &mechanics.Build{
			ID:        "build-test-123",
			OwnerID:   "owner-test-123",
			Kind:      mechanics.KindPower,
			Name:      "Test Build",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the build ID
func (b *BuildBuilder) WithID(id string) *BuildBuilder {
	b.build.ID = id
	return b
}

// WithOwnerID sets the owner ID
func (b *BuildBuilder) WithOwnerID(ownerID string) *BuildBuilder {
	b.build.OwnerID = ownerID
	return b
}

// WithKind sets the build kind
func (b *BuildBuilder) WithKind(kind mechanics.Kind) *BuildBuilder {
	b.build.Kind = kind
	return b
}

// WithName sets the build name
func (b *BuildBuilder) WithName(name string) *BuildBuilder {
	b.build.Name = name
	return b
}

// WithParts appends part references
func (b *BuildBuilder) WithParts(refs ...mechanics.PartReference) *BuildBuilder {
	b.build.Parts = append(b.build.Parts, refs...)
	return b
}

// WithDamage appends damage rows
func (b *BuildBuilder) WithDamage(damage ...mechanics.DamageConfig) *BuildBuilder {
	b.build.Damage = append(b.build.Damage, damage...)
	return b
}

// WithCost sets the stored cost
func (b *BuildBuilder) WithCost(cost mechanics.CostResult) *BuildBuilder {
	b.build.Cost = cost
	return b
}

// CreatedAt sets both timestamps to t
func (b *BuildBuilder) CreatedAt(t time.Time) *BuildBuilder {
	b.build.CreatedAt = t
	b.build.UpdatedAt = t
	return b
}

// Build returns a copy of the built value
func (b *BuildBuilder) Build() *mechanics.Build {
	out := *b.build
	out.Parts = append([]mechanics.PartReference(nil), b.build.Parts...)
	out.Damage = append([]mechanics.DamageConfig(nil), b.build.Damage...)
	return &out
}
