// Package v1alpha1 handles the mechanics grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
	"github.com/KirkDiggler/rpg-mechanics/internal/orchestrators/mechanics"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	MechanicsService mechanics.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.MechanicsService == nil {
		return errors.InvalidArgument("mechanics service is required")
	}
	return nil
}

// Handler implements MechanicsServiceServer on top of the mechanics orchestrator
type Handler struct {
	service mechanics.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.MechanicsService,
	}, nil
}

// serve decodes the request into I, runs call and encodes O as the response
func serve[I, O any](
	ctx context.Context,
	req *structpb.Struct,
	call func(context.Context, *I) (*O, error),
) (*structpb.Struct, error) {
	input := new(I)
	if err := FromStruct(req, input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := call(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := ToStruct(output)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// CalculatePower costs a power from its creator configuration or saved parts
func (h *Handler) CalculatePower(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.CalculatePower)
}

// CalculateTechnique costs a technique from its creator configuration or saved parts
func (h *Handler) CalculateTechnique(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.CalculateTechnique)
}

// CalculateItem totals an item and resolves its rarity
func (h *Handler) CalculateItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.CalculateItem)
}

// ResolveRarity maps item totals to a rarity tier
func (h *Handler) ResolveRarity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.ResolveRarity)
}

// RollDamage rolls configured damage dice
func (h *Handler) RollDamage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.RollDamage)
}

// SaveBuild creates or replaces a saved build
func (h *Handler) SaveBuild(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.SaveBuild)
}

// GetBuild returns a saved build
func (h *Handler) GetBuild(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.GetBuild)
}

// ListBuilds lists an owner's builds
func (h *Handler) ListBuilds(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.ListBuilds)
}

// DeleteBuild removes a saved build
func (h *Handler) DeleteBuild(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, h.service.DeleteBuild)
}

var _ MechanicsServiceServer = (*Handler)(nil)
