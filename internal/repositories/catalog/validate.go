package catalog

import (
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
)

func validateKind(kind mechanics.Kind) error {
	if !kind.IsValid() {
		return errors.InvalidArgumentf("unknown catalog kind %q", kind)
	}
	return nil
}

// prepareParts validates definitions and stamps them with the catalog kind. Ids and names must
// both be unique within a catalog.
func prepareParts(kind mechanics.Kind, parts []mechanics.PartDefinition) ([]mechanics.PartDefinition, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	seenIDs := make(map[int]bool, len(parts))
	seenNames := make(map[string]bool, len(parts))
	out := make([]mechanics.PartDefinition, len(parts))
	for i, p := range parts {
		if err := p.Validate(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid part definition")
		}
		if seenIDs[p.ID] {
			return nil, errors.InvalidArgumentf("duplicate part id %d in %s catalog", p.ID, kind)
		}
		if seenNames[p.Name] {
			return nil, errors.InvalidArgumentf("duplicate part name %q in %s catalog", p.Name, kind)
		}
		seenIDs[p.ID] = true
		seenNames[p.Name] = true

		p.Kind = kind
		out[i] = p
	}
	return out, nil
}

func cloneParts(parts []mechanics.PartDefinition) []mechanics.PartDefinition {
	out := make([]mechanics.PartDefinition, len(parts))
	for i, p := range parts {
		p.Options = append([]mechanics.Option(nil), p.Options...)
		out[i] = p
	}
	return out
}
