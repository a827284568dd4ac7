package translate

import (
	"github.com/cualquiercosa327/ccc/ast"
	"github.com/cualquiercosa327/ccc/stabs"
)

// DetectBitfield implements component C (spec §4.C): decide whether a
// struct/union field should be modeled as a bitfield by comparing its
// declared size against the size of its resolved underlying type.
func DetectBitfield(field *stabs.Field, types map[stabs.TypeNumber]*stabs.StabsType) (bool, error) {
	if field.IsStatic {
		return false, nil
	}

	resolved := resolveUnderlyingType(field.Type, types)
	if resolved == nil {
		return false, nil
	}

	underlyingBits, ok := underlyingSizeBits(resolved)
	if !ok {
		return false, nil
	}

	return field.SizeBits != underlyingBits, nil
}

// resolveUnderlyingType chases type-number references, TypeReference,
// ConstQualifier and VolatileQualifier nodes up to maxReferenceHops times to
// break cycles. An anonymous reference, a missing map entry, or a
// self-referential map entry (a node whose lookup yields itself) aborts the
// chase and returns nil.
func resolveUnderlyingType(t *stabs.StabsType, types map[stabs.TypeNumber]*stabs.StabsType) *stabs.StabsType {
	current := t
	for hop := 0; hop < maxReferenceHops; hop++ {
		if current == nil {
			return nil
		}

		if !current.HasBody {
			if current.Anonymous {
				return nil
			}
			next, ok := types[current.Number]
			if !ok || next == current {
				return nil
			}
			current = next
			continue
		}

		switch current.Descriptor {
		case stabs.TypeReference:
			if current.Reference == nil || current.Reference == current {
				return nil
			}
			current = current.Reference
		case stabs.ConstQualifier, stabs.VolatileQualifier:
			if current.Inner == nil {
				return nil
			}
			current = current.Inner
		default:
			return current
		}
	}
	return nil
}

// underlyingSizeBits computes a resolved type's size in bits per the table
// in spec §4.C step 3.
func underlyingSizeBits(t *stabs.StabsType) (int64, bool) {
	switch t.Descriptor {
	case stabs.Range:
		class, err := ClassifyRange(t.Low, t.High)
		if err != nil {
			return 0, false
		}
		return int64(ast.BuiltInClassSize(class)) * 8, true
	case stabs.CrossReference:
		if t.CrossReferenceKind == stabs.CrossReferenceEnum {
			return 32, true
		}
		return 0, false
	case stabs.TypeAttribute:
		return t.AttributeSizeBits, true
	case stabs.Builtin:
		return 8, true
	default:
		return 0, false
	}
}
