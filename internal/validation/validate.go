package validation

import (
	"strings"
)

// Validate reports whether text is a genuine value for the given field kind.
// The fragment is trimmed first; empty fragments and unknown kinds are
// rejected. The verdict comes from the first matching rule in the kind's
// rule list, and a fragment matching no rule is rejected. Deterministic and
// side-effect free.
func Validate(kind Kind, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	rules, ok := ruleTable[kind]
	if !ok {
		return false
	}

	for _, r := range rules {
		if r.match(trimmed) {
			return r.verdict == accept
		}
	}
	return false
}

// IsNoise reports whether text is generic extraction noise: a date or
// timestamp, a bare number or rating, or a table-header placeholder.
// These fragments are invalid for every field kind.
func IsNoise(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	return isDateLike(trimmed) || isPureNumeric(trimmed) || isPlaceholder(trimmed)
}

// ParseKind converts a user-supplied kind string to a Kind.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindEligibility:
		return KindEligibility, nil
	case KindReferenceName:
		return KindReferenceName, nil
	case KindReferenceData:
		return KindReferenceData, nil
	default:
		return "", &UnknownKindError{Value: value}
	}
}
