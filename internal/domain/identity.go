package domain

import (
	"regexp"
	"strings"
)

// KeyKind is the classification of a free-text identity key.
type KeyKind string

const (
	KindInvalid KeyKind = "invalid"
	KindPhone   KeyKind = "phone"
	KindPlate   KeyKind = "plate"
)

// An Israeli mobile/landline number: leading zero, 9-10 digits total.
// A vehicle plate: 6-8 digits. The patterns are mutually exclusive
// (a plate never starts the 9+ digit run a phone requires).
var (
	phonePattern = regexp.MustCompile(`^0\d{8,9}$`)
	platePattern = regexp.MustCompile(`^\d{6,8}$`)
)

// ClassifyKey classifies a trimmed free-text key as a phone number,
// a vehicle plate, or invalid. Pure, no side effects.
func ClassifyKey(s string) KeyKind {
	s = strings.TrimSpace(s)
	switch {
	case phonePattern.MatchString(s):
		return KindPhone
	case platePattern.MatchString(s):
		return KindPlate
	default:
		return KindInvalid
	}
}
