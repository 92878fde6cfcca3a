package diet

import (
	"fmt"

	"dietboard/internal/pkg/errs"
)

// Base is the prescribed food consistency category. It is a value object
// validated against the hospital's fixed catalog.
type Base int

const (
	// BaseUnknown represents an invalid or undefined diet base.
	// This value (0) helps catch uninitialized Base values.
	BaseUnknown Base = iota

	// Free places no restriction on food consistency.
	Free

	// Soft is food of soft consistency, easy to chew.
	Soft

	// Pureed is food processed to a smooth, pureed consistency.
	Pureed

	// FullLiquid restricts the diet to liquids only.
	FullLiquid
)

// Modifier is an optional therapeutic adjustment applied on top of a diet
// base. ModifierNone is a valid value meaning no adjustment.
type Modifier int

const (
	// ModifierUnknown represents an invalid or undefined modifier.
	ModifierUnknown Modifier = iota

	// ModifierNone means the base diet applies without adjustment.
	ModifierNone

	// LowSodium restricts sodium intake.
	LowSodium

	// Diabetic1800 is a diabetic diet capped at 1800 kcal per day.
	Diabetic1800
)

func getBaseStrings() map[Base]string {
	return map[Base]string{
		BaseUnknown: "Unknown",
		Free:        "Free",
		Soft:        "Soft",
		Pureed:      "Pureed",
		FullLiquid:  "Full-Liquid",
	}
}

func getValidBaseStrings() map[Base]string {
	//nolint:exhaustive // BaseUnknown is intentionally excluded as it's invalid
	return map[Base]string{
		Free:       "Free",
		Soft:       "Soft",
		Pureed:     "Pureed",
		FullLiquid: "Full-Liquid",
	}
}

func getModifierStrings() map[Modifier]string {
	return map[Modifier]string{
		ModifierUnknown: "Unknown",
		ModifierNone:    "None",
		LowSodium:       "Low-Sodium",
		Diabetic1800:    "Diabetic-1800kcal",
	}
}

func getValidModifierStrings() map[Modifier]string {
	//nolint:exhaustive // ModifierUnknown is intentionally excluded as it's invalid
	return map[Modifier]string{
		ModifierNone: "None",
		LowSodium:    "Low-Sodium",
		Diabetic1800: "Diabetic-1800kcal",
	}
}

// Validate checks that the Base is one of the catalog values.
// BaseUnknown (0) and out-of-range values are invalid.
func (b Base) Validate() error {
	if _, ok := getValidBaseStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("diet base", fmt.Errorf("%d is not a valid diet base", b))
	}
	return nil
}

// String returns the display name of the diet base, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (b Base) String() string {
	if str, ok := getBaseStrings()[b]; ok {
		return str
	}
	return "Unknown"
}

// BaseFromString parses a diet base from its display name, as stored in the
// database or received over the API.
func BaseFromString(s string) (Base, error) {
	for base, str := range getValidBaseStrings() {
		if str == s {
			return base, nil
		}
	}
	return BaseUnknown, errs.NewValueIsInvalidErrorWithCause("diet base", fmt.Errorf("%q is not a valid diet base", s))
}

// Validate checks that the Modifier is one of the catalog values.
// ModifierUnknown (0) and out-of-range values are invalid; ModifierNone is
// valid.
func (m Modifier) Validate() error {
	if _, ok := getValidModifierStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("diet modifier", fmt.Errorf("%d is not a valid diet modifier", m))
	}
	return nil
}

// String returns the display name of the modifier, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (m Modifier) String() string {
	if str, ok := getModifierStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ModifierFromString parses a modifier from its display name.
func ModifierFromString(s string) (Modifier, error) {
	for modifier, str := range getValidModifierStrings() {
		if str == s {
			return modifier, nil
		}
	}
	return ModifierUnknown, errs.NewValueIsInvalidErrorWithCause("diet modifier", fmt.Errorf("%q is not a valid diet modifier", s))
}

// ComposeLabel builds the display label orders carry: the base name alone
// when no modifier applies, otherwise "base + modifier".
//
// Example:
//
//	diet.ComposeLabel(diet.Soft, diet.LowSodium) // "Soft + Low-Sodium"
//	diet.ComposeLabel(diet.Free, diet.ModifierNone) // "Free"
func ComposeLabel(base Base, modifier Modifier) string {
	if modifier == ModifierNone || modifier == ModifierUnknown {
		return base.String()
	}
	return base.String() + " + " + modifier.String()
}
