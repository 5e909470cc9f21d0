package stage

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// EntityType identifies the kind of supply source behind a collection
// assignment line.
type EntityType int

const (
	// EntityUnknown represents an invalid or undefined entity type.
	EntityUnknown EntityType = iota

	// EntityFarmer is a registered farmer supplying produce directly.
	EntityFarmer

	// EntitySupplier is a wholesale supplier.
	EntitySupplier

	// EntityThirdParty is an ad-hoc external source.
	EntityThirdParty
)

func getEntityTypeStrings() map[EntityType]string {
	return map[EntityType]string{
		EntityUnknown:    "unknown",
		EntityFarmer:     "farmer",
		EntitySupplier:   "supplier",
		EntityThirdParty: "thirdParty",
	}
}

// ParseEntityType converts the store's string form to an EntityType.
// Unrecognized input maps to EntityUnknown; callers render such lines
// with an "Unknown" label rather than dropping them.
func ParseEntityType(raw string) EntityType {
	switch raw {
	case "farmer":
		return EntityFarmer
	case "supplier":
		return EntitySupplier
	case "thirdParty", "third-party", "third_party":
		return EntityThirdParty
	default:
		return EntityUnknown
	}
}

// Validate checks the EntityType is one of the defined supply sources.
func (t EntityType) Validate() error {
	if t != EntityFarmer && t != EntitySupplier && t != EntityThirdParty {
		return errs.NewValueIsInvalidErrorWithCause("entity type",
			fmt.Errorf("%d is not a valid entity type", t))
	}
	return nil
}

// String returns the store's wire form of the entity type.
func (t EntityType) String() string {
	if str, ok := getEntityTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
