// Package entities defines the core domain models for the ride-sharing system:
// Ride (with its fare-policy variants), Driver and Rider. They live in the
// innermost layer of the architecture and have no dependencies on HTTP,
// configuration, or any other package in this module.
//
// Go Learning Note — Encapsulation with Unexported Fields:
// Go has no "private" keyword. Visibility is decided by the first letter of an
// identifier: lowercase names are visible only inside the package. Every
// entity here keeps its state in lowercase fields and exposes read-only
// accessor methods, so code outside the package cannot, for example, change a
// ride's distance after it has been validated.
package entities

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RideVariant is the fare-policy classification of a ride.
type RideVariant string

const (
	RideVariantStandard RideVariant = "standard"
	RideVariantPremium  RideVariant = "premium"
)

// FarePolicy is the data that distinguishes one variant from another: the
// per-mile rate and the label printed by Describe.
type FarePolicy struct {
	Rate  float64 `json:"rate"`
	Label string  `json:"label"`
}

// FareTable maps each variant to its fare policy.
//
// Go Learning Note — Data Instead of Subclasses:
// Languages with inheritance often model "standard" and "premium" as two
// subclasses that override calculateFare. Go has no inheritance, and here the
// variants differ only by a number and a string, so the idiomatic answer is a
// lookup table. Adding a third tier is a new map entry, not a new type.
type FareTable map[RideVariant]FarePolicy

// DefaultFareTable returns the built-in rates: $1.50/mile for standard rides
// and $3.00/mile for premium rides.
func DefaultFareTable() FareTable {
	return FareTable{
		RideVariantStandard: {Rate: 1.50, Label: "Standard Ride"},
		RideVariantPremium:  {Rate: 3.00, Label: "Premium Ride"},
	}
}

// Policy looks up the fare policy for a variant.
func (t FareTable) Policy(variant RideVariant) (FarePolicy, error) {
	policy, ok := t[variant]
	if !ok {
		return FarePolicy{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	return policy, nil
}

// Validate checks that every variant supplies a usable rate and label.
func (t FareTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("fare table is empty")
	}
	for variant, policy := range t {
		if !(policy.Rate > 0) || math.IsInf(policy.Rate, 1) {
			return fmt.Errorf("fare table: variant %q must have a positive rate", variant)
		}
		if strings.TrimSpace(policy.Label) == "" {
			return fmt.Errorf("fare table: variant %q must have a label", variant)
		}
	}
	return nil
}

// Ride is a single trip record. Fare stays 0 until CalculateFare is called;
// it is never computed implicitly.
type Ride struct {
	id       int
	pickup   string
	dropoff  string
	distance float64
	fare     float64
	variant  RideVariant
	policy   FarePolicy
}

// NewRide creates a ride priced with DefaultFareTable. It returns an error
// wrapping ErrInvalidArgument when distance is not a finite number greater
// than 0, or is so large that its fare would overflow; in that case no ride is
// created.
//
// Go Learning Note — Constructors That Can Fail:
// When construction has preconditions, return (*T, error). The caller must
// handle the error before touching the value, and because we return nil on
// failure there is no half-built entity to misuse.
func NewRide(id int, pickup, dropoff string, distance float64, variant RideVariant) (*Ride, error) {
	return NewRideWithTable(DefaultFareTable(), id, pickup, dropoff, distance, variant)
}

// NewRideWithTable is NewRide with a caller-supplied fare table, typically
// built from configuration.
func NewRideWithTable(table FareTable, id int, pickup, dropoff string, distance float64, variant RideVariant) (*Ride, error) {
	if err := requirePositive("distance", distance); err != nil {
		return nil, err
	}
	policy, err := table.Policy(variant)
	if err != nil {
		return nil, err
	}
	if math.IsInf(distance*policy.Rate, 0) {
		return nil, invalidArgument("distance %g overflows the fare at %g per mile", distance, policy.Rate)
	}
	return &Ride{
		id:       id,
		pickup:   pickup,
		dropoff:  dropoff,
		distance: distance,
		variant:  variant,
		policy:   policy,
	}, nil
}

// CalculateFare sets the fare to distance × the variant's rate.
func (r *Ride) CalculateFare() {
	r.fare = r.distance * r.policy.Rate
}

// Describe renders the ride as line-oriented "key: value" text. Distance uses
// at most six significant digits, so 15 prints as "15" and 1e300 as "1e+300".
//
// Go Learning Note — strings.Builder:
// Building a string with repeated += allocates a new string each time.
// strings.Builder grows a single buffer instead, and fmt.Fprintf can write
// straight into it because *strings.Builder implements io.Writer.
func (r *Ride) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ride ID: %d\n", r.id)
	fmt.Fprintf(&b, "Pickup: %s\n", r.pickup)
	fmt.Fprintf(&b, "Dropoff: %s\n", r.dropoff)
	fmt.Fprintf(&b, "Distance: %s miles\n", strconv.FormatFloat(r.distance, 'g', 6, 64))
	fmt.Fprintf(&b, "Fare: $%.2f (%s)\n", r.fare, r.policy.Label)
	return b.String()
}

func (r *Ride) ID() int { return r.id }
func (r *Ride) Pickup() string { return r.pickup }
func (r *Ride) Dropoff() string { return r.dropoff }
func (r *Ride) Distance() float64 { return r.distance }
func (r *Ride) Fare() float64 { return r.fare }
func (r *Ride) Variant() RideVariant { return r.variant }
func (r *Ride) Label() string { return r.policy.Label }
func (r *Ride) Rate() float64 { return r.policy.Rate }

// rideJSON is the wire shape of a Ride. It exists because encoding/json only
// sees exported fields.
type rideJSON struct {
	ID       int         `json:"id"`
	Pickup   string      `json:"pickup"`
	Dropoff  string      `json:"dropoff"`
	Distance float64     `json:"distance"`
	Fare     float64     `json:"fare"`
	Variant  RideVariant `json:"variant"`
	Label    string      `json:"label"`
}

// MarshalJSON implements json.Marshaler so rides can be returned from the API
// without exporting (and thereby unlocking) their fields.
func (r *Ride) MarshalJSON() ([]byte, error) {
	return json.Marshal(rideJSON{
		ID:       r.id,
		Pickup:   r.pickup,
		Dropoff:  r.dropoff,
		Distance: r.distance,
		Fare:     r.fare,
		Variant:  r.variant,
		Label:    r.policy.Label,
	})
}
