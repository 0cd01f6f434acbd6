package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Driver serves rides. Its ride history is append-only.
//
// Go Learning Note — Slices of Pointers:
// rides is a []*Ride, not a []Ride. The driver and any rider that requested
// the same trip hold the *same* Ride, so a fare calculated later is visible to
// both. The garbage collector keeps the Ride alive as long as anyone still
// references it, which is what shared_ptr or reference counting does by hand
// in languages without a GC.
type Driver struct {
	id     int
	name   string
	rating float64
	rides  []*Ride
}

// NewDriver creates a driver. It returns an error wrapping ErrInvalidArgument
// when rating is outside [MinRating, MaxRating].
func NewDriver(id int, name string, rating float64) (*Driver, error) {
	if err := requireInRange("rating", rating, MinRating, MaxRating); err != nil {
		return nil, err
	}
	return &Driver{
		id:     id,
		name:   name,
		rating: rating,
	}, nil
}

// AddRide records a served ride. A nil ride is rejected and the history is
// left unchanged.
func (d *Driver) AddRide(ride *Ride) error {
	if err := requireRide(ride); err != nil {
		return err
	}
	d.rides = append(d.rides, ride)
	return nil
}

// Info reports the driver's id, name, rating and number of completed rides.
func (d *Driver) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Driver ID: %d\n", d.id)
	fmt.Fprintf(&b, "Name: %s\n", d.name)
	fmt.Fprintf(&b, "Rating: %.2f\n", d.rating)
	fmt.Fprintf(&b, "Completed Rides: %d\n", len(d.rides))
	return b.String()
}

func (d *Driver) ID() int { return d.id }
func (d *Driver) Name() string { return d.name }
func (d *Driver) Rating() float64 { return d.rating }
func (d *Driver) RideCount() int { return len(d.rides) }

// Rides returns the served rides in the order they were added.
//
// Go Learning Note — Defensive Copies:
// Returning d.rides directly would let the caller append to or overwrite the
// driver's history, breaking the append-only rule. The returned slice is a
// copy; the *Ride values it holds are still the shared rides.
func (d *Driver) Rides() []*Ride {
	out := make([]*Ride, len(d.rides))
	copy(out, d.rides)
	return out
}

func (d *Driver) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID             int     `json:"id"`
		Name           string  `json:"name"`
		Rating         float64 `json:"rating"`
		CompletedRides int     `json:"completed_rides"`
	}{d.id, d.name, d.rating, len(d.rides)})
}
