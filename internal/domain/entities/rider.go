package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NoRidesMessage is what ViewRides reports for a rider with an empty history.
const NoRidesMessage = "No rides requested yet."

type Rider struct {
	id    int
	name  string
	rides []*Ride
}

func NewRider(id int, name string) *Rider {
	return &Rider{
		id:   id,
		name: name,
	}
}

// RequestRide records a requested ride. A nil ride is rejected and the
// history is left unchanged.
func (r *Rider) RequestRide(ride *Ride) error {
	if err := requireRide(ride); err != nil {
		return err
	}
	r.rides = append(r.rides, ride)
	return nil
}

// ViewRides reports the rider's history: each ride's Describe output in the
// order requested, or NoRidesMessage if there are none.
func (r *Rider) ViewRides() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rider ID: %d\n", r.id)
	fmt.Fprintf(&b, "Name: %s\n", r.name)
	b.WriteString("Requested Rides History:\n")

	if len(r.rides) == 0 {
		b.WriteString(NoRidesMessage + "\n")
		return b.String()
	}
	for _, ride := range r.rides {
		b.WriteString(ride.Describe())
	}
	return b.String()
}

func (r *Rider) ID() int { return r.id }
func (r *Rider) Name() string { return r.name }
func (r *Rider) RideCount() int { return len(r.rides) }

func (r *Rider) Rides() []*Ride {
	out := make([]*Ride, len(r.rides))
	copy(out, r.rides)
	return out
}

func (r *Rider) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    int     `json:"id"`
		Name  string  `json:"name"`
		Rides []*Ride `json:"rides"`
	}{r.id, r.name, r.Rides()})
}
