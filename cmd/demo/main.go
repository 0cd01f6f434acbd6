// Command demo walks through the ride-sharing object model: pricing rides of
// each variant, attaching them to a driver and a rider, iterating over a mixed
// collection, and trapping the construction errors the entities raise.
//
// It exits with status 1 if an error other than the expected ones escapes.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"ridesharing/internal/config"
	"ridesharing/internal/domain/entities"
)

const separator = "------------------------"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	table, err := cfg.FareTable()
	if err != nil {
		log.Fatalf("Invalid pricing configuration: %v", err)
	}

	if err := run(os.Stdout, table); err != nil {
		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		os.Exit(1)
	}
}

// run executes every scenario in order and stops at the first unexpected error.
//
// Go Learning Note — Accepting io.Writer:
// Writing to an io.Writer instead of calling fmt.Println directly lets main
// pass os.Stdout while tests pass a *bytes.Buffer and inspect the output.
func run(w io.Writer, table entities.FareTable) error {
	fmt.Fprintln(w, "=== Testing Common Scenarios ===")
	fmt.Fprintln(w)

	scenarios := []struct {
		title string
		fn    func(io.Writer, entities.FareTable) error
	}{
		{"Test 1: Basic Ride Creation", basicRideCreation},
		{"Test 2: Driver with Multiple Rides", driverWithMultipleRides},
		{"Test 3: Rider with Ride History", riderWithRideHistory},
		{"Test 4: Polymorphism Demonstration", mixedRideCollection},
		{"Test 5: Error Handling", errorHandling},
	}
	for _, s := range scenarios {
		fmt.Fprintln(w, s.title)
		fmt.Fprintln(w, separator)
		if err := s.fn(w, table); err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func basicRideCreation(w io.Writer, table entities.FareTable) error {
	standard, err := entities.NewRideWithTable(table, 1, "Home", "Work", 5.0, entities.RideVariantStandard)
	if err != nil {
		return err
	}
	premium, err := entities.NewRideWithTable(table, 2, "Home", "Airport", 15.0, entities.RideVariantPremium)
	if err != nil {
		return err
	}

	standard.CalculateFare()
	premium.CalculateFare()

	fmt.Fprintln(w, "Standard Ride (5 miles):")
	fmt.Fprint(w, standard.Describe())
	fmt.Fprintln(w, "Premium Ride (15 miles):")
	fmt.Fprint(w, premium.Describe())
	return nil
}

func driverWithMultipleRides(w io.Writer, table entities.FareTable) error {
	driver, err := entities.NewDriver(101, "John Doe", 4.8)
	if err != nil {
		return err
	}

	rides, err := newRides(table,
		rideSpec{3, "Downtown", "Mall", 3.0, entities.RideVariantStandard},
		rideSpec{4, "Mall", "Airport", 12.0, entities.RideVariantPremium},
	)
	if err != nil {
		return err
	}
	for _, ride := range rides {
		ride.CalculateFare()
		if err := driver.AddRide(ride); err != nil {
			return err
		}
	}

	fmt.Fprint(w, driver.Info())
	return nil
}

func riderWithRideHistory(w io.Writer, table entities.FareTable) error {
	rider := entities.NewRider(201, "Alice")

	rides, err := newRides(table,
		rideSpec{5, "Home", "Gym", 2.0, entities.RideVariantStandard},
		rideSpec{6, "Gym", "Restaurant", 4.0, entities.RideVariantPremium},
	)
	if err != nil {
		return err
	}
	for _, ride := range rides {
		ride.CalculateFare()
		if err := rider.RequestRide(ride); err != nil {
			return err
		}
	}

	fmt.Fprint(w, rider.ViewRides())
	return nil
}

// mixedRideCollection prices two rides of equal distance through the same
// loop; only the variant decides the fare.
func mixedRideCollection(w io.Writer, table entities.FareTable) error {
	rides, err := newRides(table,
		rideSpec{7, "Point A", "Point B", 8.0, entities.RideVariantStandard},
		rideSpec{8, "Point C", "Point D", 8.0, entities.RideVariantPremium},
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Same distance (8 miles), different ride types:")
	for _, ride := range rides {
		ride.CalculateFare()
		fmt.Fprint(w, ride.Describe())
	}
	return nil
}

// errorHandling constructs entities that must be rejected. An invalid-argument
// error is reported and swallowed; anything else, including a construction
// that unexpectedly succeeds, is returned.
func errorHandling(w io.Writer, table entities.FareTable) error {
	_, err := entities.NewDriver(102, "Invalid", 6.0)
	if err := expectInvalidArgument(w, err); err != nil {
		return err
	}

	_, err = entities.NewRideWithTable(table, 9, "Start", "End", -5.0, entities.RideVariantStandard)
	return expectInvalidArgument(w, err)
}

func expectInvalidArgument(w io.Writer, err error) error {
	if err == nil {
		return errors.New("expected an invalid-argument error, got none")
	}
	if !errors.Is(err, entities.ErrInvalidArgument) {
		return err
	}
	fmt.Fprintf(w, "Caught expected error: %v\n", err)
	return nil
}

type rideSpec struct {
	id       int
	pickup   string
	dropoff  string
	distance float64
	variant  entities.RideVariant
}

func newRides(table entities.FareTable, specs ...rideSpec) ([]*entities.Ride, error) {
	rides := make([]*entities.Ride, 0, len(specs))
	for _, s := range specs {
		ride, err := entities.NewRideWithTable(table, s.id, s.pickup, s.dropoff, s.distance, s.variant)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, nil
}
