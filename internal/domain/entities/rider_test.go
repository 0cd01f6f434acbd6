package entities

import (
	"errors"
	"strings"
	"testing"
)

func TestRider_ViewRides_Empty(t *testing.T) {
	rider := NewRider(201, "Alice")

	expected := "Rider ID: 201\n" +
		"Name: Alice\n" +
		"Requested Rides History:\n" +
		NoRidesMessage + "\n"
	if got := rider.ViewRides(); got != expected {
		t.Errorf("ViewRides() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestRider_RequestRide(t *testing.T) {
	rider := NewRider(201, "Alice")
	ride3, _ := NewRide(5, "Home", "Gym", 2.0, RideVariantStandard)
	ride4, _ := NewRide(6, "Gym", "Restaurant", 4.0, RideVariantPremium)
	ride3.CalculateFare()
	ride4.CalculateFare()

	if err := rider.RequestRide(ride3); err != nil {
		t.Fatalf("RequestRide failed: %v", err)
	}
	if err := rider.RequestRide(ride4); err != nil {
		t.Fatalf("RequestRide failed: %v", err)
	}

	view := rider.ViewRides()
	if strings.Contains(view, NoRidesMessage) {
		t.Error("Did not expect the empty-state message")
	}
	if !strings.HasSuffix(view, ride3.Describe()+ride4.Describe()) {
		t.Errorf("Expected ride descriptions in insertion order, got:\n%s", view)
	}
	if !strings.Contains(view, "Fare: $3.00 (Standard Ride)") || !strings.Contains(view, "Fare: $12.00 (Premium Ride)") {
		t.Errorf("Expected both fares in view, got:\n%s", view)
	}
}

func TestRider_RequestRide_Nil(t *testing.T) {
	rider := NewRider(201, "Alice")

	err := rider.RequestRide(nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
	if rider.RideCount() != 0 {
		t.Errorf("Expected ride count to stay 0, got %d", rider.RideCount())
	}
	if !strings.Contains(rider.ViewRides(), NoRidesMessage) {
		t.Error("Expected empty-state message after rejected request")
	}
}
