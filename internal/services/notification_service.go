package services

import (
	"log"

	"ridesharing/internal/domain/entities"
)

// NotificationService announces fleet events. It only writes to the process
// log; there is no push or messaging backend behind it.
type NotificationService struct {
	logger *log.Logger
}

// NewNotificationService logs through the standard logger. Pass a custom
// *log.Logger to NewNotificationServiceWithLogger to capture output in tests.
func NewNotificationService() *NotificationService {
	return &NotificationService{logger: log.Default()}
}

func NewNotificationServiceWithLogger(logger *log.Logger) *NotificationService {
	return &NotificationService{logger: logger}
}

// NotifyFareCalculated records that a ride has been priced.
func (s *NotificationService) NotifyFareCalculated(ride *entities.Ride) {
	s.logger.Printf("[NOTIFICATION] Ride %d: %s from %s to %s priced at $%.2f",
		ride.ID(), ride.Label(), ride.Pickup(), ride.Dropoff(), ride.Fare())
}

// NotifyDriverOfRide tells a driver a ride has been added to their history.
func (s *NotificationService) NotifyDriverOfRide(driver *entities.Driver, ride *entities.Ride) {
	s.logger.Printf("[NOTIFICATION] Driver %d (%s): ride %d added. Completed rides: %d",
		driver.ID(), driver.Name(), ride.ID(), driver.RideCount())
}

// NotifyRiderOfRequest confirms a ride request to the rider.
func (s *NotificationService) NotifyRiderOfRequest(rider *entities.Rider, ride *entities.Ride) {
	s.logger.Printf("[NOTIFICATION] Rider %d (%s): ride %d from %s to %s requested. Fare: $%.2f",
		rider.ID(), rider.Name(), ride.ID(), ride.Pickup(), ride.Dropoff(), ride.Fare())
}
