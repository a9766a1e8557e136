package services

// ServiceContainer aggregates the application services for wiring.
type ServiceContainer struct {
	PaymentService PaymentService
}
