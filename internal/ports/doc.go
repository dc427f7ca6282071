// Package ports declares the seams of the service. Handlers call TodoService,
// the application layer calls TodoStore, and readiness goes through
// HealthRegistry.
package ports
