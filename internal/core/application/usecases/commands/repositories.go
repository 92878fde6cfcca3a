// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and change notification.
package commands

import (
	"context"

	"dietboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PrescriptionRepoFactory provides access to the prescription
	// repository within a transaction.
	PrescriptionRepoFactory interface {
		PrescriptionRepository() ports.PrescriptionRepository
	}

	// PatientRepoFactory provides access to the patient repository within
	// a transaction.
	PatientRepoFactory interface {
		PatientRepository() ports.PatientRepository
	}

	// OrderUoW manages transactions for order-only operations, such as
	// status transitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning patients, prescriptions, and
	// orders. The prescribe fan-out uses it to read the patient and write
	// the prescription plus its orders atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		PrescriptionRepoFactory
		PatientRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
