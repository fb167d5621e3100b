package domain

import "errors"

var (
	ErrPedidoNotFound      = errors.New("pedido not found")
	ErrRevisionNotFound    = errors.New("revision not found")
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrDeliverableNotFound = errors.New("deliverable not found")

	// ErrInvalidTransition covers pedido, revision and installment status
	// changes that are not in the legal table. The store is left untouched.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyExists covers duplicate installment batches and protocolo
	// collisions.
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation covers malformed inputs rejected before any write.
	ErrValidation = errors.New("invalid input")

	// ErrInconsistente is a defensive invariant failure, e.g. a custom split
	// whose amounts do not reconstruct the total.
	ErrInconsistente = errors.New("inconsistent derived state")

	ErrStorageUnavailable = errors.New("storage unavailable")
)
