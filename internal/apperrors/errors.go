package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrIncompleteSnapshot indicates that a report was requested over a record
// snapshot with a missing collection. The settlement engine fails closed
// instead of silently reporting zeros for data it never received.
var ErrIncompleteSnapshot = errors.New("incomplete record snapshot")

// ErrPartnerCardinality indicates that the partner set did not contain exactly
// two active partners, which every settlement formula assumes.
var ErrPartnerCardinality = errors.New("settlement requires exactly two partners")

// ErrStatusTransition indicates an invoice status update that would move the
// workflow backwards or out of a terminal state.
var ErrStatusTransition = errors.New("invalid invoice status transition")
