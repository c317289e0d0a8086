package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not allowed")

// ErrConflict indicates the resource is in a state that prevents the operation.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure that should not leak details to callers.
var ErrInternal = errors.New("internal error")

// ErrInvalidAmount indicates a monetary amount below the allowed minimum or not positive.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates a debit larger than the available balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrBudgetExhausted indicates a challenge whose budget is fully consumed.
var ErrBudgetExhausted = errors.New("challenge budget exhausted")

// ErrInvalidTransition indicates an illegal transaction status change.
// Only PENDING records may move, and only to COMPLETED or FAILED.
var ErrInvalidTransition = errors.New("invalid transaction status transition")
