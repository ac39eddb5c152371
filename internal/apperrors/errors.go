package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates that a string could not be parsed as a decimal amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrPrecisionUnderflow indicates that a ratio truncated to zero at the division precision.
var ErrPrecisionUnderflow = errors.New("precision underflow")

// ErrDuplicate indicates that an attempt was made to add an entry that already exists.
var ErrDuplicate = errors.New("resource already exists")
