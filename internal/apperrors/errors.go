package apperrors

import "errors"

// ErrNotFound indicates that a requested resource (a currency, an exchange rate)
// could not be found. Expected and non-fatal: conversion degrades to a fallback.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidRate indicates a stored exchange rate that is zero, negative or
// non-finite. Conversion callers treat it the same as ErrNotFound; it is kept
// distinct so degraded lookups can be logged with their cause.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrMalformedRecord indicates a stored record with unusable data (e.g. an
// unparsable budget period date). Isolated to that record; batch processing of
// siblings continues.
var ErrMalformedRecord = errors.New("malformed record")

// ErrUnavailable indicates the external store could not be reached or the query
// failed. Unlike ErrNotFound this propagates to the caller.
var ErrUnavailable = errors.New("store unavailable")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
