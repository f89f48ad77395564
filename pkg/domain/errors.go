package domain

import "errors"

// Rate pipeline errors
var (
	// ErrTransport is returned when the quote provider cannot be reached or answers with a non-success status
	ErrTransport = errors.New("quote provider transport error")
	// ErrNoListings is returned when the quote provider answered but listed no advertisements
	ErrNoListings = errors.New("no listings available")
	// ErrStoreUnavailable is returned when the rate store cannot be reached
	ErrStoreUnavailable = errors.New("rate store unavailable")
	// ErrStoreWrite is returned when inserting a sample fails
	ErrStoreWrite = errors.New("rate store write failed")
	// ErrSecondaryUnavailable is returned by the reserved secondary provider stage
	ErrSecondaryUnavailable = errors.New("secondary provider unavailable")
	// ErrNoRateAvailable is returned when every rate source failed
	ErrNoRateAvailable = errors.New("no rate available")
	// ErrConversionUnavailable is returned when a conversion cannot obtain a rate
	ErrConversionUnavailable = errors.New("conversion unavailable")
	// ErrInvalidRate is returned when a zero or negative rate reaches the converter
	ErrInvalidRate = errors.New("invalid rate")
	// ErrInvalidInput is returned for non-numeric or out-of-range caller input
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfigIncomplete is returned when required configuration is missing
	ErrConfigIncomplete = errors.New("configuration incomplete")
)

