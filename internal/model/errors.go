package model

import "errors"

var (
	// ErrFetchFailure marks a failed network or source call. It is recovered
	// by falling back to default rates or the cache.
	ErrFetchFailure = errors.New("fetch failure")
	// ErrEmptyInput means no usable closing price survived filtering.
	ErrEmptyInput = errors.New("no closing prices in input")
	// ErrInsufficientData means the series is too short for the statistic.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidPrice means a non-positive or non-finite price was met.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrIndexOutOfRange is returned for comparator indices outside the series.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidInput is returned when an index is not an integer.
	ErrInvalidInput = errors.New("invalid input")
)
