package fmctrainer

import "errors"

// Sentinel errors for the fmctrainer package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("fmctrainer: invalid move notation")
	ErrUnknownStage    = errors.New("fmctrainer: unknown stage")

	// State errors
	ErrInvalidState = errors.New("fmctrainer: invalid cube state")
	ErrNotEligible  = errors.New("fmctrainer: state not eligible for stage")

	// Search errors
	ErrExhausted      = errors.New("fmctrainer: search space exhausted within depth limit")
	ErrUnknownRequest = errors.New("fmctrainer: unknown request id")
)
