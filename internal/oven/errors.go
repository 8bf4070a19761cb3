package oven

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyProgram    = errors.New("baking program has no stages")
	ErrUnknownHeatType = errors.New("unknown heat type")
	ErrInvalidStage    = errors.New("invalid program stage")

	// ErrHeating matches any *HeatingError via errors.Is.
	ErrHeating = errors.New("heating failure")
	// ErrOven matches any *OvenError via errors.Is.
	ErrOven = errors.New("oven program failed")
)

// HeatingError is returned by HeatingModule implementations when the
// hardware cannot carry out an activation.
type HeatingError struct {
	Op       HeatType
	Settings HeatingSettings
	Reason   string
	Err      error // optional driver-level cause
}

func (e *HeatingError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("heating %s at %d°C for %d min: %s",
		e.Op, e.Settings.TargetTemp, e.Settings.TimeInMinutes, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *HeatingError) Is(target error) bool { return target == ErrHeating }

func (e *HeatingError) Unwrap() error { return e.Err }

// OvenError is the only error Start reports for a hardware failure. Stage and
// Heat locate the failing stage; the hardware failure itself is the Cause.
type OvenError struct {
	Stage int
	Heat  HeatType
	Cause error
}

func (e *OvenError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("oven: stage %d (%s) failed: %v", e.Stage, e.Heat, e.Cause)
}

func (e *OvenError) Is(target error) bool { return target == ErrOven }

func (e *OvenError) Unwrap() error { return e.Cause }
