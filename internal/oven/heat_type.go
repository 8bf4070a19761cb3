package oven

import (
	"fmt"
	"strings"
)

// HeatType selects the heating mechanism a stage uses.
type HeatType uint8

const (
	ThermoCirculation HeatType = iota
	Grill
	Heater

	numHeatTypes
)

var heatTypeNames = [numHeatTypes]string{
	ThermoCirculation: "THERMO_CIRCULATION",
	Grill:             "GRILL",
	Heater:            "HEATER",
}

func _() {
	// An "invalid array index" compiler error here means a heat type was added
	// or removed; update activate in oven.go and heatTypeNames above.
	var x [1]struct{}
	_ = x[numHeatTypes-3]
}

// HeatTypes lists every heat type in declaration order.
func HeatTypes() []HeatType {
	return []HeatType{ThermoCirculation, Grill, Heater}
}

// Valid reports whether h is one of the declared heat types.
func (h HeatType) Valid() bool {
	return h < numHeatTypes
}

func (h HeatType) String() string {
	if !h.Valid() {
		return fmt.Sprintf("HeatType(%d)", uint8(h))
	}
	return heatTypeNames[h]
}

func (h HeatType) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeatType, uint8(h))
	}
	return []byte(h.String()), nil
}

func (h *HeatType) UnmarshalText(text []byte) error {
	parsed, err := ParseHeatType(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHeatType accepts the textual form case-insensitively, ignoring surrounding spaces.
func ParseHeatType(s string) (HeatType, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range heatTypeNames {
		if name == norm {
			return HeatType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeatType, s)
}
