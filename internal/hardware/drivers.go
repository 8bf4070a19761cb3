package hardware

import (
	"baking_oven/internal/oven"
)

// Fan switches the panel's fan flag.
type Fan struct {
	panel *Panel
}

func NewFan(panel *Panel) *Fan { return &Fan{panel: panel} }

func (f *Fan) On()  { f.panel.setFan(true) }
func (f *Fan) Off() { f.panel.setFan(false) }

// HeatingModule accepts activations whose target lies in [MinTempC, maxTempC]
// and whose duration is non-negative, unless a fault is injected for the heat type.
type HeatingModule struct {
	panel    *Panel
	maxTempC int
}

func NewHeatingModule(panel *Panel, maxTempC int) *HeatingModule {
	if maxTempC <= 0 {
		maxTempC = DefaultMaxTempC
	}
	return &HeatingModule{panel: panel, maxTempC: maxTempC}
}

var (
	_ oven.HeatingModule = (*HeatingModule)(nil)
	_ oven.Fan           = (*Fan)(nil)
)

func (m *HeatingModule) Heater(s oven.HeatingSettings) error {
	return m.activate(oven.Heater, s)
}

func (m *HeatingModule) Grill(s oven.HeatingSettings) error {
	return m.activate(oven.Grill, s)
}

func (m *HeatingModule) TermalCircuit(s oven.HeatingSettings) error {
	return m.activate(oven.ThermoCirculation, s)
}

func (m *HeatingModule) activate(heat oven.HeatType, s oven.HeatingSettings) error {
	if reason, ok := m.panel.fault(heat); ok {
		return &oven.HeatingError{Op: heat, Settings: s, Reason: reason}
	}
	if err := m.checkLimits(heat, s); err != nil {
		return err
	}
	m.panel.record(heat, s)
	return nil
}

// checkLimits rejects settings the elements cannot honour.
func (m *HeatingModule) checkLimits(heat oven.HeatType, s oven.HeatingSettings) error {
	switch {
	case s.TargetTemp > m.maxTempC:
		return &oven.HeatingError{Op: heat, Settings: s, Reason: "target exceeds element limit"}
	case s.TargetTemp < MinTempC:
		return &oven.HeatingError{Op: heat, Settings: s, Reason: "target below minimum"}
	case s.TimeInMinutes < 0:
		return &oven.HeatingError{Op: heat, Settings: s, Reason: "negative duration"}
	}
	return nil
}
