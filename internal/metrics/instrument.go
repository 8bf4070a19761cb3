package metrics

import "baking_oven/internal/oven"

type instrumentedHeating struct {
	next oven.HeatingModule
	m    *Metrics
}

// InstrumentHeating counts every activation passing through next.
func InstrumentHeating(next oven.HeatingModule, m *Metrics) oven.HeatingModule {
	return &instrumentedHeating{next: next, m: m}
}

func (h *instrumentedHeating) Heater(s oven.HeatingSettings) error {
	err := h.next.Heater(s)
	h.m.recordStage(oven.Heater, err)
	return err
}

func (h *instrumentedHeating) Grill(s oven.HeatingSettings) error {
	err := h.next.Grill(s)
	h.m.recordStage(oven.Grill, err)
	return err
}

func (h *instrumentedHeating) TermalCircuit(s oven.HeatingSettings) error {
	err := h.next.TermalCircuit(s)
	h.m.recordStage(oven.ThermoCirculation, err)
	return err
}

type instrumentedFan struct {
	next oven.Fan
	m    *Metrics
}

// InstrumentFan mirrors fan switching into the fan_on gauge.
func InstrumentFan(next oven.Fan, m *Metrics) oven.Fan {
	return &instrumentedFan{next: next, m: m}
}

func (f *instrumentedFan) On() {
	f.next.On()
	f.m.SetFan(true)
}

func (f *instrumentedFan) Off() {
	f.next.Off()
	f.m.SetFan(false)
}
