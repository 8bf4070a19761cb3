// Package oven runs baking programs against injected heating and fan hardware.
//
// A run turns the fan on, activates the heating mechanism of every stage in
// order and turns the fan off once the last stage has finished. A hardware
// failure aborts the run with *OvenError. On that path the fan is left on;
// callers must reset the hardware themselves before the next run.
//
// An Oven holds no state besides its collaborators and is not safe for
// concurrent Start calls.
package oven

import "fmt"

type Oven struct {
	heating HeatingModule
	fan     Fan
}

func New(heating HeatingModule, fan Fan) *Oven {
	return &Oven{heating: heating, fan: fan}
}

// Start executes program synchronously. It returns the validation error for a
// malformed program without touching the hardware, *OvenError when a stage
// fails, and nil when every stage succeeded.
func (o *Oven) Start(program BakingProgram) error {
	if err := program.Validate(); err != nil {
		return err
	}

	o.fan.On()
	for i, stage := range program.stages {
		if err := o.activate(stage.Heat, stage.Settings()); err != nil {
			return &OvenError{Stage: i, Heat: stage.Heat, Cause: err}
		}
	}
	o.fan.Off()
	return nil
}

func (o *Oven) activate(heat HeatType, s HeatingSettings) error {
	switch heat {
	case ThermoCirculation:
		return o.heating.TermalCircuit(s)
	case Grill:
		return o.heating.Grill(s)
	case Heater:
		return o.heating.Heater(s)
	}
	// unreachable after Validate
	return fmt.Errorf("%w: %d", ErrUnknownHeatType, uint8(heat))
}
