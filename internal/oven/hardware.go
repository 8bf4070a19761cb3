package oven

// HeatingModule drives the three heating mechanisms. Each call is synchronous;
// a failure should be reported as *HeatingError.
type HeatingModule interface {
	Heater(s HeatingSettings) error
	Grill(s HeatingSettings) error
	TermalCircuit(s HeatingSettings) error
}

// Fan controls the circulation fan. It is assumed not to fail.
type Fan interface {
	On()
	Off()
}
