// Package hardware provides in-process oven drivers used when no physical
// hardware is attached. They record what they were asked to do and fail on
// out-of-range settings or injected faults; there is no thermal model.
package hardware

import (
	"sync"
	"time"

	"baking_oven/internal/oven"
)

// ----------- Driver limits -----------
const (
	DefaultMaxTempC = 300 // hottest target the heating elements accept, °C
	MinTempC        = 0
)

// Activation is the last heating call the driver accepted.
type Activation struct {
	Heat     oven.HeatType
	Settings oven.HeatingSettings
	At       time.Time
}

// Status is a point-in-time copy of the panel.
type Status struct {
	FanOn       bool
	Last        *Activation
	Activations int
	Faults      map[oven.HeatType]string
}

// Panel is the shared status board of the simulated drivers. All methods are
// safe for concurrent use; the HTTP layer reads it while a run writes to it.
type Panel struct {
	mu          sync.RWMutex
	fanOn       bool
	last        *Activation
	activations int
	faults      map[oven.HeatType]string
	now         func() time.Time
}

func NewPanel() *Panel {
	return &Panel{
		faults: make(map[oven.HeatType]string),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (p *Panel) setFan(on bool) {
	p.mu.Lock()
	p.fanOn = on
	p.mu.Unlock()
}

func (p *Panel) record(heat oven.HeatType, s oven.HeatingSettings) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = &Activation{Heat: heat, Settings: s, At: p.now()}
	p.activations++
}

func (p *Panel) fault(heat oven.HeatType) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	reason, ok := p.faults[heat]
	return reason, ok
}

// InjectFault makes every following activation of heat fail with reason.
func (p *Panel) InjectFault(heat oven.HeatType, reason string) {
	if reason == "" {
		reason = "injected fault"
	}
	p.mu.Lock()
	p.faults[heat] = reason
	p.mu.Unlock()
}

func (p *Panel) ClearFaults() {
	p.mu.Lock()
	p.faults = make(map[oven.HeatType]string)
	p.mu.Unlock()
}

func (p *Panel) Snapshot() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	st := Status{
		FanOn:       p.fanOn,
		Activations: p.activations,
		Faults:      make(map[oven.HeatType]string, len(p.faults)),
	}
	if p.last != nil {
		cp := *p.last
		st.Last = &cp
	}
	for k, v := range p.faults {
		st.Faults[k] = v
	}
	return st
}
