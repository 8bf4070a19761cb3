package oven

import (
	"errors"
	"reflect"
	"testing"
)

// ---- Test doubles ----

// call records one hardware interaction in the order it happened.
type call struct {
	name     string
	settings HeatingSettings
}

type recorder struct {
	calls []call
}

func (r *recorder) names() []string {
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.name)
	}
	return out
}

type fakeFan struct{ rec *recorder }

func (f *fakeFan) On()  { f.rec.calls = append(f.rec.calls, call{name: "fan.on"}) }
func (f *fakeFan) Off() { f.rec.calls = append(f.rec.calls, call{name: "fan.off"}) }

// fakeHeating fails the n-th heating call (1-based) when failOn > 0.
type fakeHeating struct {
	rec    *recorder
	failOn int
	n      int
}

func (h *fakeHeating) do(name string, s HeatingSettings, op HeatType) error {
	h.rec.calls = append(h.rec.calls, call{name: name, settings: s})
	h.n++
	if h.failOn > 0 && h.n == h.failOn {
		return &HeatingError{Op: op, Settings: s, Reason: "element open circuit"}
	}
	return nil
}

func (h *fakeHeating) Heater(s HeatingSettings) error { return h.do("heater", s, Heater) }
func (h *fakeHeating) Grill(s HeatingSettings) error  { return h.do("grill", s, Grill) }
func (h *fakeHeating) TermalCircuit(s HeatingSettings) error {
	return h.do("termalCircuit", s, ThermoCirculation)
}

func newTestOven(failOn int) (*Oven, *recorder) {
	rec := &recorder{}
	return New(&fakeHeating{rec: rec, failOn: failOn}, &fakeFan{rec: rec}), rec
}

func singleStage(heat HeatType, temp, minutes int) BakingProgram {
	stage := NewProgramStage().
		WithTargetTemp(temp).
		WithStageTime(minutes).
		WithHeat(heat).
		Build()
	return NewBakingProgram().
		WithInitialTemp(0).
		WithStages([]ProgramStage{stage}).
		Build()
}

// ---- Tests ----

func TestStart_SingleStageDispatch(t *testing.T) {
	cases := []struct {
		name string
		heat HeatType
		want string
	}{
		{name: "grill", heat: Grill, want: "grill"},
		{name: "heater", heat: Heater, want: "heater"},
		{name: "thermo circulation", heat: ThermoCirculation, want: "termalCircuit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, rec := newTestOven(0)
			if err := o.Start(singleStage(tc.heat, 220, 90)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			wantNames := []string{"fan.on", tc.want, "fan.off"}
			if !reflect.DeepEqual(rec.names(), wantNames) {
				t.Fatalf("calls=%v, want %v", rec.names(), wantNames)
			}
			want := NewHeatingSettings().WithTargetTemp(220).WithTimeInMinutes(90).Build()
			if rec.calls[1].settings != want {
				t.Fatalf("settings=%+v, want %+v", rec.calls[1].settings, want)
			}
		})
	}
}

func TestStart_TwoStagesRunInOrderBracketedByFan(t *testing.T) {
	o, rec := newTestOven(0)
	program := NewBakingProgram().
		WithInitialTemp(20).
		AddStage(ProgramStage{TargetTemp: 180, StageTime: 60, Heat: Heater}).
		AddStage(ProgramStage{TargetTemp: 220, StageTime: 120, Heat: ThermoCirculation}).
		Build()

	if err := o.Start(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []call{
		{name: "fan.on"},
		{name: "heater", settings: HeatingSettings{TargetTemp: 180, TimeInMinutes: 60}},
		{name: "termalCircuit", settings: HeatingSettings{TargetTemp: 220, TimeInMinutes: 120}},
		{name: "fan.off"},
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls=%+v, want %+v", rec.calls, want)
	}
}

func TestStart_InitialTempIsNotUsedForStages(t *testing.T) {
	o, rec := newTestOven(0)
	program := NewProgram(150, ProgramStage{TargetTemp: 90, StageTime: 5, Heat: Grill})
	if err := o.Start(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.calls[1].settings.TargetTemp; got != 90 {
		t.Fatalf("expected stage temperature 90, got %d", got)
	}
}

func TestStart_ManyStagesOneCallEach(t *testing.T) {
	heats := []HeatType{Grill, Heater, ThermoCirculation, Heater, Grill, ThermoCirculation, Grill}
	stages := make([]ProgramStage, 0, len(heats))
	for i, h := range heats {
		stages = append(stages, ProgramStage{TargetTemp: 100 + i*10, StageTime: i, Heat: h})
	}
	o, rec := newTestOven(0)
	if err := o.Start(NewProgram(0, stages...)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.calls) != len(stages)+2 {
		t.Fatalf("expected %d calls, got %d", len(stages)+2, len(rec.calls))
	}
	names := map[HeatType]string{Grill: "grill", Heater: "heater", ThermoCirculation: "termalCircuit"}
	for i, st := range stages {
		c := rec.calls[i+1]
		if c.name != names[st.Heat] || c.settings != st.Settings() {
			t.Fatalf("stage %d: got %+v, want %s %+v", i, c, names[st.Heat], st.Settings())
		}
	}
}

func TestStart_HeatingFailureReturnsOvenError(t *testing.T) {
	o, rec := newTestOven(1)
	err := o.Start(singleStage(ThermoCirculation, 220, 90))
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	var ovenErr *OvenError
	if !errors.As(err, &ovenErr) {
		t.Fatalf("expected *OvenError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrOven) || !errors.Is(err, ErrHeating) {
		t.Fatalf("expected error to match ErrOven and ErrHeating: %v", err)
	}
	var heatErr *HeatingError
	if !errors.As(err, &heatErr) || heatErr.Op != ThermoCirculation {
		t.Fatalf("expected wrapped *HeatingError for THERMO_CIRCULATION, got %v", err)
	}
	if ovenErr.Stage != 0 || ovenErr.Heat != ThermoCirculation {
		t.Fatalf("unexpected error location: %+v", ovenErr)
	}
	// fan stays on: no off call on the failure path
	want := []string{"fan.on", "termalCircuit"}
	if !reflect.DeepEqual(rec.names(), want) {
		t.Fatalf("calls=%v, want %v", rec.names(), want)
	}
}

func TestStart_FailureStopsLaterStages(t *testing.T) {
	o, rec := newTestOven(2)
	program := NewProgram(0,
		ProgramStage{TargetTemp: 180, StageTime: 10, Heat: Heater},
		ProgramStage{TargetTemp: 200, StageTime: 20, Heat: Grill},
		ProgramStage{TargetTemp: 220, StageTime: 30, Heat: ThermoCirculation},
	)
	err := o.Start(program)
	var ovenErr *OvenError
	if !errors.As(err, &ovenErr) {
		t.Fatalf("expected *OvenError, got %v", err)
	}
	if ovenErr.Stage != 1 || ovenErr.Heat != Grill {
		t.Fatalf("expected failure at stage 1 (GRILL), got %+v", ovenErr)
	}
	want := []string{"fan.on", "heater", "grill"}
	if !reflect.DeepEqual(rec.names(), want) {
		t.Fatalf("calls=%v, want %v", rec.names(), want)
	}
}

func TestStart_ReusableAcrossRuns(t *testing.T) {
	o, rec := newTestOven(0)
	for i := 0; i < 3; i++ {
		if err := o.Start(singleStage(Heater, 200, 15)); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if len(rec.calls) != 9 {
		t.Fatalf("expected 9 calls over 3 runs, got %d", len(rec.calls))
	}
}

func TestStart_InvalidProgramTouchesNoHardware(t *testing.T) {
	cases := []struct {
		name    string
		program BakingProgram
		wantErr error
	}{
		{name: "no stages", program: NewProgram(0), wantErr: ErrEmptyProgram},
		{name: "unknown heat", program: NewProgram(0, ProgramStage{TargetTemp: 1, StageTime: 1, Heat: HeatType(9)}), wantErr: ErrUnknownHeatType},
		{name: "negative temp", program: NewProgram(0, ProgramStage{TargetTemp: -5, StageTime: 1, Heat: Grill}), wantErr: ErrInvalidStage},
		{name: "negative time", program: NewProgram(0, ProgramStage{TargetTemp: 5, StageTime: -1, Heat: Grill}), wantErr: ErrInvalidStage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, rec := newTestOven(0)
			err := o.Start(tc.program)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if errors.Is(err, ErrOven) {
				t.Fatalf("validation error must not be an OvenError: %v", err)
			}
			if len(rec.calls) != 0 {
				t.Fatalf("expected no hardware calls, got %v", rec.names())
			}
		})
	}
}
