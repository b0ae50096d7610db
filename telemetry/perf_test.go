package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseLights)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseVehicles)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg["lights"]; !ok {
		t.Error("expected lights phase to be tracked")
	}
	if _, ok := stats.PhaseAvg["vehicles"]; !ok {
		t.Error("expected vehicles phase to be tracked")
	}
	if _, ok := stats.PhaseAvg["telemetry"]; ok {
		t.Error("telemetry phase never ran but was reported")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseVehicles)
		time.Sleep(10 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
	if stats.MinTickDuration > stats.AvgTickDuration || stats.AvgTickDuration > stats.MaxTickDuration {
		t.Errorf("expected min <= avg <= max, got %v %v %v",
			stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseLights)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseVehicles)
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	fastPct := stats.PhasePct["lights"]
	slowPct := stats.PhasePct["vehicles"]
	if slowPct <= fastPct {
		t.Errorf("expected vehicles phase (%v%%) > lights phase (%v%%)", slowPct, fastPct)
	}
	if slowPct > 100 {
		t.Errorf("phase percentage %v exceeds 100", slowPct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}
	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with 16ms frame time, got %v", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 250 * time.Microsecond,
		PhasePct:        map[string]float64{"lights": 5, "vehicles": 90, "telemetry": 5},
		TicksPerSecond:  4000,
	}

	row := stats.ToCSV(600, 4)

	if row.WindowEnd != 600 || row.Vehicles != 4 || row.AvgTickUS != 250 {
		t.Errorf("row = %+v", row)
	}
	if row.LightsPct != 5 || row.VehiclesPct != 90 || row.TelemetryPct != 5 {
		t.Errorf("phase columns = %v %v %v", row.LightsPct, row.VehiclesPct, row.TelemetryPct)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseVehicles.String() != "vehicles" {
		t.Errorf("PhaseVehicles = %q", PhaseVehicles.String())
	}
	if Phase(42).String() != "unknown" {
		t.Errorf("Phase(42) = %q", Phase(42).String())
	}
}
