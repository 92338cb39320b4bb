package pipeline

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/colinrgodsey/wave-daemon/command"
	"github.com/colinrgodsey/wave-daemon/config"
	"github.com/colinrgodsey/wave-daemon/field"
	"github.com/colinrgodsey/wave-daemon/io"
	"github.com/colinrgodsey/wave-daemon/physics"
)

const testTimeout = 10 * time.Second

func expect(t *testing.T, rc <-chan io.Any, prefix string) string {
	t.Helper()
	timer := time.After(testTimeout)
	for {
		select {
		case <-timer:
			t.Fatalf("timed out waiting for %q", prefix)
		case msg, ok := <-rc:
			if !ok {
				t.Fatalf("closed while waiting for %q", prefix)
			}
			if str, ok := msg.(string); ok && strings.HasPrefix(str, prefix) {
				return str
			}
		}
	}
}

// expectAll waits for a line with each prefix, in any order.
func expectAll(t *testing.T, rc <-chan io.Any, prefixes ...string) {
	t.Helper()
	pending := map[string]bool{}
	for _, p := range prefixes {
		pending[p] = true
	}
	timer := time.After(testTimeout)
	for len(pending) > 0 {
		select {
		case <-timer:
			t.Fatalf("timed out waiting for %v", pending)
		case msg := <-rc:
			str, _ := msg.(string)
			for p := range pending {
				if strings.HasPrefix(str, p) {
					delete(pending, p)
				}
			}
		}
	}
}

func receive(t *testing.T, rc <-chan io.Any) io.Any {
	t.Helper()
	select {
	case msg := <-rc:
		return msg
	case <-time.After(testTimeout):
		t.Fatal("timed out")
	}
	return nil
}

func testSnapshot(t *testing.T) config.Snapshot {
	conf := config.Default()
	conf.Samples = 21
	snap, err := conf.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	return snap
}

func TestSourceHandler(t *testing.T) {
	head := io.NewConn(8, 8)
	tail := io.NewConn(8, 8)
	go SourceHandler(head.Flip(), tail.Flip())

	head.Write("set modes=1,2")
	head.Write("; nothing to see")
	head.Write("warp")
	head.Write("N5 pause")

	if c := receive(t, tail.Rc()).(command.Command); !c.Is(command.Set) {
		t.Fatalf("Expected set, got %v", c)
	}
	if c := receive(t, tail.Rc()).(command.Command); !c.Is(command.Pause) || c.Num != 5 {
		t.Fatalf("Expected pause, got %v", c)
	}

	exp := []string{"ok", "error:", "ok N5"}
	for _, e := range exp {
		if str := receive(t, head.Rc()).(string); !strings.HasPrefix(str, e) {
			t.Fatalf("Expected %q, got %q", e, str)
		}
	}

	// upstream messages pass through
	tail.Write("info:device")
	if str := receive(t, head.Rc()).(string); str != "info:device" {
		t.Fatalf("Upstream message lost: %v", str)
	}

	head.Close()
	if _, ok := <-tail.Rc(); ok {
		t.Fatalf("Tail should close with head")
	}
}

func TestParamHandler(t *testing.T) {
	head := io.NewConn(8, 8)
	tail := io.NewConn(8, 8)
	go ParamHandler(config.Default())(head.Flip(), tail.Flip())

	if s := receive(t, tail.Rc()).(config.Snapshot); s.Length != config.DefaultCavityLength {
		t.Fatalf("Bad initial snapshot %+v", s)
	}

	set, _ := command.Parse("set cavity-length=400 boundary=open-closed")
	head.Write(set)
	s := receive(t, tail.Rc()).(config.Snapshot)
	if s.Length != 400 || s.Boundary != physics.OpenClosed {
		t.Fatalf("Set not applied %+v", s)
	}
	expect(t, head.Rc(), "info:set")

	// invalid sets keep the last snapshot
	bad, _ := command.Parse("set cavity-length=400 modes=0")
	head.Write(bad)
	expect(t, head.Rc(), "error:")

	head.Write(command.New(command.Energy))
	if c := receive(t, tail.Rc()).(command.Command); !c.Is(command.Energy) {
		t.Fatalf("Expected energy to pass through, got %v", c)
	}

	set, _ = command.Parse("set amplitude=2")
	head.Write(set)
	s = receive(t, tail.Rc()).(config.Snapshot)
	if s.Amplitude != 2 || s.Length != 400 || s.Modes[0] != 1 {
		t.Fatalf("Previous values lost %+v", s)
	}
}

func TestClockHandler(t *testing.T) {
	head := io.NewConn(8, 8)
	tail := io.NewConn(8, 8)
	go ClockHandler(head.Flip(), tail.Flip())

	head.Write(command.New(command.Pause))
	expect(t, head.Rc(), "info:paused")

	snap := testSnapshot(t)
	snap.TimeStep = 4
	head.Write(snap)
	if _, ok := receive(t, tail.Rc()).(config.Snapshot); !ok {
		t.Fatalf("Snapshot should pass through")
	}

	head.Write(command.New(command.Step, "n=2"))
	first := receive(t, tail.Rc()).(Tick)
	second := receive(t, tail.Rc()).(Tick)
	if first.Seq != 1 || second.Seq != 2 {
		t.Fatalf("Bad sequence %v %v", first.Seq, second.Seq)
	}
	if second.Elapsed != 8 || math.Abs(second.Phase-(8-2*math.Pi)) > 1e-12 {
		t.Fatalf("Phase should wrap: %+v", second)
	}

	head.Write(command.New(command.Resume))
	expect(t, head.Rc(), "info:resumed")
	if tick := receive(t, tail.Rc()).(Tick); tick.Seq != 3 {
		t.Fatalf("Clock did not resume: %v", tick.Seq)
	}
}

func TestFrameHandler(t *testing.T) {
	head := io.NewConn(8, 8)
	tail := io.NewConn(8, 8)
	go FrameHandler(head.Flip(), tail.Flip())

	snap := testSnapshot(t)
	head.Write(snap)
	head.Write(Tick{Seq: 1, Phase: 0, Elapsed: 0, Snapshot: snap})

	frame := receive(t, tail.Rc()).(Frame)
	if len(frame.Electric) != 21 || len(frame.Magnetic) != 21 {
		t.Fatalf("Bad profile sizes")
	}
	if frame.Electric[0].Value != 0 || frame.Electric[20].Value != 0 {
		t.Fatalf("E must have nodes at both walls")
	}
	exp, _ := field.Value(snap.Request(physics.Electric, 0), snap.ObservationPoint)
	if frame.Observation.Value != exp || math.Abs(exp-config.DefaultAmplitude) > 1e-9 {
		t.Fatalf("Bad observation %v", frame.Observation)
	}
	if frame.Resonance.FundamentalWavelength != 1600 {
		t.Fatalf("Bad resonance %+v", frame.Resonance)
	}
	if len(frame.Traveling.Electric) != 21 || len(frame.Traveling.Magnetic) != 21 {
		t.Fatalf("Frame should carry the traveling wave")
	}
	travel, _ := field.SampleTraveling(snap.Traveling(physics.Electric, 0))
	for i, s := range travel {
		if frame.Traveling.Electric[i] != s {
			t.Fatalf("Bad traveling sample %v: %v != %v", i, frame.Traveling.Electric[i], s)
		}
	}

	head.Write(command.New(command.History))
	expect(t, head.Rc(), "info:history")
	report := receive(t, tail.Rc()).(HistoryReport)
	if len(report.Points) != 1 || report.Points[0].Value != exp {
		t.Fatalf("Bad history %+v", report)
	}

	head.Write(command.New(command.History, "traveling=true", "count=3"))
	if report := receive(t, tail.Rc()).(HistoryReport); len(report.Points) != 3 {
		t.Fatalf("Bad traveling history %+v", report)
	}

	head.Write(command.New(command.Spectrum))
	expect(t, head.Rc(), "info:E dominant mode n=1")
	if sr := receive(t, tail.Rc()).(SpectrumReport); len(sr.Modes) != 1 {
		t.Fatalf("Bad spectrum %+v", sr)
	}

	head.Write(command.New(command.Resonance))
	expect(t, head.Rc(), "info:f1 = ")
	expect(t, head.Rc(), "info:h1 = ")

	head.Write(command.New(command.Equations))
	expect(t, head.Rc(), "info:E(x,t) = 2·50·sin(")

	head.Write(command.New(command.Nodes, "n=2"))
	if str := expect(t, head.Rc(), "info:E nodes="); str != "info:E nodes=[0.00 400.00] antinodes=[200.00 600.00]" {
		t.Fatalf("Bad nodes %v", str)
	}

	path := filepath.Join(t.TempDir(), "map.png")
	head.Write(command.New(command.FieldMap, "path="+path, "width=8", "height=4"))
	expect(t, head.Rc(), "info:saved 8x4")

	head.Write(command.New(command.Energy, "peak-e=-1"))
	expect(t, head.Rc(), "error:")
}

func TestEncodeHandler(t *testing.T) {
	head := io.NewConn(8, 8)
	tail := io.NewConn(8, 8)
	go EncodeHandler(head.Flip(), tail.Flip())

	head.Write(Frame{Seq: 7, Electric: field.Profile{{Position: 0, Value: 1}}})
	str := receive(t, tail.Rc()).(string)
	if !strings.HasPrefix(str, FramePrefix) || !strings.Contains(str, `"seq":7`) ||
		!strings.Contains(str, `"E":[{"x":0,"v":1}]`) {
		t.Fatalf("Bad frame line %v", str)
	}

	head.Write(42)
	expect(t, head.Rc(), "warn:")
}

func TestPipeline(t *testing.T) {
	conf := config.Default()
	conf.Samples = 21
	conf.TickMillis = 5

	c := io.NewConn(8, 8)
	tail := New(c, conf).Flip()

	frames := make(chan string, 4)
	go func() {
		for msg := range tail.Rc() {
			if str, ok := msg.(string); ok && strings.HasPrefix(str, FramePrefix) {
				select {
				case frames <- str:
				default:
				}
			}
		}
	}()

	var frame struct {
		Seq uint64        `json:"seq"`
		E   field.Profile `json:"E"`
	}
	select {
	case str := <-frames:
		if err := json.Unmarshal([]byte(strings.TrimPrefix(str, FramePrefix)), &frame); err != nil {
			t.Fatal(err)
		}
	case <-time.After(testTimeout):
		t.Fatal("no frames")
	}
	if len(frame.E) != 21 || frame.E[20].Position != config.DefaultCavityLength {
		t.Fatalf("Bad frame %+v", frame)
	}

	c.Write("N3 resonance")
	expectAll(t, c.Rc(), "ok N3", "info:f1 = 187.37 kHz")

	c.Write("set cavity-length=-5")
	expect(t, c.Rc(), "error:")

	c.Write("nonsense")
	expect(t, c.Rc(), "error:failed parsing command")
}
