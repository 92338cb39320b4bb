package pipeline

import (
	"fmt"

	"github.com/colinrgodsey/wave-daemon/command"
	"github.com/colinrgodsey/wave-daemon/config"
	"github.com/colinrgodsey/wave-daemon/equation"
	"github.com/colinrgodsey/wave-daemon/field"
	"github.com/colinrgodsey/wave-daemon/fieldmap"
	"github.com/colinrgodsey/wave-daemon/io"
	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/colinrgodsey/wave-daemon/readout"
	"github.com/colinrgodsey/wave-daemon/spectrum"
)

const (
	defaultMapWidth  = 400
	defaultMapHeight = 200
)

type frameHandler struct {
	head, tail io.Conn

	snap    *config.Snapshot
	last    Tick
	frame   *Frame
	history *field.History
}

func (h *frameHandler) headRead(msg io.Any) {
	switch msg := msg.(type) {
	case config.Snapshot:
		h.setSnapshot(msg)
		return
	case Tick:
		h.setSnapshot(msg.Snapshot)
		h.last = msg
		if frame, err := h.build(msg); err != nil {
			fail(h.head, err)
		} else {
			h.frame = &frame
			h.history.Push(msg.Elapsed, frame.Observation.Value)
			h.tail.Write(frame)
		}
		return
	case command.Command:
		if h.snap == nil {
			warn(h.head, "no parameters yet, ignoring %v", msg.Verb)
			return
		}
		if err := h.query(msg); err != nil {
			fail(h.head, err)
		}
		return
	}
	h.tail.Write(msg)
}

func (h *frameHandler) setSnapshot(snap config.Snapshot) {
	if h.history == nil || h.history.Cap() != snap.HistorySize {
		h.history = field.NewHistory(snap.HistorySize)
	} else if h.snap != nil && (h.snap.ObservationPoint != snap.ObservationPoint ||
		h.snap.Boundary != snap.Boundary || h.snap.Length != snap.Length) {
		h.history.Reset()
	}
	h.snap = &snap
}

func (h *frameHandler) build(t Tick) (Frame, error) {
	s := t.Snapshot
	e, err := field.SampleParallel(s.Request(physics.Electric, t.Phase))
	if err != nil {
		return Frame{}, err
	}
	b, err := field.SampleParallel(s.Request(physics.Magnetic, t.Phase))
	if err != nil {
		return Frame{}, err
	}
	obs, err := field.Value(s.Request(physics.Electric, t.Phase), s.ObservationPoint)
	if err != nil {
		return Frame{}, err
	}
	nodes, err := physics.NodesFor(s.Boundary, physics.Electric, s.Mode(), s.Length)
	if err != nil {
		return Frame{}, err
	}
	res, err := physics.ComputeResonance(s.Boundary, s.Length, s.Mode(), s.Constants.WaveSpeed)
	if err != nil {
		return Frame{}, err
	}
	energy, err := s.Constants.Energy(s.PeakE)
	if err != nil {
		return Frame{}, err
	}
	te, err := field.SampleTraveling(s.Traveling(physics.Electric, t.Elapsed))
	if err != nil {
		return Frame{}, err
	}
	tb, err := field.SampleTraveling(s.Traveling(physics.Magnetic, t.Elapsed))
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Seq:         t.Seq,
		Phase:       t.Phase,
		Boundary:    s.Boundary,
		Modes:       s.Modes,
		Electric:    e,
		Magnetic:    b,
		Observation: field.Sample{Position: s.ObservationPoint, Value: obs},
		Nodes:       physics.Markers(nodes),
		Resonance:   res,
		Energy:      energy,
		Traveling:   Traveling{Electric: te, Magnetic: tb},
	}, nil
}

func (h *frameHandler) lines(ls []string) {
	for _, l := range ls {
		info(h.head, "%v", l)
	}
}

func fieldArg(args command.Args) (physics.Field, error) {
	if name, ok := args.GetString("field"); ok {
		return physics.ParseField(name)
	}
	return physics.Electric, nil
}

func (h *frameHandler) query(c command.Command) error {
	s := *h.snap
	n := s.Mode()
	if x, ok := c.Args.GetInt("n"); ok {
		n = x
	}

	switch c.Verb {
	case command.Sample:
		t := h.last
		t.Snapshot = s
		frame, err := h.build(t)
		if err != nil {
			return err
		}
		h.tail.Write(frame)
	case command.Resonance:
		res, err := physics.ComputeResonance(s.Boundary, s.Length, n, s.Constants.WaveSpeed)
		if err != nil {
			return err
		}
		wave, err := physics.ComputeWave(s.Boundary, s.Length, n, s.Constants.WaveSpeed)
		if err != nil {
			return err
		}
		h.lines(readout.Resonance(res, n))
		h.lines(readout.Wave(wave))
	case command.Energy:
		peak := s.PeakE
		if x, ok := c.Args.GetFloat("peak-e"); ok {
			peak = x
		}
		energy, err := s.Constants.Energy(peak)
		if err != nil {
			return err
		}
		h.lines(readout.Energy(energy))
	case command.Nodes:
		for _, f := range []physics.Field{physics.Electric, physics.Magnetic} {
			pairs, err := physics.NodesFor(s.Boundary, f, n, s.Length)
			if err != nil {
				return err
			}
			info(h.head, "%v", readout.Nodes(f, physics.Markers(pairs)))
		}
	case command.Equations:
		wave, err := physics.ComputeWave(s.Boundary, s.Length, n, s.Constants.WaveSpeed)
		if err != nil {
			return err
		}
		b0 := s.Amplitude / s.Constants.WaveSpeed
		build := equation.Build
		if x, _ := c.Args.GetBool("evaluable"); x {
			build = equation.BuildEvaluable
		}
		eqs, err := build(s.Boundary, wave.K, wave.Omega, s.Amplitude, b0)
		if err != nil {
			return err
		}
		h.lines([]string{eqs.Electric, eqs.Magnetic})
	case command.Spectrum:
		return h.spectrum(c, s)
	case command.History:
		return h.historyReport(c, s)
	case command.FieldMap:
		path, ok := c.Args.GetString("path")
		if !ok {
			return fmt.Errorf("%w: fieldmap needs path=", command.ErrBadArg)
		}
		width, ok := c.Args.GetInt("width")
		if !ok {
			width = defaultMapWidth
		}
		height, ok := c.Args.GetInt("height")
		if !ok {
			height = defaultMapHeight
		}
		f, err := fieldArg(c.Args)
		if err != nil {
			return err
		}
		if err := fieldmap.SavePNG(path, s.Request(f, 0), width, height); err != nil {
			return err
		}
		info(h.head, "saved %vx%v field map to %v", width, height, path)
	default:
		h.tail.Write(c)
	}
	return nil
}

func (h *frameHandler) spectrum(c command.Command, s config.Snapshot) error {
	f, err := fieldArg(c.Args)
	if err != nil {
		return err
	}
	top, ok := c.Args.GetInt("max")
	if !ok {
		top = 1
		for _, m := range s.Modes {
			if m > top {
				top = m
			}
		}
	}
	p, err := field.SampleProfile(s.Request(f, h.last.Phase))
	if err != nil {
		return err
	}
	modes, err := spectrum.Decompose(p, s.Boundary, f, top)
	if err != nil {
		return err
	}
	if d, ok := spectrum.Dominant(modes); ok {
		info(h.head, "%v dominant mode n=%v a=%.4g", f, d.Mode, d.Amplitude)
	}
	h.tail.Write(SpectrumReport{Seq: h.last.Seq, Field: f, Modes: modes})
	return nil
}

func (h *frameHandler) historyReport(c command.Command, s config.Snapshot) error {
	if x, _ := c.Args.GetBool("traveling"); x {
		count, ok := c.Args.GetInt("count")
		if !ok {
			count = s.HistorySize
		}
		pts, err := field.ObservationSeries(s.Traveling(physics.Electric, h.last.Elapsed),
			s.ObservationPoint, h.last.Elapsed, s.TimeStep, count)
		if err != nil {
			return err
		}
		h.tail.Write(HistoryReport{Position: s.ObservationPoint, Source: "traveling", Points: pts})
		return nil
	}
	info(h.head, "history at x=%v: %v of %v points", readout.Length(s.ObservationPoint),
		h.history.Len(), readout.Count(h.history.Total()))
	h.tail.Write(HistoryReport{Position: s.ObservationPoint, Source: "standing", Points: h.history.Points()})
	return nil
}

// FrameHandler computes a Frame per Tick and answers query commands.
func FrameHandler(head, tail io.Conn) {
	defer tail.Close()
	h := frameHandler{head: head, tail: tail}
	go forward(head, tail)

	for msg := range head.Rc() {
		h.headRead(msg)
	}
}
