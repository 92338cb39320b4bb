package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/hjson/hjson-go"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config is the user editable parameter set. Zero values take defaults.
type Config struct {
	Boundary         physics.Boundary `json:"boundary" yaml:"boundary"`
	CavityLength     float64          `json:"cavity-length" yaml:"cavity-length"`
	WaveSpeed        float64          `json:"wave-speed" yaml:"wave-speed"`
	Epsilon0         float64          `json:"epsilon0" yaml:"epsilon0"`
	Mu0              float64          `json:"mu0" yaml:"mu0"`
	Amplitude        float64          `json:"amplitude" yaml:"amplitude"`
	PeakE            float64          `json:"peak-e" yaml:"peak-e"`
	Modes            []int            `json:"modes" yaml:"modes"`
	Samples          int              `json:"samples" yaml:"samples"`
	TickMillis       int              `json:"tick-millis" yaml:"tick-millis"`
	TimeStep         float64          `json:"time-step" yaml:"time-step"`
	ObservationPoint *float64         `json:"observation-point,omitempty" yaml:"observation-point,omitempty"`
	HistorySize      int              `json:"history-size" yaml:"history-size"`
	Wavelength       float64          `json:"wavelength" yaml:"wavelength"`
	Frequency        float64          `json:"frequency" yaml:"frequency"`
}

const (
	DefaultCavityLength = 800
	DefaultAmplitude    = 50
	DefaultPeakE        = 1e-3
	DefaultSamples      = 200
	DefaultTickMillis   = 50
	DefaultTimeStep     = 0.05
	DefaultHistorySize  = 200
	DefaultWavelength   = 200
	DefaultFrequency    = 1
)

// Default returns a config with every default applied.
func Default() Config {
	var conf Config
	conf.fill()
	return conf
}

// LoadConfig reads HJSON, or YAML for .yaml/.yml files.
func LoadConfig(path string) (conf Config, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	bytes, err := ioutil.ReadAll(f)
	if err != nil {
		return
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &conf)
	default:
		err = unmarshalHJSON(bytes, &conf)
	}
	if err != nil {
		return conf, fmt.Errorf("failed to parse %v: %w", path, err)
	}
	conf.fill()
	_, err = conf.Snapshot()
	return
}

func unmarshalHJSON(bytes []byte, conf *Config) error {
	var mdat map[string]interface{}
	if err := hjson.Unmarshal(bytes, &mdat); err != nil {
		return err
	}
	bytes, err := json.Marshal(mdat)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, conf)
}

func (c *Config) fill() {
	vacuum := physics.Vacuum()
	setDefault(&c.CavityLength, DefaultCavityLength)
	setDefault(&c.WaveSpeed, vacuum.WaveSpeed)
	setDefault(&c.Epsilon0, vacuum.Epsilon0)
	setDefault(&c.Mu0, vacuum.Mu0)
	setDefault(&c.Amplitude, DefaultAmplitude)
	setDefault(&c.PeakE, DefaultPeakE)
	setDefault(&c.TimeStep, DefaultTimeStep)
	setDefault(&c.Wavelength, DefaultWavelength)
	setDefault(&c.Frequency, DefaultFrequency)
	if c.Samples == 0 {
		c.Samples = DefaultSamples
	}
	if c.TickMillis == 0 {
		c.TickMillis = DefaultTickMillis
	}
	if c.HistorySize == 0 {
		c.HistorySize = DefaultHistorySize
	}
	if len(c.Modes) == 0 {
		c.Modes = []int{1}
	}
}

func setDefault(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

// Set assigns one key by its config name, as sent by "set key=value".
func (c *Config) Set(key, value string) error {
	float := func(dst *float64) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %v=%q", physics.ErrInvalidInput, key, value)
		}
		*dst = v
		return nil
	}
	integer := func(dst *int) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %v=%q", physics.ErrInvalidInput, key, value)
		}
		*dst = v
		return nil
	}

	switch key {
	case "boundary":
		return c.Boundary.UnmarshalText([]byte(value))
	case "cavity-length":
		return float(&c.CavityLength)
	case "wave-speed":
		return float(&c.WaveSpeed)
	case "epsilon0":
		return float(&c.Epsilon0)
	case "mu0":
		return float(&c.Mu0)
	case "amplitude":
		return float(&c.Amplitude)
	case "peak-e":
		return float(&c.PeakE)
	case "time-step":
		return float(&c.TimeStep)
	case "wavelength":
		return float(&c.Wavelength)
	case "frequency":
		return float(&c.Frequency)
	case "observation-point":
		var v float64
		if err := float(&v); err != nil {
			return err
		}
		c.ObservationPoint = &v
		return nil
	case "samples":
		return integer(&c.Samples)
	case "tick-millis":
		return integer(&c.TickMillis)
	case "history-size":
		return integer(&c.HistorySize)
	case "modes", "mode":
		modes, err := ParseModes(value)
		if err != nil {
			return err
		}
		c.Modes = modes
		return nil
	}
	return fmt.Errorf("%w: unknown key %q", physics.ErrInvalidInput, key)
}

// ParseModes reads a comma separated list of mode numbers.
func ParseModes(s string) ([]int, error) {
	var modes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: mode %q", physics.ErrInvalidInput, part)
		}
		modes = append(modes, n)
	}
	return modes, nil
}

// Snapshot validates c and returns the immutable parameter set handed to the
// computation.
func (c Config) Snapshot() (Snapshot, error) {
	s := Snapshot{
		Boundary:    c.Boundary,
		Length:      c.CavityLength,
		Amplitude:   c.Amplitude,
		PeakE:       c.PeakE,
		Modes:       append([]int(nil), c.Modes...),
		Samples:     c.Samples,
		Tick:        time.Duration(c.TickMillis) * time.Millisecond,
		TimeStep:    c.TimeStep,
		HistorySize: c.HistorySize,
		Wavelength:  c.Wavelength,
		Frequency:   c.Frequency,
		Constants: physics.Constants{
			WaveSpeed: c.WaveSpeed,
			Epsilon0:  c.Epsilon0,
			Mu0:       c.Mu0,
		},
	}
	s.ObservationPoint = c.CavityLength / 2
	if c.ObservationPoint != nil {
		s.ObservationPoint = *c.ObservationPoint
	}
	return s, s.validate()
}
