package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Verb names a daemon command.
type Verb string

const (
	Set       Verb = "set"
	Pause     Verb = "pause"
	Resume    Verb = "resume"
	Step      Verb = "step"
	Sample    Verb = "sample"
	Resonance Verb = "resonance"
	Energy    Verb = "energy"
	Nodes     Verb = "nodes"
	Equations Verb = "equations"
	Spectrum  Verb = "spectrum"
	History   Verb = "history"
	FieldMap  Verb = "fieldmap"
)

var verbs = map[Verb]bool{
	Set: true, Pause: true, Resume: true, Step: true,
	Sample: true, Resonance: true, Energy: true, Nodes: true,
	Equations: true, Spectrum: true, History: true, FieldMap: true,
}

var (
	// ErrEmpty is returned for blank or comment only lines.
	ErrEmpty = errors.New("command: empty line")

	// ErrUnknownVerb is returned for verbs outside the protocol.
	ErrUnknownVerb = errors.New("command: unknown verb")

	// ErrBadArg is returned for arguments not of the form key=value.
	ErrBadArg = errors.New("command: bad argument")

	// ErrChecksumBad is returned for bad line checksums.
	ErrChecksumBad = errors.New("command: bad checksum")
)

// Command is one parsed protocol line:
//
//	[N<num>] <verb> [key=value ...] [*<checksum>] [; comment]
type Command struct {
	Verb Verb
	Num  int
	Args Args
}

// New creates an unnumbered command.
func New(verb Verb, args ...string) Command {
	return Command{verb, -1, args}
}

// Parse creates a Command from a line.
func Parse(line string) (c Command, err error) {
	c.Num = -1

	// remove comments
	line = strings.TrimSpace(strings.SplitN(line, ";", 2)[0])
	if line == "" {
		err = ErrEmpty
		return
	}

	// checksum verification if provided
	if spl := strings.Split(line, "*"); len(spl) > 1 {
		line = strings.TrimSpace(spl[0])
		lchs, _ := strconv.Atoi(strings.TrimSpace(spl[1]))
		if checksum(line) != byte(lchs) {
			err = ErrChecksumBad
			return
		}
	}

	fields := strings.Fields(line)
	if len(fields) > 0 {
		if num, ok := lineNumber(fields[0]); ok {
			c.Num = num
			fields = fields[1:]
		}
	}
	if len(fields) == 0 {
		err = ErrEmpty
		return
	}

	c.Verb = Verb(strings.ToLower(fields[0]))
	if !verbs[c.Verb] {
		err = fmt.Errorf("%w: %q", ErrUnknownVerb, fields[0])
		return
	}

	c.Args = make(Args, 0, len(fields)-1)
	for _, s := range fields[1:] {
		kv := strings.SplitN(s, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			err = fmt.Errorf("%w: %q", ErrBadArg, s)
			return
		}
		c.Args = append(c.Args, strings.ToLower(kv[0])+"="+kv[1])
	}
	return
}

// lineNumber parses an N-prefixed line number such as "N12".
func lineNumber(field string) (int, bool) {
	if field[0] != 'N' && field[0] != 'n' {
		return 0, false
	}
	num, err := strconv.Atoi(field[1:])
	return num, err == nil
}

func checksum(s string) (chs byte) {
	for _, b := range []byte(s) {
		chs ^= b
	}
	return
}

func (c Command) String() string {
	str := strings.TrimSpace(fmt.Sprintf("%v %v", c.Verb, c.Args))
	if c.Num == -1 {
		return str
	}
	str = fmt.Sprintf("N%v %v", c.Num, str)
	return fmt.Sprintf("%v*%v", str, checksum(str))
}

// Is returns true if c has verb v.
func (c Command) Is(v Verb) bool {
	return c.Verb == v
}
