package pipeline

import (
	"fmt"

	"github.com/colinrgodsey/wave-daemon/io"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Line prefixes of encoded messages.
const (
	FramePrefix    = "frame:"
	HistoryPrefix  = "history:"
	SpectrumPrefix = "spectrum:"
)

func encode(prefix string, v interface{}) (string, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return prefix + string(bytes), nil
}

// EncodeHandler turns reports into single JSON lines for the sink.
func EncodeHandler(head, tail io.Conn) {
	defer tail.Close()
	go forward(head, tail)

	for msg := range head.Rc() {
		var line string
		var err error
		switch msg := msg.(type) {
		case Frame:
			line, err = encode(FramePrefix, msg)
		case HistoryReport:
			line, err = encode(HistoryPrefix, msg)
		case SpectrumReport:
			line, err = encode(SpectrumPrefix, msg)
		case string:
			line = msg
		default:
			warn(head, "dropping unencodable %T", msg)
			continue
		}
		if err != nil {
			fail(head, fmt.Errorf("failed to encode: %w", err))
			continue
		}
		tail.Write(line)
	}
}
