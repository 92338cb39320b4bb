package io

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestClose(t *testing.T) {
	reader, writer := io.Pipe()
	p := NewConn(1, 1)

	go func() {
		p.wr <- "test1"
		<-p.rd
		p.wr <- "test2"
		<-p.rd
		reader.Close()
	}()

	err := LinePipe(reader, writer, p)
	if err == nil {
		t.Fatalf("Error was nil (expected close)")
		return
	}
}

func TestPipe(t *testing.T) {
	reader, writer := io.Pipe()
	p := NewConn(1, 1)

	testStrings := [...]string{"set", "modes=1 ", "pause", "step", "frame:{}", "resume ",
		"energy", "info:ok"}

	go func() {
		// test with sending line by line
		for _, str := range testStrings {
			// send some empty lines, a string, then bytes
			p.wr <- ""
			p.wr <- str
			p.wr <- "\n"
			p.wr <- []byte(str)
			p.wr <- "\n\n"
			p.wr <- "\n \n"
		}

		// test sending as a unified blob
		var blob string
		for _, str := range testStrings {
			blob += str + "\n\n" + str + "\r\n"
		}
		p.wr <- blob
	}()

	go LinePipe(reader, writer, p)

	// validate both ways of sending
	for x := 0; x < 2; x++ {
		for _, str := range testStrings {
			for i := 0; i < 2; i++ {
				if (<-p.rd).(string) != strings.TrimSpace(str) {
					t.Fatalf("Line reader out of order")
					return
				}
			}
		}
	}

	reader.Close()
}

type label string

func (l label) String() string { return "label:" + string(l) }

func TestStringer(t *testing.T) {
	var out bytes.Buffer
	p := NewConn(0, 2)
	p.wr <- label("x")
	p.wr <- 42

	err := LinePipe(strings.NewReader(""), &out, p)
	if err == nil {
		t.Fatalf("Expected an error")
	}
	// the reader hits EOF first, so the writer may not have run
	if out.Len() > 0 && out.String() != "label:x\n" {
		t.Fatalf("Bad stringer output %q", out.String())
	}
}

func TestLastLine(t *testing.T) {
	p := NewConn(4, 0)
	if err := LinePipe(strings.NewReader("step\nresume"), io.Discard, p); err != io.EOF {
		t.Fatalf("Expected EOF, got %v", err)
	}
	if (<-p.rd).(string) != "step" || (<-p.rd).(string) != "resume" {
		t.Fatalf("Unterminated last line lost")
	}
}
