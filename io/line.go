package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

const endLine = '\n'

// LinePipe turns the reader and writer into two channels
// that use a line based text protocol. Incoming lines are
// trimmed and blank lines dropped. Outgoing strings, byte
// slices and Stringers are written one per line.
func LinePipe(reader io.Reader, writer io.Writer, c Conn) error {
	err := make(chan error, 4)
	stopWrite := make(chan struct{})

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		defer close(stopWrite)

		reader := bufio.NewReader(reader)
		for {
			str, lerr := reader.ReadString(endLine)
			str = strings.TrimSpace(str)
			if str != "" {
				c.rd <- str
			}
			if lerr != nil {
				err <- lerr
				return
			}
		}
	}()

	go func() {
		defer wg.Done()

		writer := bufio.NewWriter(writer)
		for {
			var data Any
			select {
			case <-stopWrite:
				return
			case data = <-c.wr:
			}

			var str string
			switch v := data.(type) {
			case []byte:
				str = string(v)
			case string:
				str = v
			case fmt.Stringer:
				str = v.String()
			default:
				err <- fmt.Errorf("unknown value passed to line pipe: %v", data)
				return
			}
			str = strings.TrimSpace(str) + string(endLine)
			if _, lerr := writer.WriteString(str); lerr != nil {
				err <- lerr
				return
			}
			writer.Flush()
		}
	}()

	wg.Wait()
	return <-err // return first error
}
