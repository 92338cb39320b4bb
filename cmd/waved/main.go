package main

import (
	"errors"
	"flag"
	"fmt"
	gio "io"
	"net"
	"os"
	"os/signal"
	"runtime/trace"
	"syscall"
	"time"

	"github.com/colinrgodsey/serial"
	"github.com/colinrgodsey/wave-daemon/config"
	"github.com/colinrgodsey/wave-daemon/fieldmap"
	"github.com/colinrgodsey/wave-daemon/io"
	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/colinrgodsey/wave-daemon/pipeline"
	"github.com/colinrgodsey/wave-daemon/sink"

	"github.com/pkg/profile"
)

const (
	headQueueSize = 32
	mapWidth      = 800
	mapHeight     = 400
)

var (
	configPath string
	devicePath string
	baud       int
	addr       string
	mqttBroker string
	mqttTopic  string
	mapPath    string

	doTrace bool
	doProf  bool
)

func main() {
	flag.StringVar(&configPath, "config", "./config.hjson", "Path to HJSON or YAML config file")
	flag.StringVar(&devicePath, "device", "", "Path to serial device for frames")
	flag.IntVar(&baud, "baud", 0, "Baud rate for serial device")
	flag.StringVar(&addr, "addr", "", "TCP address to send frames to")
	flag.StringVar(&mqttBroker, "mqtt", "", "MQTT broker to publish frames to, e.g. tcp://localhost:1883")
	flag.StringVar(&mqttTopic, "topic", "", "MQTT topic for frames")
	flag.StringVar(&mapPath, "fieldmap", "", "Write a PNG field map of E and exit")

	flag.BoolVar(&doTrace, "trace", false, "Enable tracing (debug)")
	flag.BoolVar(&doProf, "prof", false, "Enable profiling (debug)")
	flag.Parse()

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Println(fmt.Errorf("Failed to load config: %w", err))
		os.Exit(1)
	}

	if mapPath != "" {
		saveMap(conf)
		return
	}

	if devicePath != "" && baud <= 0 {
		fmt.Println("Baud flag required.")
		os.Exit(1)
	}

	if doTrace {
		trace.Start(os.Stderr)
		defer trace.Stop()
	}

	if doProf {
		st := profile.Start()

		go func() {
			time.Sleep(20 * time.Second)
			st.Stop()
			os.Exit(0)
		}()
	}

	c := io.NewConn(headQueueSize, headQueueSize)
	go io.LinePipe(os.Stdin, os.Stdout, c.Flip())
	c = pipeline.New(c, conf)
	tailSink(c)
}

func saveMap(conf config.Config) {
	snap, err := conf.Snapshot()
	if err == nil {
		err = fieldmap.SavePNG(mapPath, snap.Request(physics.Electric, 0), mapWidth, mapHeight)
	}
	if err != nil {
		fmt.Println(fmt.Errorf("Failed to write field map: %w", err))
		os.Exit(1)
	}
	fmt.Printf("info:wrote %v\n", mapPath)
}

func closeOnExit(closer func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		closer()
		os.Exit(0)
	}()
}

func tailSink(c io.Conn) {
	var tail gio.ReadWriteCloser
	var err error

	switch {
	case devicePath != "":
		cfg := &serial.Config{Name: devicePath, Baud: baud}
		if tail, err = serial.OpenPort(cfg); err == nil {
			closeOnExit(func() {
				fmt.Println("info:closing device serial")
				tail.Close()
			})
		}
	case addr != "":
		if tail, err = net.Dial("tcp", addr); err != nil {
			err = fmt.Errorf("Failed to connect to %v: %w", addr, err)
		}
	case mqttBroker != "":
		var m *sink.MQTT
		if m, err = sink.NewMQTT(mqttBroker, mqttTopic); err == nil {
			closeOnExit(func() {
				fmt.Println("info:disconnecting from broker")
				m.Close()
			})
			err = sink.Drain(c, m, os.Stdout)
		}
	default:
		err = sink.Drain(c, sink.Writer{W: os.Stdout}, os.Stdout)
	}

	if err == nil && tail != nil {
		err = io.LinePipe(tail, tail, c)
		if errors.Is(err, gio.EOF) {
			err = nil
		}
	}
	if err != nil {
		err = fmt.Errorf("Failed to run waved: %w", err)
		fmt.Println(err)
		os.Exit(1)
	}
}
