package sink

import (
	"errors"
	"fmt"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	publishTimeout = 5 * time.Second
	defaultTopic   = "waved/frames"
)

// ErrPublishTimeout is returned when the broker does not acknowledge a
// publish in time.
var ErrPublishTimeout = errors.New("mqtt publish timed out")

// MQTT publishes lines to a broker topic.
type MQTT struct {
	Topic string
	QoS   byte

	client mqtt.Client
}

// Options builds the client options for broker, e.g. "tcp://localhost:1883".
func Options(broker string) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)

	host, _ := os.Hostname()
	opts.SetClientID(fmt.Sprintf("waved-%v-%d", host, time.Now().Unix()))

	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetConnectTimeout(10 * time.Second)

	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(1 * time.Minute)
	return opts
}

// NewMQTT connects to broker and publishes to topic.
func NewMQTT(broker, topic string) (*MQTT, error) {
	if topic == "" {
		topic = defaultTopic
	}
	m := &MQTT{Topic: topic, client: mqtt.NewClient(Options(broker))}

	token := m.client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to %v: %w", broker, token.Error())
	}
	return m, nil
}

func (m *MQTT) Publish(line string) error {
	token := m.client.Publish(m.Topic, m.QoS, false, line)
	if !token.WaitTimeout(publishTimeout) {
		return ErrPublishTimeout
	}
	return token.Error()
}

// Close disconnects, waiting up to a quarter second for in flight work.
func (m *MQTT) Close() error {
	m.client.Disconnect(250)
	return nil
}
