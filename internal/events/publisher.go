package events

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stationops/fuel-station/internal/models"
)

// Publisher pushes completed transactions to interested consumers.
type Publisher interface {
	PublishTransaction(tx models.Transaction) error
	Close()
}

// TransactionTopic returns the MQTT topic transactions for a pump are
// published on.
func TransactionTopic(pumpID int) string {
	return fmt.Sprintf("station/pumps/%d/transactions", pumpID)
}

// MQTTPublisher publishes transactions over MQTT.
type MQTTPublisher struct {
	client mqtt.Client
	qos    byte
}

// NewMQTTPublisher connects to the broker and returns a publisher.
func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect error: %w", token.Error())
	}
	return &MQTTPublisher{client: client, qos: 1}, nil
}

// PublishTransaction publishes a transaction as JSON on the pump's topic.
func (p *MQTTPublisher) PublishTransaction(tx models.Transaction) error {
	payload, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	token := p.client.Publish(TransactionTopic(tx.PumpID), p.qos, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to publish transaction: %w", token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
