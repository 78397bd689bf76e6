package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier is the contract the worker pushes captured leads through.
// The SMTP sender implements it; tests substitute it.
type LeadNotifier interface {
	NotifyLeadCaptured(name, email, phone string, score int) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	for d := range msgs {
		w.handle(d)
	}
}

func (w *Worker) handle(d amqp.Delivery) {
	var payload LeadCapturedPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		// Malformed message. Reject without requeue so it lands in the DLQ
		// instead of blocking the queue.
		log.Printf("[worker] malformed message: %s", err)
		d.Nack(false, false)
		return
	}

	if err := w.Notifier.NotifyLeadCaptured(payload.Name, payload.Email, payload.Phone, payload.Score); err != nil {
		log.Printf("[worker] notification failed for lead %s: %s", payload.LeadID, err)
		d.Nack(false, false)
		return
	}

	log.Printf("[worker] lead %s notified (score %d)", payload.LeadID, payload.Score)
	d.Ack(false)
}
