package services

import (
	stdctx "context"
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/lac-hong-legacy/edu_api/dto"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const (
	PointsAwardedQueue = "points.awarded"
	eventBuffer        = 256
)

// EventService publishes ledger events to RabbitMQ. Publishing never blocks
// a request: events are queued in memory and sent by a single worker. With
// no AMQP_URL the service drops events silently.
type EventService struct {
	context.DefaultService

	url    string
	queue  string
	events chan dto.PointsAwardedEvent
	done   chan struct{}

	conn *amqp.Connection
	ch   *amqp.Channel
}

const EVENT_SVC = "event_svc"

func (svc EventService) Id() string {
	return EVENT_SVC
}

func (svc *EventService) Configure(ctx *context.Context) error {
	svc.url = os.Getenv("AMQP_URL")
	if svc.url == "" {
		svc.url = os.Getenv("RABBITMQ_URL")
	}
	svc.queue = os.Getenv("AMQP_POINTS_QUEUE")
	if svc.queue == "" {
		svc.queue = PointsAwardedQueue
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *EventService) Start() error {
	if svc.url == "" {
		log.Info("AMQP not configured, domain events disabled")
		return nil
	}

	svc.events = make(chan dto.PointsAwardedEvent, eventBuffer)
	svc.done = make(chan struct{})
	go svc.run()
	return nil
}

func (svc *EventService) Shutdown() {
	if svc.events == nil {
		return
	}
	close(svc.events)
	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		log.Warn("Event publisher did not drain in time")
	}
}

func (svc *EventService) Enabled() bool {
	return svc != nil && svc.events != nil
}

// PublishPointsAwarded enqueues ev. A full buffer drops the event.
func (svc *EventService) PublishPointsAwarded(ev dto.PointsAwardedEvent) {
	if !svc.Enabled() {
		return
	}

	select {
	case svc.events <- ev:
	default:
		log.WithFields(log.Fields{"student_id": ev.StudentID, "source": ev.Source}).Warn("Event buffer full, dropping points event")
	}
}

func (svc *EventService) run() {
	defer close(svc.done)
	defer svc.closeChannel()

	for ev := range svc.events {
		if err := svc.publish(ev); err != nil {
			log.WithFields(log.Fields{"student_id": ev.StudentID, "error": err.Error()}).Error("Failed to publish points event")
			svc.closeChannel()
		}
	}
}

func (svc *EventService) publish(ev dto.PointsAwardedEvent) error {
	if err := svc.ensureChannel(); err != nil {
		return err
	}

	body, err := encodeEvent(ev)
	if err != nil {
		return err
	}

	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 5*time.Second)
	defer cancel()

	return svc.ch.PublishWithContext(ctx, "", svc.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Type:         PointsAwardedQueue,
		Body:         body,
	})
}

func encodeEvent(ev dto.PointsAwardedEvent) ([]byte, error) {
	body, err := sonic.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return body, nil
}

func (svc *EventService) ensureChannel() error {
	if svc.ch != nil && !svc.ch.IsClosed() {
		return nil
	}
	svc.closeChannel()

	conn, err := amqp.Dial(svc.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(svc.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare queue: %w", err)
	}

	svc.conn = conn
	svc.ch = ch
	return nil
}

func (svc *EventService) closeChannel() {
	if svc.ch != nil {
		_ = svc.ch.Close()
		svc.ch = nil
	}
	if svc.conn != nil {
		_ = svc.conn.Close()
		svc.conn = nil
	}
}
