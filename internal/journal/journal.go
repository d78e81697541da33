// Package journal records wizard runs as an append-only event log in an
// embedded JetStream stream and replays them for the history command.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/mark3labs/firstrun/internal/logger"
	"github.com/mark3labs/firstrun/internal/nats"
)

// Event types.
const (
	EventTypeLifecycle = "lifecycle"
	EventTypePage      = "page"
	EventTypeHelp      = "help"
)

// Event actions.
const (
	ActionReady    = "ready"
	ActionComplete = "complete"
	ActionDismiss  = "dismiss"
	ActionView     = "view"
	ActionOpen     = "open"
)

// Dir is the journal store directory under a data dir.
func Dir(dataDir string) string {
	return filepath.Join(dataDir, "journal")
}

// Event is one entry in the journal.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Run       string    `json:"run"`
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Page      string    `json:"page,omitempty"` // slug of the page title
	Data      string    `json:"data,omitempty"`
}

// Journal publishes the events of a single run.
type Journal struct {
	bus    *nats.Bus
	stream jetstream.Stream
	run    string
}

// Open starts the embedded event store under dir and begins a new run.
func Open(ctx context.Context, dir string) (*Journal, error) {
	bus, err := nats.Start(dir)
	if err != nil {
		return nil, fmt.Errorf("starting journal store: %w", err)
	}

	stream, err := nats.SetupStream(ctx, bus.JS)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}

	j := &Journal{bus: bus, stream: stream, run: uuid.NewString()}
	logger.Debug("journal opened, run %s", j.run)
	return j, nil
}

// Run is the ID of the run this journal records.
func (j *Journal) Run() string {
	return j.run
}

// Close stops the event store.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.bus.Close()
}

// Record appends an event for the current run. page is a page title and is
// stored as a slug.
func (j *Journal) Record(ctx context.Context, eventType, action, page, data string) error {
	return j.Publish(ctx, Event{
		Run:    j.run,
		Type:   eventType,
		Action: action,
		Page:   PageKey(page),
		Data:   data,
	})
}

// Publish appends event to the log. A zero timestamp is set to now.
func (j *Journal) Publish(ctx context.Context, event Event) error {
	if event.Run == "" {
		return errors.New("event has no run")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	subject := nats.SubjectForEvent(event.Run, event.Type)
	ack, err := j.bus.JS.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	logger.Debug("journal: %s.%s page=%q seq=%d", event.Type, event.Action, event.Page, ack.Sequence)
	return nil
}

// History returns every stored event of every run, oldest first.
func (j *Journal) History(ctx context.Context) ([]Event, error) {
	return History(ctx, j.stream)
}

// Purge deletes all stored runs.
func (j *Journal) Purge(ctx context.Context) error {
	return nats.PurgeStream(ctx, j.stream)
}

// History replays all events in stream, oldest first. Malformed entries are
// skipped.
func History(ctx context.Context, stream jetstream.Stream) ([]Event, error) {
	consumer, err := stream.OrderedConsumer(ctx, jetstream.OrderedConsumerConfig{
		FilterSubjects: []string{nats.SubjectAll()},
		DeliverPolicy:  jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("creating consumer: %w", err)
	}

	info, err := stream.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stream info: %w", err)
	}
	remaining := info.State.Msgs

	const batchSize = 500
	var events []Event
	malformed := 0
	for remaining > 0 {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			return nil, fmt.Errorf("fetching events: %w", err)
		}

		got := 0
		for msg := range msgs.Messages() {
			got++
			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				malformed++
				continue
			}
			if event.ID == "" {
				if meta, err := msg.Metadata(); err == nil {
					event.ID = strconv.FormatUint(meta.Sequence.Stream, 10)
				}
			}
			events = append(events, event)
		}
		if got == 0 {
			break
		}
		remaining -= min(remaining, uint64(got))
	}

	if malformed > 0 {
		logger.Warn("skipped %d malformed journal events", malformed)
	}
	return events, nil
}

// PageKey turns a page title into the stable key stored in events.
func PageKey(title string) string {
	if title == "" {
		return ""
	}
	return slug.Make(title)
}
