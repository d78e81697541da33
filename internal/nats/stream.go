package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the JetStream stream holding every wizard run.
	StreamName = "firstrun_events"

	subjectRoot = "firstrun"
	retention   = 365 * 24 * time.Hour
)

// SubjectAll matches every event of every run.
func SubjectAll() string {
	return subjectRoot + ".>"
}

// SubjectForRun returns the wildcard subject for all events in one run.
// Example: "firstrun.6f1c....>"
func SubjectForRun(run string) string {
	return fmt.Sprintf("%s.%s.>", subjectRoot, run)
}

// SubjectForEvent returns the subject for an event type within a run.
// Example: "firstrun.6f1c....lifecycle"
func SubjectForEvent(run, eventType string) string {
	return fmt.Sprintf("%s.%s.%s", subjectRoot, run, eventType)
}

// SetupStream creates or updates the firstrun event stream.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{SubjectAll()},
		Storage:  jetstream.FileStorage,
		MaxAge:   retention,
	})
	if err != nil {
		return nil, fmt.Errorf("setting up stream %s: %w", StreamName, err)
	}
	return stream, nil
}

// PurgeStream drops every stored event.
func PurgeStream(ctx context.Context, stream jetstream.Stream) error {
	if err := stream.Purge(ctx); err != nil {
		return fmt.Errorf("purging stream %s: %w", StreamName, err)
	}
	return nil
}
