package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/events"
	"github.com/jobboard/jobboard-api/internal/service"
)

type captureWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *captureWriter) Close() error { return nil }

func TestStartEventWorkers_ForwardsToKafka(t *testing.T) {
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher(logger)
	writer := &captureWriter{}

	StartEventWorkers(dispatcher,
		service.NewNotificationService(dispatcher, logger),
		events.NewKafkaPublisher(writer, logger))

	event := events.NewEvent(events.EventApplicationSubmitted,
		events.Actor{Type: domain.SubjectTypeUser, ID: "alice"},
		events.ApplicationPayload{ApplicationID: 1, JobID: 7, Company: "acme", Username: "alice"})
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, writer.msgs, 1)
	assert.Equal(t, "USER:alice", string(writer.msgs[0].Key))
}

func TestStartEventWorkers_NilDispatcher(t *testing.T) {
	assert.NotPanics(t, func() { StartEventWorkers(nil, nil, nil) })
}
