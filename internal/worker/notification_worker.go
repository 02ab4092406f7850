package worker

import (
	"github.com/jobboard/jobboard-api/internal/events"
	"github.com/jobboard/jobboard-api/internal/service"
)

// StartEventWorkers subscribes the event consumers to the dispatcher. Either
// consumer may be nil; the Kafka publisher is absent when no brokers are set.
func StartEventWorkers(dispatcher events.Dispatcher, notifications *service.NotificationService, publisher *events.KafkaPublisher) {
	if dispatcher == nil {
		return
	}
	if notifications != nil {
		notifications.RegisterHandlers()
	}
	if publisher != nil {
		publisher.SubscribeAll(dispatcher)
	}
}
