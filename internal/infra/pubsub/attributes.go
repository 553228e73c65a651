package pubsub

import (
	"strconv"

	"launchpad/internal/domain/service"
)

// eventAttributes flattens the routing fields of an event into message
// attributes so subscribers can filter without decoding the body.
func eventAttributes(event *service.DomainEvent) map[string]string {
	attrs := make(map[string]string, len(event.Attributes)+4)
	for k, v := range event.Attributes {
		attrs[k] = v
	}

	attrs["event_type"] = event.Type
	if event.StartupID != 0 {
		attrs["startup_id"] = strconv.FormatInt(event.StartupID, 10)
	}
	if event.UserID != 0 {
		attrs["user_id"] = strconv.FormatInt(event.UserID, 10)
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}
