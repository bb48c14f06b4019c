package events

import (
	"encoding/json"
	"log/slog"

	"github.com/r3labs/sse/v2"

	"github.com/slime-this/bangerd/models"
	"github.com/slime-this/bangerd/shared"
)

var Server *sse.Server

func Init() {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(shared.STREAM_NOTICES)
	Server = server
}

// PublishNotice pushes a transient notice to any connected clients.
// Safe to call before Init in tests; the notice is just dropped.
func PublishNotice(level models.NoticeLevel, message string) {
	if Server == nil {
		return
	}
	payload, err := json.Marshal(models.Notice{Level: level, Message: message})
	if err != nil {
		slog.Error("Failed to encode notice", slog.String("stack", err.Error()))
		return
	}
	Server.Publish(shared.STREAM_NOTICES, &sse.Event{Data: payload})
}
