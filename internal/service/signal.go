package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	folio "github.com/niya-shroff/folio"
)

const searchChannel = "folio:search"

// SignalService fans search events out to live subscribers through redis
// pub/sub, so result pushes reach sessions on every replica.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, event folio.Event) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, searchChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Subscribe streams search events for the given session id into output
// until the context is done. Malformed payloads are logged and skipped.
func (s *SignalService) Subscribe(ctx context.Context, sessionID string, output chan<- folio.Event) {
	pubsub := s.rdb.Subscribe(ctx, searchChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event folio.Event
			err := json.Unmarshal([]byte(msg.Payload), &event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Malformed search event",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}

			if event.Session != sessionID {
				continue
			}

			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
