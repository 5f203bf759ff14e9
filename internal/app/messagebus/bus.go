package messagebus

import (
	"github.com/burenotti/go_fitness_tracker/internal/domain"
	"log/slog"
	"sync"
)

type EventHandler func(event domain.Event) error

// Subscriber handles every event of the types it lists.
type Subscriber interface {
	EventTypes() []string
	Handle(event domain.Event) error
}

type MessageBus struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	wg       sync.WaitGroup
}

func New(logger *slog.Logger) *MessageBus {
	return &MessageBus{
		logger:   logger,
		handlers: make(map[string][]EventHandler),
	}
}

func (b *MessageBus) Register(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *MessageBus) Subscribe(s Subscriber) {
	for _, eventType := range s.EventTypes() {
		b.Register(eventType, s.Handle)
	}
}

func (b *MessageBus) PublishEvents(events ...domain.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, event := range events {
		for _, handler := range b.handlers[event.Type()] {
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				if err := handler(event); err != nil {
					b.logger.Error("failed to handle event", "type", event.Type(), "err", err)
				}
			}()
		}
	}
	return nil
}

// Close waits for all in-flight handlers.
func (b *MessageBus) Close() {
	b.wg.Wait()
}
