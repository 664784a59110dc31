package service

import (
	"errors"
	"sync"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/metrics"
)

// EventKind задаёт тип сигнала колеса в потоке событий.
type EventKind string

const (
	EventPhase    EventKind = "phase"
	EventDisplay  EventKind = "display"
	EventRotation EventKind = "rotation"
	EventResult   EventKind = "result"
	EventRejected EventKind = "rejected"
)

// Event описывает сигнал колеса в виде, пригодном для сериализации.
type Event struct {
	Kind   EventKind      `json:"kind"`
	Phase  domain.Phase   `json:"phase,omitempty"`
	Name   string         `json:"name,omitempty"`
	Angle  float64        `json:"angle,omitempty"`
	Result *domain.Result `json:"result,omitempty"`
	Error  *EventError    `json:"error,omitempty"`
}

// EventError описывает отклонённый запуск.
type EventError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Hub рассылает сигналы колеса подписчикам.
// Медленный подписчик теряет события, но не задерживает колесо.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	buffer int
}

// NewHub создаёт Hub с буфером buffer событий на подписчика.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{subs: make(map[int]chan Event), buffer: buffer}
}

// Subscribe возвращает канал событий и функцию отписки. Отписка закрывает канал.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Event, h.buffer)
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}

// Subscribers возвращает количество подписчиков.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
			metrics.IncDroppedEvents()
		}
	}
}

func (h *Hub) OnPhaseChange(phase domain.Phase) {
	h.publish(Event{Kind: EventPhase, Phase: phase})
}

func (h *Hub) OnDisplayName(name string) {
	h.publish(Event{Kind: EventDisplay, Name: name})
}

func (h *Hub) OnRotationChange(angle float64) {
	h.publish(Event{Kind: EventRotation, Angle: angle})
}

func (h *Hub) OnResult(result domain.Result) {
	h.publish(Event{Kind: EventResult, Result: &result})
}

func (h *Hub) OnRejected(err error) {
	msg := err.Error()
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		msg = vErr.Err.Error()
	}
	h.publish(Event{Kind: EventRejected, Error: &EventError{Code: domain.ErrorCode(err), Message: msg}})
}
