// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Pointer для событий указателя, Key для клавиш
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc lets a plain function subscribe.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// ListenerID identifies one subscription.
type ListenerID uint64

type subscription struct {
	id        ListenerID
	eventType EventType
	listener  Listener
}

// Dispatcher — диспетчер событий. Подписки хранятся в порядке регистрации.
type Dispatcher struct {
	nextID ListenerID
	subs   []subscription
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{nextID: 1}
}

// Subscribe — подписка на событие. Возвращает id для отписки.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) ListenerID {
	id := d.nextID
	d.nextID++
	d.subs = append(d.subs, subscription{id: id, eventType: eventType, listener: listener})
	return id
}

// SubscribeAll registers listener for several event types under one id.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) ListenerID {
	id := d.nextID
	d.nextID++
	for _, t := range types {
		d.subs = append(d.subs, subscription{id: id, eventType: t, listener: listener})
	}
	return id
}

// Unsubscribe — отписка по id. Повторная отписка ничего не делает.
func (d *Dispatcher) Unsubscribe(id ListenerID) {
	d.subs = slices.DeleteFunc(d.subs, func(s subscription) bool { return s.id == id })
}

// Len reports the number of live subscriptions.
func (d *Dispatcher) Len() int { return len(d.subs) }

// Dispatch — отправка события всем подписчикам. Подписчик может
// отписаться прямо из обработчика.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range slices.Clone(d.subs) {
		if s.eventType != event.Type || !d.live(s.id) {
			continue
		}
		s.listener.OnEvent(event)
	}
}

func (d *Dispatcher) live(id ListenerID) bool {
	return slices.ContainsFunc(d.subs, func(s subscription) bool { return s.id == id })
}
