package pathplot

// ----------------------------------------------------------------------------
// Notifications

// EventType distinguishes the notifications which affect the layout of the
// path list.
type EventType int

const (
	EventAlignPathNodes EventType = iota
	EventTiltAttributes
	EventCollapseElementType
)

func (t EventType) String() string {
	return []string{"ALIGN_PATH_NODES", "TILT_ATTRIBUTES", "COLLAPSE_ELEMENT_TYPE"}[int(t)]
}

// CollapseType asks to collapse or expand every dataset of the given name.
type CollapseType struct {
	Type      string
	Collapsed bool
}

// Event is one notification. Flag carries the new value of the align and
// tilt settings, Collapse the payload of EventCollapseElementType.
type Event struct {
	Type     EventType
	Flag     bool
	Collapse CollapseType
}

type subscription struct {
	id int
	fn func(Event)
}

// Bus delivers events to the handlers subscribed to their type, in the
// order of subscription. A Bus is not safe for concurrent use.
type Bus struct {
	next     int
	handlers map[EventType][]subscription
}

// NewBus returns a bus without subscribers.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]subscription)}
}

// Subscribe registers fn for events of type t. Calling the returned
// function removes the registration.
func (b *Bus) Subscribe(t EventType, fn func(Event)) (cancel func()) {
	b.next++
	id := b.next
	b.handlers[t] = append(b.handlers[t], subscription{id, fn})
	return func() {
		subs := b.handlers[t]
		for i, s := range subs {
			if s.id == id {
				b.handlers[t] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Notify delivers ev to the handlers of its type. Handlers subscribed or
// cancelled while ev is delivered take effect with the next event.
func (b *Bus) Notify(ev Event) {
	if b == nil {
		return
	}
	subs := append([]subscription(nil), b.handlers[ev.Type]...)
	debugf("notify %s to %d handlers", ev.Type, len(subs))
	for _, s := range subs {
		s.fn(ev)
	}
}
