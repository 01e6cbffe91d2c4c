package ui

// Event names a user action the form reacts to
type Event string

const (
	EventAdd    Event = "add"
	EventDelete Event = "delete"
	EventQuit   Event = "quit"
	EventClose  Event = "close"
)

// registerHandlers binds one handler per event
func (f *MovieForm) registerHandlers() {
	f.handlers = map[Event]func(){
		EventAdd:    f.onAdd,
		EventDelete: f.onDelete,
		EventQuit:   f.onQuit,
		EventClose:  f.onClose,
	}
}

// Dispatch runs the handler registered for ev. Unknown events are ignored.
func (f *MovieForm) Dispatch(ev Event) {
	handler, ok := f.handlers[ev]
	if !ok {
		f.logger.Warn().Str("event", string(ev)).Msg("no handler for event")
		return
	}
	f.logger.Debug().Str("event", string(ev)).Msg("dispatch")
	handler()
}
