package audit

import "github.com/rs/zerolog/log"

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persiste un evento de auditoría.
type Sink interface {
	Log(action string, entity string, entityID *uint, metadata any) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila llena: descartamos auditoría antes que frenar la API
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
