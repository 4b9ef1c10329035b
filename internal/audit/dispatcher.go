package audit

import "github.com/rs/zerolog/log"

type Event struct {
	CompanyID uint
	UserID    *string
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Dispatcher decouples audit writes from the request path: events go
// through a buffered queue and a single worker goroutine. A full queue
// drops the event rather than blocking the API.
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
			ev.CompanyID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Warn().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
