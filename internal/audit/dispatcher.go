package audit

import "github.com/rs/zerolog"

type Event struct {
	OwnerID  string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Dispatcher grava auditoria fora do caminho da requisição. Fila cheia
// descarta o evento: auditoria nunca derruba a API.
type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.OwnerID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
