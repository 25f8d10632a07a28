package audit

import (
	"go.uber.org/zap"

	"github.com/glowhub/salon-scheduler/internal/logger"
)

type Event struct {
	TenantID string
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.TenantID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.L().Warn("audit error",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		logger.L().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
