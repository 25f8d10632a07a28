package schedule

import "github.com/glowhub/salon-scheduler/internal/audit"

// Auditor é o destino dos eventos de auditoria; *audit.Dispatcher em produção.
type Auditor interface {
	Dispatch(ev audit.Event)
}
