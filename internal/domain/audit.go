package domain

import "context"

// AuditEvent структурированная запись для внешнего журнала аудита. Хранение и выборка
// записей - забота внешней подсистемы, ядро их только отправляет.
type AuditEvent struct {
	OperatorID int64
	TargetType string
	TargetID   string
	Action     string
	Summary    string
	Detail     map[string]string
}

type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent)
}
