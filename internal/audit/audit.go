package audit

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
)

// Recorder пишет события аудита в структурированный лог. Записи не участвуют
// в бизнес-транзакциях: падение аудита не должно откатывать операцию.
type Recorder struct {
	logger *logrus.Entry
}

var _ domain.AuditRecorder = (*Recorder)(nil)

func New(l *logrus.Logger) *Recorder {
	return &Recorder{logger: l.WithField("component", "audit")}
}

func (r *Recorder) Record(_ context.Context, event domain.AuditEvent) {
	fields := logrus.Fields{
		"operator_id": event.OperatorID,
		"target_type": event.TargetType,
		"target_id":   event.TargetID,
		"action":      event.Action,
	}
	for k, v := range event.Detail {
		fields["detail_"+k] = v
	}
	r.logger.WithFields(fields).Info(event.Summary)
}
