package bootstrap

import "context"

// AuditLog is one auditable lifecycle change.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// NopAuditLogger discards entries.
type NopAuditLogger struct{}

func (NopAuditLogger) Log(context.Context, AuditLog) {}
