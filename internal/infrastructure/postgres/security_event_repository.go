package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

var _ repository.SecurityEventRepository = (*SecurityEventRepo)(nil)

// SecurityEventRepo implementación del log de auditoría de seguridad sobre PostgreSQL.
type SecurityEventRepo struct {
	q Querier
}

// NewSecurityEventRepository construye el adaptador.
func NewSecurityEventRepository(q Querier) *SecurityEventRepo {
	return &SecurityEventRepo{q: q}
}

// Create persiste un evento de seguridad.
func (r *SecurityEventRepo) Create(event *entity.SecurityEvent) error {
	query := `
		INSERT INTO security_events (id, kind, severity, client_id, field, sample, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Kind, event.Severity, event.ClientID, event.Field, event.Sample, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert security event: %w", err)
	}
	return nil
}

// List lista eventos recientes (más nuevos primero).
func (r *SecurityEventRepo) List(limit, offset int) ([]*entity.SecurityEvent, error) {
	query := `
		SELECT id, kind, severity, client_id, field, sample, created_at
		FROM security_events ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list security events: %w", err)
	}
	defer rows.Close()
	var list []*entity.SecurityEvent
	for rows.Next() {
		var e entity.SecurityEvent
		if err := rows.Scan(&e.ID, &e.Kind, &e.Severity, &e.ClientID, &e.Field, &e.Sample, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan security event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
