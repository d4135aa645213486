package repository

import "github.com/jhoicas/entregas-api/internal/domain/entity"

// SecurityEventRepository define el puerto del log de auditoría de seguridad.
// Create nunca debe bloquear el flujo principal: un fallo al auditar se
// registra en el log estructurado pero no revierte la denegación.
type SecurityEventRepository interface {
	Create(event *entity.SecurityEvent) error
	List(limit, offset int) ([]*entity.SecurityEvent, error)
}
