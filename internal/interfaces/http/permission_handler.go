package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/entregas-api/internal/application/dto"
	"github.com/jhoicas/entregas-api/internal/application/permission"
	"github.com/jhoicas/entregas-api/internal/domain/entity"
)

// PermissionHandler expone la verificación de permisos y su administración.
// Las rutas de administración van detrás de RequireRole(admin).
type PermissionHandler struct {
	gate  *permission.Gate
	admin *permission.AdminUseCase
}

// NewPermissionHandler construye el handler.
func NewPermissionHandler(gate *permission.Gate, admin *permission.AdminUseCase) *PermissionHandler {
	return &PermissionHandler{gate: gate, admin: admin}
}

// Check responde si el usuario autenticado puede ejecutar la acción en la bodega.
func (h *PermissionHandler) Check(c *fiber.Ctx) error {
	userID := GetUserID(c)
	warehouseID := c.Query("warehouse_id")
	action := entity.PermissionAction(c.Query("action"))
	if warehouseID == "" || !entity.ValidAction(action) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id y action (view|add|edit|delete) son requeridos"})
	}
	return c.JSON(fiber.Map{
		"user_id":      userID,
		"warehouse_id": warehouseID,
		"action":       string(action),
		"allowed":      h.gate.HasPermission(userID, warehouseID, action),
	})
}

// AccessibleWarehouses lista las bodegas donde el usuario puede ejecutar la acción.
func (h *PermissionHandler) AccessibleWarehouses(c *fiber.Ctx) error {
	action := entity.PermissionAction(c.Query("action", string(entity.ActionView)))
	if !entity.ValidAction(action) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "action inválida"})
	}
	ids, err := h.gate.AccessibleWarehouses(GetUserID(c), action)
	if err != nil {
		return respondError(c, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(fiber.Map{"warehouse_ids": ids})
}

// Grant otorga o actualiza un permiso (solo admin).
func (h *PermissionHandler) Grant(c *fiber.Ctx) error {
	var in dto.GrantPermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.admin.Grant(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListByUser lista permisos de un usuario (solo admin).
func (h *PermissionHandler) ListByUser(c *fiber.Ctx) error {
	items, err := h.admin.ListByUser(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// Revoke elimina un permiso (solo admin).
func (h *PermissionHandler) Revoke(c *fiber.Ctx) error {
	if err := h.admin.Revoke(c.Params("userId"), c.Params("warehouseId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
