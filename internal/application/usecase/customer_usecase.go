package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/entregas-api/internal/application/dto"
	"github.com/jhoicas/entregas-api/internal/domain"
	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
	"github.com/jhoicas/entregas-api/internal/security"
)

// CustomerUseCase casos de uso CRUD para clientes destinatarios de entregas.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	validator *security.Validator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, validator *security.Validator) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, validator: validator}
}

// Create crea un cliente. Los campos de texto libre pasan por el validador.
func (uc *CustomerUseCase) Create(userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	for field, value := range map[string]string{
		"name": in.Name, "document": in.Document, "phone": in.Phone, "address": in.Address,
	} {
		if value == "" {
			continue
		}
		if err := uc.validator.CheckField(userID, field, value); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      uc.validator.Sanitize(in.Name),
		Document:  uc.validator.Sanitize(in.Document),
		Phone:     uc.validator.Sanitize(in.Phone),
		Address:   uc.validator.Sanitize(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(limit, offset int) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return items, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
