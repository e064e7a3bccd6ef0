package usecase

import (
	"context"
	"fmt"
	"time"

	"safari-njema/internal/data/entity"
	"safari-njema/internal/data/repository"
	"safari-njema/internal/dto/request"
	"safari-njema/internal/dto/response"
	"safari-njema/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	// FindOrCreate dedupes by phone number or national ID number. When a
	// match exists the stored record wins, incoming fields are not merged.
	FindOrCreate(ctx context.Context, req *request.RegisterCustomerRequest) (*response.CustomerResponse, error)
	Get(ctx context.Context, customerID string) (*response.CustomerResponse, error)
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) FindOrCreate(ctx context.Context, req *request.RegisterCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Customer.FindByPhoneOrIDNumber(ctx, req.PhoneNumber, req.IDNumber)
	if err != nil {
		s.log.Error("Failed to look up customer", zap.Error(err))
		return nil, fmt.Errorf("look up customer: %w", err)
	}
	if existing != nil {
		resp := response.CustomerToResponse(existing)
		return &resp, nil
	}

	customer := &entity.Customer{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		IDNumber:    req.IDNumber,
	}
	if req.Email != "" {
		email := req.Email
		customer.Email = &email
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("phone_number", req.PhoneNumber),
		)
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer registered",
		zap.String("customer_id", customer.ID.String()),
		zap.String("phone_number", customer.PhoneNumber),
	)

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) Get(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s not found", customerID)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}
