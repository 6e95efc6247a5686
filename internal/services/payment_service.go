package services

import (
	"context"
	"fmt"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
	"github.com/hackbits-tech/hackbits-backend/pkg/payment"
)

// PaymentService defines the interface for payment order operations
type PaymentService interface {
	InitiateOrder(ctx context.Context, team *models.Team) (*models.PaymentOrder, error)
	GetOrdersForTeam(ctx context.Context, team *models.Team) ([]*models.PaymentOrder, error)
}

type paymentService struct {
	orderRepo repositories.PaymentOrderRepository
	provider  payment.Provider
	cfg       *config.Config
}

// NewPaymentService creates a new PaymentService implementation
func NewPaymentService(orderRepo repositories.PaymentOrderRepository, provider payment.Provider, cfg *config.Config) PaymentService {
	return &paymentService{
		orderRepo: orderRepo,
		provider:  provider,
		cfg:       cfg,
	}
}

// InitiateOrder creates a payment order for the team's registration fee at
// the provider and records it. The provider order id is what the participant
// later submits as the transaction reference.
func (s *paymentService) InitiateOrder(ctx context.Context, team *models.Team) (*models.PaymentOrder, error) {
	providerOrder, err := s.provider.Initiate(team.PaymentAmount, s.cfg.Payment.Currency, team.RegistrationNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate payment order: %w", err)
	}

	order := &models.PaymentOrder{
		TeamID:             team.ID,
		RegistrationNumber: team.RegistrationNumber,
		Amount:             providerOrder.Amount,
		Currency:           providerOrder.Currency,
		ProviderOrderID:    providerOrder.ID,
		Status:             models.PaymentOrderCreated,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to record payment order: %w", err)
	}

	return order, nil
}

// GetOrdersForTeam retrieves a team's payment orders, newest first
func (s *paymentService) GetOrdersForTeam(ctx context.Context, team *models.Team) ([]*models.PaymentOrder, error) {
	return s.orderRepo.FindByTeamID(ctx, team.ID)
}
