package service

import (
	"context"
	"fmt"

	"pharma-dashboard/internal/cache"
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/pkg/logger"

	"github.com/google/uuid"
)

type FinancialService interface {
	GetAllTransactions() ([]model.FinancialTransaction, error)
	GetTransactionByID(id uuid.UUID) (*model.FinancialTransaction, error)
	RecordTransaction(ctx context.Context, req *model.FinancialInput) (*model.FinancialTransaction, error)
}

type financialService struct {
	txRepo repository.FinancialRepository
	cache  cache.DashboardSummaryCache
}

func NewFinancialService(tRepo repository.FinancialRepository, c cache.DashboardSummaryCache) FinancialService {
	return &financialService{txRepo: tRepo, cache: c}
}

func (s *financialService) GetAllTransactions() ([]model.FinancialTransaction, error) {
	return s.txRepo.FindAll()
}

func (s *financialService) GetTransactionByID(id uuid.UUID) (*model.FinancialTransaction, error) {
	return s.txRepo.FindByID(id)
}

func (s *financialService) RecordTransaction(ctx context.Context, req *model.FinancialInput) (*model.FinancialTransaction, error) {
	if err := validateInput("transaction", req); err != nil {
		return nil, err
	}

	tx := req.ToTransaction()
	if err := s.txRepo.Create(&tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	logger.Log.Info().
		Str("transaction_id", tx.ID.String()).
		Str("type", string(tx.Type)).
		Str("amount", tx.Amount.String()).
		Msg("financial transaction recorded")

	invalidateSummary(ctx, s.cache, "transaction_recorded")
	return &tx, nil
}
