package repository

import (
	"pharma-dashboard/internal/model"

	"github.com/google/uuid"
)

type FinancialRepository interface {
	Create(tx *model.FinancialTransaction) error
	FindAll() ([]model.FinancialTransaction, error)
	FindByID(id uuid.UUID) (*model.FinancialTransaction, error)
}

type financialRepo struct {
	transactions *collection[model.FinancialTransaction, *model.FinancialTransaction]
}

func NewFinancialRepo() FinancialRepository {
	return &financialRepo{transactions: newCollection[model.FinancialTransaction](nil)}
}

func (r *financialRepo) Create(tx *model.FinancialTransaction) error {
	return r.transactions.insert(tx)
}

func (r *financialRepo) FindAll() ([]model.FinancialTransaction, error) {
	return r.transactions.list(), nil
}

func (r *financialRepo) FindByID(id uuid.UUID) (*model.FinancialTransaction, error) {
	tx, _ := r.transactions.get(id)
	return tx, nil
}
