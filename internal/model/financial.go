package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
)

type FinancialTransaction struct {
	BaseModel
	Type            TransactionType `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Description     *string         `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
}

// Clone returns a copy that shares no pointers with tx.
func (tx *FinancialTransaction) Clone() FinancialTransaction {
	out := *tx
	if tx.Description != nil {
		description := *tx.Description
		out.Description = &description
	}
	return out
}

type FinancialInput struct {
	Type            TransactionType  `json:"type" validate:"required,oneof=income expense"`
	Category        string           `json:"category" validate:"required"`
	Amount          *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Description     *string          `json:"description"`
	TransactionDate time.Time        `json:"transactionDate" validate:"required"`
}

func (in *FinancialInput) ToTransaction() FinancialTransaction {
	tx := FinancialTransaction{
		Type:            in.Type,
		Category:        in.Category,
		Description:     in.Description,
		TransactionDate: in.TransactionDate,
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	return tx
}
