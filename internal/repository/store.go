package repository

// Store bundles one repository per entity type. It is built once at startup
// and handed to the services; swapping in a database only means providing
// other implementations of these interfaces.
type Store struct {
	Products  ProductRepository
	Batches   BatchRepository
	Sales     SaleRepository
	Financial FinancialRepository
	Users     UserRepository
}

func NewMemoryStore() *Store {
	return &Store{
		Products:  NewProductRepo(),
		Batches:   NewBatchRepo(),
		Sales:     NewSaleRepo(),
		Financial: NewFinancialRepo(),
		Users:     NewUserRepo(),
	}
}
