package services

import (
	"context"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
)

type QueryService struct {
	repo application.TransactionRepository
}

func NewQueryService(repo application.TransactionRepository) *QueryService {
	return &QueryService{
		repo: repo,
	}
}

func (s *QueryService) GetTransaction(ctx context.Context, transactionRef string) (*domain.Transaction, error) {
	txn, err := s.repo.GetTransactionByReference(ctx, transactionRef)
	if err != nil {
		return nil, wrapRepoError(err)
	}
	return txn, nil
}
