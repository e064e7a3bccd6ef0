package usecase

import (
	"time"

	"safari-njema/internal/data/repository"
	"safari-njema/internal/dto/request"
	"safari-njema/internal/ledger"

	"go.uber.org/zap"
)

func newTestRepo() *repository.Repository {
	return repository.NewMemoryRepository(zap.NewNop())
}

func newTestLedger(ttl time.Duration) *ledger.Ledger {
	return ledger.New(ttl, zap.NewNop())
}

func testCustomerInfo() *request.RegisterCustomerRequest {
	return &request.RegisterCustomerRequest{
		FullName:    "Amina Wanjiru",
		PhoneNumber: "+254712345678",
		IDNumber:    "28374651",
		Email:       "amina@example.com",
	}
}
