package service

import (
	"github.com/somchaipk/schoolfin/internal/config"
	"github.com/somchaipk/schoolfin/internal/store"
)

type Service struct {
	Account  *AccountService
	Request  *RequestService
	Approval *ApprovalService
	Ledger   *LedgerService
	Config   *config.Config
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Account:  NewAccountService(repo),
		Request:  NewRequestService(repo),
		Approval: NewApprovalService(repo),
		Ledger:   NewLedgerService(repo, cfg),
		Config:   cfg,
	}
}
