package service

import (
	"github.com/google/uuid"

	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/validation"
)

type RequestService struct {
	repo store.Repository
}

func NewRequestService(repo store.Repository) *RequestService {
	return &RequestService{repo: repo}
}

// CreateRequestInput carries the raw form values for a new expense
// request. Parsing and range checks happen here, not in the cmd layer.
type CreateRequestInput struct {
	Date        string
	Amount      string
	Description string
	AccountType string
}

func (rs *RequestService) Create(actor *store.User, input CreateRequestInput) (*store.ExpenseRequest, error) {
	if err := Authorize(OpCreateRequest, actor.Role); err != nil {
		return nil, err
	}

	date, err := validation.ParseDate(input.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: err.Error()}
	}

	amount, err := validation.ParseAmount(input.Amount)
	if err != nil {
		return nil, &ValidationError{Field: "amount", Reason: err.Error()}
	}

	accountType, err := model.ParseAccountType(input.AccountType)
	if err != nil {
		return nil, &ValidationError{Field: "account type", Reason: err.Error()}
	}

	if len(input.Description) > constants.MaxDescriptionLen {
		return nil, &ValidationError{Field: "description", Reason: "too long"}
	}

	req := store.ExpenseRequest{
		Reference:   uuid.NewString(),
		RequesterID: actor.ID,
		Date:        date.Format(constants.DateFormat),
		Amount:      amount,
		Description: input.Description,
		AccountType: accountType,
		Status:      model.StatusPending,
	}

	id, err := rs.repo.CreateExpenseRequest(req)
	if err != nil {
		return nil, err
	}

	return rs.repo.GetExpenseRequestByID(id)
}

// ListByRequester returns the actor's own requests, newest date first.
func (rs *RequestService) ListByRequester(actor *store.User) ([]*store.ExpenseRequest, error) {
	if err := Authorize(OpListOwnRequests, actor.Role); err != nil {
		return nil, err
	}
	return rs.repo.GetRequestsByRequester(actor.ID)
}

// ListPending returns every request still waiting on at least one
// signature.
func (rs *RequestService) ListPending(actor *store.User) ([]*store.ExpenseRequestRow, error) {
	if err := Authorize(OpListPending, actor.Role); err != nil {
		return nil, err
	}
	return rs.repo.GetPendingRequests()
}

func (rs *RequestService) GetByID(actor *store.User, id int64) (*store.ExpenseRequest, error) {
	if err := Authorize(OpListPending, actor.Role); err != nil {
		return nil, err
	}
	return rs.repo.GetExpenseRequestByID(id)
}
