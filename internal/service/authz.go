package service

import "github.com/somchaipk/schoolfin/internal/model"

// Operation names every permission-checked entry point. All role checks go
// through the single table below instead of per-command checks.
type Operation string

const (
	OpCreateRequest   Operation = "submit expense requests"
	OpListOwnRequests Operation = "view own requests"
	OpListPending     Operation = "view pending approvals"
	OpApproveRequest  Operation = "approve expense requests"
	OpPostLedger      Operation = "post ledger entries"
	OpEditLedger      Operation = "edit ledger entries"
	OpViewLedger      Operation = "view ledgers"
	OpViewHistory     Operation = "view ledger history"
	OpExportLedger    Operation = "export ledgers"
)

var permissions = map[Operation]map[model.Role]bool{
	OpCreateRequest:   {model.RoleTeacher: true, model.RoleFinance: true},
	OpListOwnRequests: {model.RoleTeacher: true, model.RoleFinance: true},
	OpListPending:     {model.RoleDirector: true, model.RoleFinance: true},
	OpApproveRequest:  {model.RoleDirector: true, model.RoleFinance: true},
	OpPostLedger:      {model.RoleDirector: true, model.RoleFinance: true},
	OpEditLedger:      {model.RoleDirector: true, model.RoleFinance: true},
	OpViewLedger:      {model.RoleDirector: true, model.RoleFinance: true},
	OpViewHistory:     {model.RoleDirector: true, model.RoleFinance: true},
	OpExportLedger:    {model.RoleDirector: true, model.RoleFinance: true},
}

// Authorize checks the permission table once at the operation entry point.
func Authorize(op Operation, role model.Role) error {
	if !permissions[op][role] {
		return &AuthorizationError{Op: op, Role: role}
	}
	return nil
}
