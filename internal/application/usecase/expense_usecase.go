package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/logger"
)

const expenseDateLayout = "2006-01-02"

// systemActor autor registrado en la bitácora cuando no hay cajero en contexto.
const systemActor = "System"

// ExpenseUseCase gastos de la tienda. Toda actualización deja una entrada en
// la bitácora por cada campo cuyo valor cambió, escrita en la misma
// transacción que el update.
type ExpenseUseCase struct {
	repo   repository.ExpenseRepository
	runner ExpenseTxRunner
	log    *logger.Logger
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, runner ExpenseTxRunner, log *logger.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, runner: runner, log: log}
}

// List lista los gastos con el nombre de su categoría.
func (uc *ExpenseUseCase) List() ([]dto.ExpenseResponse, error) {
	expenses, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Create registra un gasto nuevo.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Description == "" || in.ExpenseCategoryID == "" {
		return nil, fmt.Errorf("%w: descripción y categoría son obligatorias", domain.ErrInvalidInput)
	}
	date, err := time.Parse(expenseDateLayout, in.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, in.ExpenseDate)
	}
	expense := &entity.Expense{
		ID:                uuid.NewString(),
		Description:       in.Description,
		Amount:            in.Amount,
		ExpenseDate:       date,
		ExpenseCategoryID: in.ExpenseCategoryID,
		PaymentMethod:     in.PaymentMethod,
		Account:           in.Account,
		Notes:             in.Notes,
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(&entity.ExpenseWithCategory{Expense: *expense})
	return &resp, nil
}

// Update aplica una actualización parcial y registra en la bitácora una
// entrada por campo modificado. La fila se lee con FOR UPDATE para que el
// diff no corra contra un estado ya cambiado por otra petición.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateExpenseRequest, changedBy string) (*dto.ExpenseResponse, error) {
	if changedBy == "" {
		changedBy = systemActor
	}

	var patch repository.ExpensePatch
	patch.Description = in.Description
	patch.Amount = in.Amount
	patch.ExpenseCategoryID = in.ExpenseCategoryID
	patch.PaymentMethod = in.PaymentMethod
	patch.Account = in.Account
	patch.Notes = in.Notes
	if in.ExpenseDate != nil {
		date, err := time.Parse(expenseDateLayout, *in.ExpenseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, *in.ExpenseDate)
		}
		patch.ExpenseDate = &date
	}

	var updated *entity.Expense
	err := uc.runner.RunExpense(ctx, func(expenseRepo repository.ExpenseRepository) error {
		current, err := expenseRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		for _, change := range diffExpense(current, patch) {
			entry := &entity.ExpenseChangeLog{
				LogID:     uuid.NewString(),
				ExpenseID: id,
				FieldName: change.field,
				OldValue:  change.oldValue,
				NewValue:  change.newValue,
				ChangedBy: changedBy,
				ChangedAt: time.Now(),
			}
			if err := expenseRepo.AppendChangeLog(entry); err != nil {
				return err
			}
		}
		updated, err = expenseRepo.UpdatePartial(id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("expense_id", id).Str("changed_by", changedBy).Msg("Gasto actualizado")
	resp := toExpenseResponse(&entity.ExpenseWithCategory{Expense: *updated})
	return &resp, nil
}

// Delete elimina el gasto y, por cascada, su bitácora.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListChangeLogs retorna la bitácora de un gasto, más reciente primero.
func (uc *ExpenseUseCase) ListChangeLogs(expenseID string) ([]dto.ExpenseChangeLogResponse, error) {
	logs, err := uc.repo.ListChangeLogs(expenseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseChangeLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ExpenseChangeLogResponse{
			LogID:     l.LogID,
			ExpenseID: l.ExpenseID,
			FieldName: l.FieldName,
			OldValue:  l.OldValue,
			NewValue:  l.NewValue,
			ChangedBy: l.ChangedBy,
			ChangedAt: l.ChangedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

type expenseChange struct {
	field    string
	oldValue string
	newValue string
}

// diffExpense compara cada campo presente en el patch contra el valor
// almacenado. Las fechas se comparan por día calendario y los montos por
// igualdad numérica, no por representación textual.
func diffExpense(current *entity.Expense, patch repository.ExpensePatch) []expenseChange {
	var changes []expenseChange

	if patch.Description != nil && *patch.Description != current.Description {
		changes = append(changes, expenseChange{"description", current.Description, *patch.Description})
	}
	if patch.Amount != nil && !patch.Amount.Equal(current.Amount) {
		changes = append(changes, expenseChange{"amount", current.Amount.StringFixed(2), patch.Amount.StringFixed(2)})
	}
	if patch.ExpenseDate != nil {
		oldDate := current.ExpenseDate.Format(expenseDateLayout)
		newDate := patch.ExpenseDate.Format(expenseDateLayout)
		if oldDate != newDate {
			changes = append(changes, expenseChange{"expense_date", oldDate, newDate})
		}
	}
	if patch.ExpenseCategoryID != nil && *patch.ExpenseCategoryID != current.ExpenseCategoryID {
		changes = append(changes, expenseChange{"expense_category_id", current.ExpenseCategoryID, *patch.ExpenseCategoryID})
	}
	if patch.PaymentMethod != nil && *patch.PaymentMethod != deref(current.PaymentMethod) {
		changes = append(changes, expenseChange{"payment_method", deref(current.PaymentMethod), *patch.PaymentMethod})
	}
	if patch.Account != nil && *patch.Account != deref(current.Account) {
		changes = append(changes, expenseChange{"account", deref(current.Account), *patch.Account})
	}
	if patch.Notes != nil && *patch.Notes != deref(current.Notes) {
		changes = append(changes, expenseChange{"notes", deref(current.Notes), *patch.Notes})
	}
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toExpenseResponse(e *entity.ExpenseWithCategory) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:                e.ID,
		Description:       e.Description,
		Amount:            e.Amount,
		ExpenseDate:       e.ExpenseDate.Format(expenseDateLayout),
		ExpenseCategoryID: e.ExpenseCategoryID,
		CategoryName:      e.CategoryName,
		PaymentMethod:     e.PaymentMethod,
		Account:           e.Account,
		Notes:             e.Notes,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
}
