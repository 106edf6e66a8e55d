package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/application/usecase"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeExpenseRepo guarda un solo gasto y acumula su bitácora.
type fakeExpenseRepo struct {
	expense *entity.Expense
	logs    []*entity.ExpenseChangeLog
}

func (f *fakeExpenseRepo) List() ([]*entity.ExpenseWithCategory, error) { return nil, nil }
func (f *fakeExpenseRepo) Create(e *entity.Expense) error {
	f.expense = e
	return nil
}
func (f *fakeExpenseRepo) Delete(string) error { return nil }

func (f *fakeExpenseRepo) GetByIDForUpdate(id string) (*entity.Expense, error) {
	if f.expense == nil || f.expense.ID != id {
		return nil, nil
	}
	snapshot := *f.expense
	return &snapshot, nil
}

func (f *fakeExpenseRepo) UpdatePartial(id string, patch repository.ExpensePatch) (*entity.Expense, error) {
	if f.expense == nil || f.expense.ID != id {
		return nil, domain.ErrNotFound
	}
	if patch.Description != nil {
		f.expense.Description = *patch.Description
	}
	if patch.Amount != nil {
		f.expense.Amount = *patch.Amount
	}
	if patch.ExpenseDate != nil {
		f.expense.ExpenseDate = *patch.ExpenseDate
	}
	if patch.ExpenseCategoryID != nil {
		f.expense.ExpenseCategoryID = *patch.ExpenseCategoryID
	}
	if patch.PaymentMethod != nil {
		f.expense.PaymentMethod = patch.PaymentMethod
	}
	if patch.Account != nil {
		f.expense.Account = patch.Account
	}
	if patch.Notes != nil {
		f.expense.Notes = patch.Notes
	}
	snapshot := *f.expense
	return &snapshot, nil
}

func (f *fakeExpenseRepo) AppendChangeLog(log *entity.ExpenseChangeLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeExpenseRepo) ListChangeLogs(string) ([]*entity.ExpenseChangeLog, error) {
	return f.logs, nil
}

// fakeExpenseRunner invoca el callback directamente sobre el fake.
type fakeExpenseRunner struct {
	repo *fakeExpenseRepo
}

func (r *fakeExpenseRunner) RunExpense(_ context.Context, fn func(repository.ExpenseRepository) error) error {
	return fn(r.repo)
}

func newExpenseFixture() (*usecase.ExpenseUseCase, *fakeExpenseRepo) {
	repo := &fakeExpenseRepo{
		expense: &entity.Expense{
			ID:                "e1",
			Description:       "Alquiler del local",
			Amount:            dec("5000.00"),
			ExpenseDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			ExpenseCategoryID: "cat-rent",
			PaymentMethod:     strPtr("cash"),
		},
	}
	return usecase.NewExpenseUseCase(repo, &fakeExpenseRunner{repo: repo}, testLogger()), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del diff y la bitácora
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseUpdate_UnaEntradaPorCampoModificado(t *testing.T) {
	uc, repo := newExpenseFixture()

	out, err := uc.Update(context.Background(), "e1", dto.UpdateExpenseRequest{
		Amount:      decPtr("5500.00"),
		Description: strPtr("Alquiler del local marzo"),
	}, "Dueño")
	require.NoError(t, err)

	require.Len(t, repo.logs, 2, "una entrada por cada campo que cambió")

	fields := map[string]*entity.ExpenseChangeLog{}
	for _, l := range repo.logs {
		fields[l.FieldName] = l
	}
	require.Contains(t, fields, "amount")
	assert.Equal(t, "5000.00", fields["amount"].OldValue)
	assert.Equal(t, "5500.00", fields["amount"].NewValue)
	assert.Equal(t, "Dueño", fields["amount"].ChangedBy)

	require.Contains(t, fields, "description")
	assert.Equal(t, "Alquiler del local", fields["description"].OldValue)

	assert.True(t, out.Amount.Equal(dec("5500.00")))
}

func TestExpenseUpdate_ValoresIguales_SinBitacora(t *testing.T) {
	uc, repo := newExpenseFixture()

	_, err := uc.Update(context.Background(), "e1", dto.UpdateExpenseRequest{
		Amount:      decPtr("5000.00"),
		Description: strPtr("Alquiler del local"),
	}, "Dueño")
	require.NoError(t, err)

	assert.Empty(t, repo.logs, "reenviar los mismos valores no genera entradas")
}

func TestExpenseUpdate_FechaMismoDia_SinBitacora(t *testing.T) {
	uc, repo := newExpenseFixture()

	// Mismo día calendario que el almacenado.
	_, err := uc.Update(context.Background(), "e1", dto.UpdateExpenseRequest{
		ExpenseDate: strPtr("2025-03-01"),
	}, "Dueño")
	require.NoError(t, err)

	assert.Empty(t, repo.logs, "las fechas se comparan por día calendario")
}

func TestExpenseUpdate_FechaDistinta_GeneraBitacora(t *testing.T) {
	uc, repo := newExpenseFixture()

	_, err := uc.Update(context.Background(), "e1", dto.UpdateExpenseRequest{
		ExpenseDate: strPtr("2025-03-05"),
	}, "Dueño")
	require.NoError(t, err)

	require.Len(t, repo.logs, 1)
	assert.Equal(t, "expense_date", repo.logs[0].FieldName)
	assert.Equal(t, "2025-03-01", repo.logs[0].OldValue)
	assert.Equal(t, "2025-03-05", repo.logs[0].NewValue)
}

func TestExpenseUpdate_SinCajero_RegistraSystem(t *testing.T) {
	uc, repo := newExpenseFixture()

	_, err := uc.Update(context.Background(), "e1", dto.UpdateExpenseRequest{
		Amount: decPtr("6000.00"),
	}, "")
	require.NoError(t, err)

	require.Len(t, repo.logs, 1)
	assert.Equal(t, "System", repo.logs[0].ChangedBy,
		"sin cajero en contexto la bitácora registra System")
}

func TestExpenseUpdate_GastoInexistente_NotFound(t *testing.T) {
	uc, _ := newExpenseFixture()

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateExpenseRequest{
		Amount: decPtr("100.00"),
	}, "Dueño")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestExpenseUpdate_FechaMalFormada_Rechazada(t *testing.T) {
	uc, repo := newExpenseFixture()

	_, err := uc.Update(context.Background(), "e1", dto.UpdateExpenseRequest{
		ExpenseDate: strPtr("05/03/2025"),
	}, "Dueño")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, repo.logs)
}

func TestExpenseCreate_FechaYCamposObligatorios(t *testing.T) {
	uc, repo := newExpenseFixture()

	out, err := uc.Create(dto.CreateExpenseRequest{
		Description:       "Factura de luz",
		Amount:            dec("320.50"),
		ExpenseDate:       "2025-03-10",
		ExpenseCategoryID: "cat-utilities",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", out.ExpenseDate)
	assert.Equal(t, "Factura de luz", repo.expense.Description)

	_, err = uc.Create(dto.CreateExpenseRequest{
		Description: "", ExpenseCategoryID: "cat-utilities", ExpenseDate: "2025-03-10",
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
