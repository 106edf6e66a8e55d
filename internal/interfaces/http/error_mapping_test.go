package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/application/usecase"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	apphttp "github.com/kiranapos/pos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes — reproducen el contrato del adaptador de Postgres: violación de
// unique -> domain.ErrDuplicate; UPDATE sin fila -> (nil, nil).
// ──────────────────────────────────────────────────────────────────────────────

type duplicateCategoryRepo struct{}

func (duplicateCategoryRepo) List() ([]*entity.Category, error) { return nil, nil }
func (duplicateCategoryRepo) Create(*entity.Category) error     { return domain.ErrDuplicate }
func (duplicateCategoryRepo) UpdatePartial(string, repository.CategoryPatch) (*entity.Category, error) {
	return nil, nil
}
func (duplicateCategoryRepo) Delete(string) error { return nil }

func buildCategoryApp(repo repository.CategoryRepository) *fiber.App {
	handler := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repo))
	app := fiber.New()
	app.Post("/api/categories", handler.Create)
	app.Put("/api/categories/:id", handler.Update)
	return app
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del mapeo de errores de dominio a HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_NombreDuplicado_Retorna409(t *testing.T) {
	app := buildCategoryApp(duplicateCategoryRepo{})

	resp := jsonRequest(t, app, http.MethodPost, "/api/categories", `{"name":"Lácteos"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode,
		"un nombre repetido responde conflicto, no se crea fila")
	body := decodeError(t, resp)
	assert.Equal(t, "DUPLICATE", body.Code)
}

func TestCategoryUpdate_IDInexistente_Retorna404(t *testing.T) {
	app := buildCategoryApp(duplicateCategoryRepo{})

	resp := jsonRequest(t, app, http.MethodPut, "/api/categories/no-existe", `{"name":"Lácteos"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}
