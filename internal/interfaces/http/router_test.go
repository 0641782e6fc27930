package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/casa-esperanza/almacen-api/internal/application/auth"
	"github.com/casa-esperanza/almacen-api/internal/application/dto"
	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/application/reporting"
	"github.com/casa-esperanza/almacen-api/internal/application/stock"
	"github.com/casa-esperanza/almacen-api/internal/application/usecase"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/infrastructure/memory"
	infrapdf "github.com/casa-esperanza/almacen-api/internal/infrastructure/pdf"
	apphttp "github.com/casa-esperanza/almacen-api/internal/interfaces/http"
	"github.com/casa-esperanza/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// API completa sobre la infraestructura en memoria
// ──────────────────────────────────────────────────────────────────────────────

// buildAPI levanta la aplicación completa (router + middlewares) sobre un
// Store en memoria, igual que lo haría main con PostgreSQL.
func buildAPI(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	users := store.Users()
	canApprove := func(actorID string) bool {
		u, err := users.GetByID(actorID)
		if err != nil || u == nil || !u.Active {
			return false
		}
		return u.Role == entity.RoleAdmin || u.Role == entity.RoleCoordinador
	}

	coord := posting.NewCoordinator(
		memory.NewTxRunner(store),
		store.MovementTypes(), store.Variants(), store.Warehouses(),
		store.Donors(), canApprove, logger.Nop(),
	)
	queries := stock.NewQueryUseCase(store.Lots(), store.Movements(), store.MovementTypes(), logger.Nop())
	receiptUC := reporting.NewReceiptUseCase(
		store.Donations(), store.Donors(), store.Variants(), store.Products(),
		infrapdf.NewMarotoReceiptGenerator(""),
	)
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		WarehouseUC:   usecase.NewWarehouseUseCase(store.Warehouses()),
		CatalogUC:     usecase.NewCatalogUseCase(store.Products(), store.Variants()),
		DonorUC:       usecase.NewDonorUseCase(store.Donors()),
		Coordinator:   coord,
		StockQueries:  queries,
		ReceiptUC:     receiptUC,
		Donations:     store.Donations(),
		Sales:         store.Sales(),
		Consumptions:  store.Consumptions(),
		MovementTypes: store.MovementTypes(),
		JWTSecret:     testJWTSecret,
	})
	return app, store
}

// doJSON lanza una petición con body JSON y token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin registra un voluntario por la API pública y devuelve su
// token. El registro público no admite otros roles.
func registerAndLogin(t *testing.T, app *fiber.App) (token, userID string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "voluntario@comedor.test", Password: "secreto-123", Name: "Perfil voluntario",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decodeJSON[dto.UserResponse](t, resp)

	return loginAs(t, app, "voluntario@comedor.test"), user.ID
}

// seedAndLogin siembra directamente en el store un perfil con el rol dado
// (como lo haría un administrador o la migración inicial) y lo loguea.
func seedAndLogin(t *testing.T, app *fiber.App, store *memory.Store, role string) (token, userID string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto-123"), bcrypt.MinCost)
	require.NoError(t, err)
	id := "user-" + role
	require.NoError(t, store.Users().Create(&entity.User{
		ID: id, Name: "Perfil " + role, Email: role + "@comedor.test",
		PasswordHash: string(hash), Role: role, Active: true,
	}))
	return loginAs(t, app, role+"@comedor.test"), id
}

func loginAs(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: email, Password: "secreto-123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decodeJSON[dto.LoginResponse](t, resp)
	return login.Token
}

// seedCatalog crea almacén + producto + variante vía API y devuelve sus IDs.
func seedCatalog(t *testing.T, app *fiber.App, token string) (warehouseID, variantID string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/warehouses", token, dto.CreateWarehouseRequest{Name: "Bodega"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	warehouse := decodeJSON[dto.WarehouseResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/products", token, dto.CreateProductRequest{Name: "Arroz"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	product := decodeJSON[dto.ProductResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/variants", token, dto.CreateVariantRequest{
		ProductID: product.ID, Presentation: "bolsa 1kg", Unit: "kg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	variant := decodeJSON[dto.VariantResponse](t, resp)

	return warehouse.ID, variant.ID
}

func TestAPIRutasProtegidasSinToken(t *testing.T) {
	app, _ := buildAPI(t)
	resp := doJSON(t, app, http.MethodPost, "/api/donations", "", dto.CreateDonationRequest{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPIFlujoDonativoVentaConsumo(t *testing.T) {
	app, store := buildAPI(t)
	adminToken, _ := seedAndLogin(t, app, store, "admin")
	volToken, _ := registerAndLogin(t, app)
	warehouseID, variantID := seedCatalog(t, app, adminToken)

	// Donativo: 10 unidades entran como lote
	resp := doJSON(t, app, http.MethodPost, "/api/donations", volToken, dto.CreateDonationRequest{
		Lines: []dto.DonationLineRequest{{
			VariantID: variantID, WarehouseID: warehouseID,
			Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(8),
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	donation := decodeJSON[dto.DonationResponse](t, resp)
	require.Len(t, donation.Details, 1)
	lotID := donation.Details[0].LotID
	assert.True(t, donation.Total.Equal(decimal.NewFromInt(80)))

	// Venta de 4
	resp = doJSON(t, app, http.MethodPost, "/api/sales", volToken, dto.CreateSaleRequest{
		WarehouseID: warehouseID,
		Lines: []dto.SaleLineRequest{{
			LotID: lotID, Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(12),
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sale := decodeJSON[dto.SaleResponse](t, resp)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(48)))

	// Consumo de 3 queda pendiente
	resp = doJSON(t, app, http.MethodPost, "/api/consumptions", volToken, dto.CreateConsumptionRequest{
		LotID: lotID, Quantity: decimal.NewFromInt(3),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	consumption := decodeJSON[dto.ConsumptionResponse](t, resp)
	assert.Nil(t, consumption.ApprovedBy)

	// Existencias del lote: 10 - 4 - 3 = 3
	resp = doJSON(t, app, http.MethodGet, "/api/inventory/lots/"+lotID+"/stock", volToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stockResp := decodeJSON[dto.StockResponse](t, resp)
	assert.True(t, stockResp.Quantity.Equal(decimal.NewFromInt(3)))

	// Aprobar como voluntario: bloqueado por rol
	resp = doJSON(t, app, http.MethodPost, "/api/consumptions/"+consumption.ID+"/approve", volToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Aprobar como admin
	resp = doJSON(t, app, http.MethodPost, "/api/consumptions/"+consumption.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	approved := decodeJSON[dto.ConsumptionResponse](t, resp)
	require.NotNil(t, approved.ApprovedBy)

	// Segunda aprobación: conflicto
	resp = doJSON(t, app, http.MethodPost, "/api/consumptions/"+consumption.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// La aprobación no movió existencias
	resp = doJSON(t, app, http.MethodGet, "/api/inventory/lots/"+lotID+"/stock", volToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	after := decodeJSON[dto.StockResponse](t, resp)
	assert.True(t, after.Quantity.Equal(decimal.NewFromInt(3)))
}

func TestAPIVentaStockInsuficiente(t *testing.T) {
	app, _ := buildAPI(t)
	token, _ := registerAndLogin(t, app)
	warehouseID, variantID := seedCatalog(t, app, token)

	resp := doJSON(t, app, http.MethodPost, "/api/donations", token, dto.CreateDonationRequest{
		Lines: []dto.DonationLineRequest{{
			VariantID: variantID, WarehouseID: warehouseID,
			Quantity: decimal.NewFromInt(2), UnitCost: decimal.NewFromInt(5),
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	donation := decodeJSON[dto.DonationResponse](t, resp)
	lotID := donation.Details[0].LotID

	resp = doJSON(t, app, http.MethodPost, "/api/sales", token, dto.CreateSaleRequest{
		WarehouseID: warehouseID,
		Lines: []dto.SaleLineRequest{{
			LotID: lotID, Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(1),
		}},
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	errResp := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)

	// Nada se descontó
	resp = doJSON(t, app, http.MethodGet, "/api/inventory/lots/"+lotID+"/stock", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stockResp := decodeJSON[dto.StockResponse](t, resp)
	assert.True(t, stockResp.Quantity.Equal(decimal.NewFromInt(2)))
}

func TestAPIAjusteSoloRolesAutorizados(t *testing.T) {
	app, store := buildAPI(t)
	adminToken, _ := seedAndLogin(t, app, store, "admin")
	volToken, _ := registerAndLogin(t, app)
	warehouseID, variantID := seedCatalog(t, app, adminToken)

	resp := doJSON(t, app, http.MethodPost, "/api/donations", adminToken, dto.CreateDonationRequest{
		Lines: []dto.DonationLineRequest{{
			VariantID: variantID, WarehouseID: warehouseID,
			Quantity: decimal.NewFromInt(6), UnitCost: decimal.NewFromInt(1),
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	donation := decodeJSON[dto.DonationResponse](t, resp)
	lotID := donation.Details[0].LotID

	adjust := dto.AdjustmentRequest{
		LotID: lotID, Quantity: decimal.NewFromInt(-2), Reference: "merma por humedad",
	}

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", volToken, adjust)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", adminToken, adjust)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mov := decodeJSON[dto.MovementResponse](t, resp)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(2)), "el asiento guarda la magnitud")

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/lots/"+lotID+"/stock", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stockResp := decodeJSON[dto.StockResponse](t, resp)
	assert.True(t, stockResp.Quantity.Equal(decimal.NewFromInt(4)))
}

func TestAPIDonativoInvalido(t *testing.T) {
	app, _ := buildAPI(t)
	token, _ := registerAndLogin(t, app)

	// sin líneas: el validador lo rechaza antes de llegar al coordinador
	resp := doJSON(t, app, http.MethodPost, "/api/donations", token, dto.CreateDonationRequest{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIMovementTypesCatalogo(t *testing.T) {
	app, _ := buildAPI(t)
	token, _ := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/movement-types", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	types := decodeJSON[[]dto.MovementTypeResponse](t, resp)
	require.Len(t, types, 5)
	byCode := map[string]int{}
	for _, mt := range types {
		byCode[mt.Code] = mt.Factor
	}
	assert.Equal(t, 1, byCode["donation_in"])
	assert.Equal(t, -1, byCode["bazaar_sale_out"])
	assert.Equal(t, -1, byCode["kitchen_out"])
	assert.Equal(t, 1, byCode["adjust_in"])
	assert.Equal(t, -1, byCode["adjust_out"])
}

func TestAPIRegistroPublicoIgnoraRolSolicitado(t *testing.T) {
	app, _ := buildAPI(t)

	// el campo role del body no existe en el contrato: se descarta
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "intruso@comedor.test", "password": "secreto-123",
		"name": "Intruso", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decodeJSON[dto.UserResponse](t, resp)
	assert.Equal(t, entity.RoleVoluntario, user.Role)

	token := loginAs(t, app, "intruso@comedor.test")

	// el token emitido es de voluntario: las rutas de admin lo rechazan
	resp = doJSON(t, app, http.MethodPut, "/api/users/"+user.ID+"/role", token,
		dto.AssignRoleRequest{Role: "admin"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", token, fiber.Map{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestAPIAsignacionDeRolesSoloAdmin(t *testing.T) {
	app, store := buildAPI(t)
	adminToken, _ := seedAndLogin(t, app, store, "admin")
	volToken, volID := registerAndLogin(t, app)

	// el voluntario no puede autopromoverse
	resp := doJSON(t, app, http.MethodPut, "/api/users/"+volID+"/role", volToken,
		dto.AssignRoleRequest{Role: "coordinador"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// el admin sí lo promueve
	resp = doJSON(t, app, http.MethodPut, "/api/users/"+volID+"/role", adminToken,
		dto.AssignRoleRequest{Role: "coordinador"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	promoted := decodeJSON[dto.UserResponse](t, resp)
	assert.Equal(t, entity.RoleCoordinador, promoted.Role)

	// un login nuevo ya carga el rol de coordinador y pasa las rutas gateadas
	coordToken := loginAs(t, app, "voluntario@comedor.test")
	warehouseID, variantID := seedCatalog(t, app, coordToken)
	resp = doJSON(t, app, http.MethodPost, "/api/donations", coordToken, dto.CreateDonationRequest{
		Lines: []dto.DonationLineRequest{{
			VariantID: variantID, WarehouseID: warehouseID,
			Quantity: decimal.NewFromInt(5), UnitCost: decimal.NewFromInt(1),
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	donation := decodeJSON[dto.DonationResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", coordToken, dto.AdjustmentRequest{
		LotID: donation.Details[0].LotID, Quantity: decimal.NewFromInt(-1), Reference: "merma",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// perfil inexistente
	resp = doJSON(t, app, http.MethodPut, "/api/users/no-existe/role", adminToken,
		dto.AssignRoleRequest{Role: "coordinador"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAPIErrorInternoSinDetalles(t *testing.T) {
	app, store := buildAPI(t)
	token, _ := registerAndLogin(t, app)
	warehouseID, variantID := seedCatalog(t, app, token)

	resp := doJSON(t, app, http.MethodPost, "/api/donations", token, dto.CreateDonationRequest{
		Lines: []dto.DonationLineRequest{{
			VariantID: variantID, WarehouseID: warehouseID,
			Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(1),
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	donation := decodeJSON[dto.DonationResponse](t, resp)
	lotID := donation.Details[0].LotID

	// corromper la caché por fuera del coordinador
	require.NoError(t, store.Lots().UpdateCurrentQuantity(lotID, decimal.NewFromInt(99)))

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/lots/"+lotID+"/stock", token, nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errResp := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INTERNAL", errResp.Code)
	assert.Equal(t, "error interno", errResp.Message)
	assert.NotContains(t, errResp.Message, lotID)
	assert.NotContains(t, errResp.Message, "99")
}
