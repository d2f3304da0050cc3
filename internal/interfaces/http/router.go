package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almoxapp/almoxarifado-api/internal/application/ledger"
	"github.com/almoxapp/almoxarifado-api/internal/application/query"
	"github.com/almoxapp/almoxarifado-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	UserUC          *usecase.UserUseCase
	Ledger          *ledger.LedgerUseCase
	TransactionList *query.TransactionListUseCase
	DashboardUC     *query.DashboardUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Patch("/:id", productHandler.SetQuantity)
	products.Patch("/:id/threshold", productHandler.SetThreshold)
	products.Delete("/:id", productHandler.Delete)

	// Users (funcionários)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)

	// Transactions (movimentações)
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.Ledger, deps.TransactionList)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.ApplyMovement)
	transactions.Post("/batch", transactionHandler.ApplyBatch)

	// Dashboard (somente leitura)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
}
