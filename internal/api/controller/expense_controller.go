package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/api/response"
	"expensetracker/internal/repository"
	"expensetracker/internal/service"
)

// Each operation is an independent handler constructed from the store
// interface alone; there is no shared controller state between them.

// ListExpenses handles GET /api/expenses. It translates the query
// parameters into a store predicate and reports the matching records newest
// first, together with their amount total.
func ListExpenses(repo repository.ExpenseRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := service.ListParams{
			DateRange:    c.Query("dateRange"),
			Categories:   queryList(c, "categories"),
			PaymentModes: queryList(c, "paymentModes"),
		}
		filter := service.ResolveFilter(params, time.Now())

		expenses, err := repo.Find(c.Request.Context(), filter)
		if err != nil {
			slog.Error("list expenses failed", "error", err)
			response.StorageError(c, "Error fetching expenses", err)
			return
		}

		response.List(c, expenses, service.SumAmounts(expenses))
	}
}

// CreateExpense handles POST /api/expenses. Validation failures come back
// as a per-field message list; on success the persisted record is returned
// with its assigned id and timestamps.
func CreateExpense(repo repository.ExpenseRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.CreateExpenseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.ValidationFailed(c, []string{"request body must be valid JSON"})
			return
		}

		expense, errs := input.Validate()
		if len(errs) > 0 {
			response.ValidationFailed(c, errs)
			return
		}

		if err := repo.Create(c.Request.Context(), &expense); err != nil {
			slog.Error("create expense failed", "error", err)
			response.StorageError(c, "Error adding expense", err)
			return
		}

		slog.Info("expense created",
			"id", expense.ID,
			"amount", expense.Amount,
			"category", expense.Category,
			"payment_mode", expense.PaymentMode)
		response.Created(c, "Expense added successfully", expense)
	}
}

// DeleteExpense handles DELETE /api/expenses/:id. Deleting an unknown id
// reports not found and leaves the store unchanged, so racing deletes of the
// same id are both safe.
func DeleteExpense(repo repository.ExpenseRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		deleted, err := repo.DeleteByID(c.Request.Context(), id)
		if err != nil {
			slog.Error("delete expense failed", "id", id, "error", err)
			response.StorageError(c, "Error deleting expense", err)
			return
		}
		if deleted == 0 {
			response.NotFound(c, "Expense not found")
			return
		}

		slog.Info("expense deleted", "id", id)
		response.OK(c, "Expense deleted successfully")
	}
}

// GetAnalytics handles GET /api/expenses/analytics.
func GetAnalytics(repo repository.ExpenseRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		expenses, err := repo.FindAllByDateAsc(c.Request.Context())
		if err != nil {
			slog.Error("analytics query failed", "error", err)
			response.StorageError(c, "Error fetching analytics", err)
			return
		}

		response.Data(c, service.BuildAnalytics(expenses))
	}
}

// Health handles GET /api/health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
}

// queryList reads a repeated query parameter, accepting both the bare name
// and the bracket form some clients send for arrays.
func queryList(c *gin.Context, name string) []string {
	values := c.QueryArray(name)
	if len(values) == 0 {
		values = c.QueryArray(name + "[]")
	}
	return values
}
