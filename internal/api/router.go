package api

import (
	"github.com/gin-gonic/gin"

	"expensetracker/internal/api/controller"
	"expensetracker/internal/api/middleware"
	"expensetracker/internal/repository"
)

// RegisterRoutes wires every handler onto the engine.
func RegisterRoutes(r *gin.Engine, repo repository.ExpenseRepo) {
	r.Use(middleware.Cors())

	r.GET("/api/health", controller.Health)

	expenses := r.Group("/api/expenses")
	{
		expenses.GET("", controller.ListExpenses(repo))
		expenses.POST("", controller.CreateExpense(repo))
		expenses.GET("/analytics", controller.GetAnalytics(repo))
		expenses.DELETE("/:id", controller.DeleteExpense(repo))
	}
}
