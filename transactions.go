package main

import (
	"github.com/gin-gonic/gin"
)

// Transaction handler functions

// @Summary List transactions
// @Description Get every transaction from the configured data source. Remote sources may return an opaque cursor.
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (validated only)" minimum(1)
// @Param pageSize query int false "Page size (validated only)" minimum(1) maximum(100)
// @Param page_size query int false "Alias of pageSize"
// @Success 200 {object} SuccessResponse{data=service.ListResult} "Transactions retrieved successfully"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} ErrorResponse "Data source error"
// @Router /api/transactions [get]
func getTransactions(c *gin.Context) {
	// Pagination is validated for consistency with the other endpoints but the full list is returned
	if _, _, err := parsePaginationParams(c); err != nil {
		writeError(c, err)
		return
	}

	result, err := txService.ListTransactions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, result, "Transactions retrieved successfully")
}

// @Summary Count transactions
// @Description Get the number of transactions on a page together with pagination metadata
// @Tags transactions
// @Produce json
// @Param page query int false "Page number" minimum(1) default(1)
// @Param pageSize query int false "Page size" minimum(1) maximum(100) default(10)
// @Param page_size query int false "Alias of pageSize"
// @Success 200 {object} SuccessResponse{data=service.CountResult} "Transaction count retrieved successfully"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} ErrorResponse "Data source error"
// @Router /api/transactions/count [get]
func getTransactionCount(c *gin.Context) {
	page, pageSize, err := parsePaginationParams(c)
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := txService.CountTransactions(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, result, "Transaction count retrieved successfully")
}

// @Summary Page through the local dataset
// @Description Get one page of the local transaction dataset regardless of the configured data source
// @Tags transactions
// @Produce json
// @Param page query int false "Page number" minimum(1) default(1)
// @Param pageSize query int false "Page size" minimum(1) maximum(100) default(10)
// @Param page_size query int false "Alias of pageSize"
// @Success 200 {object} SuccessResponse{data=service.PageResult} "Mock transactions retrieved successfully"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} ErrorResponse "Local dataset unavailable"
// @Router /api/transactions/mock [get]
func getMockTransactions(c *gin.Context) {
	page, pageSize, err := parsePaginationParams(c)
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := txService.LocalPage(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, result, "Mock transactions retrieved successfully")
}
