package main

import (
	"github.com/gin-gonic/gin"

	"transactionapi/internal/aggregate"
)

// Totals handler functions

// @Summary Sum transactions
// @Description Get the two-decimal sum of transactions, optionally filtered by type, with an optional credit/debit breakdown over all transactions
// @Tags totals
// @Produce json
// @Param type query string false "Transaction type" Enums(credit, debit, all) default(all)
// @Param includeBreakdown query bool false "Include credit/debit breakdown" default(false)
// @Success 200 {object} SuccessResponse{data=aggregate.SumResult} "Transaction sum calculated successfully"
// @Failure 400 {object} ErrorResponse "Invalid type"
// @Failure 500 {object} ErrorResponse "Data source error"
// @Router /api/transactions/sum [get]
func getTransactionSum(c *gin.Context) {
	var q SumQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, bindingError(err))
		return
	}

	filter, _ := aggregate.ParseFilter(q.Type)
	includeBreakdown := q.IncludeBreakdown == "true"

	result, err := txService.SumTransactions(c.Request.Context(), filter, includeBreakdown)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, result, "Transaction sum calculated successfully")
}

// @Summary Transaction statistics
// @Description Get totals, counts, average amount and per-type groups, optionally narrowed by type, amount range and date range
// @Tags totals
// @Produce json
// @Param type query string false "Transaction type" Enums(credit, debit, all) default(all)
// @Param minAmount query number false "Minimum amount (inclusive)"
// @Param maxAmount query number false "Maximum amount (inclusive)"
// @Param fromDate query string false "Earliest date, RFC3339 or YYYY-MM-DD (inclusive)"
// @Param toDate query string false "Latest date, RFC3339 or YYYY-MM-DD (inclusive)"
// @Success 200 {object} SuccessResponse{data=aggregate.Stats} "Transaction stats calculated successfully"
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Data source error"
// @Router /api/transactions/stats [get]
func getTransactionStats(c *gin.Context) {
	var q StatsQueryParams
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, bindingError(err))
		return
	}

	query, err := parseStatsQuery(q)
	if err != nil {
		writeError(c, err)
		return
	}

	stats, err := txService.Stats(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, stats, "Transaction stats calculated successfully")
}
