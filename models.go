package main

import (
	"transactionapi/internal/apperror"
)

// SuccessResponse wraps every successful payload
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Success          bool                  `json:"success"`
	Error            string                `json:"error"`
	Message          string                `json:"message"`
	StatusCode       int                   `json:"statusCode"`
	ValidationErrors []apperror.FieldError `json:"validationErrors,omitempty"`

	// Only set in development
	Timestamp string `json:"timestamp,omitempty"`
	URL       string `json:"url,omitempty"`
	Method    string `json:"method,omitempty"`
}

// PaginationQuery holds the raw pagination query parameters, nil when absent.
// pageSize and page_size are both accepted, pageSize wins when both are set.
type PaginationQuery struct {
	Page        *string
	PageSize    *string
	PageSizeAlt *string
}

// SumQuery holds the query parameters of the sum endpoint
type SumQuery struct {
	Type             string `form:"type" binding:"omitempty,oneof=credit debit all"`
	IncludeBreakdown string `form:"includeBreakdown"`
}

// StatsQueryParams holds the query parameters of the stats endpoint
type StatsQueryParams struct {
	Type      string `form:"type" binding:"omitempty,oneof=credit debit all"`
	MinAmount string `form:"minAmount"`
	MaxAmount string `form:"maxAmount"`
	FromDate  string `form:"fromDate"`
	ToDate    string `form:"toDate"`
}

// WelcomeResponse describes the API at its root
type WelcomeResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse reports process liveness
type HealthResponse struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Uptime    float64     `json:"uptime"`
	Memory    MemoryStats `json:"memory"`
	Source    string      `json:"source"`
}

// MemoryStats is a subset of runtime.MemStats in bytes
type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapInUse  uint64 `json:"heapInUse"`
	NumGC      uint32 `json:"numGC"`
}
