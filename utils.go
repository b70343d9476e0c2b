package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"transactionapi/internal/aggregate"
	"transactionapi/internal/apperror"
	"transactionapi/internal/logger"
	"transactionapi/internal/pagination"
	"transactionapi/internal/service"
)

// Validation functions

// validatePaginationParams checks the raw pagination parameters and reports every problem found.
// A present but empty page is invalid. An empty pageSize defers to page_size.
func validatePaginationParams(q PaginationQuery) []apperror.FieldError {
	verr := apperror.NewValidationError(apperror.MsgValidationFailed, nil)

	if q.Page != nil {
		page, err := strconv.Atoi(*q.Page)
		if err != nil {
			verr = verr.WithFieldError("page", "Page must be a valid number", *q.Page)
		} else if page < 1 {
			verr = verr.WithFieldError("page", "Page must be greater than 0", page)
		}
	}

	if raw := q.pageSize(); raw != nil {
		pageSize, err := strconv.Atoi(*raw)
		if err != nil {
			verr = verr.WithFieldError("pageSize", "Page size must be a valid number", *raw)
		} else if pageSize < 1 {
			verr = verr.WithFieldError("pageSize", "Page size must be greater than 0", pageSize)
		} else if pageSize > pagination.MaxPageSize {
			verr = verr.WithFieldError("pageSize", fmt.Sprintf("Page size must not exceed %d", pagination.MaxPageSize), pageSize)
		}
	}

	return verr.ValidationErrors
}

// pageSize returns pageSize, falling back to page_size when pageSize is absent or empty
func (q PaginationQuery) pageSize() *string {
	if q.PageSize != nil && *q.PageSize != "" {
		return q.PageSize
	}
	return q.PageSizeAlt
}

// paginationQuery reads the pagination parameters, keeping present-but-empty values
func paginationQuery(c *gin.Context) PaginationQuery {
	var q PaginationQuery
	if v, ok := c.GetQuery("page"); ok {
		q.Page = &v
	}
	if v, ok := c.GetQuery("pageSize"); ok {
		q.PageSize = &v
	}
	if v, ok := c.GetQuery("page_size"); ok {
		q.PageSizeAlt = &v
	}
	return q
}

// parsePaginationParams reads, validates and parses page and page size, applying defaults
func parsePaginationParams(c *gin.Context) (page, pageSize int, err error) {
	q := paginationQuery(c)
	if fieldErrors := validatePaginationParams(q); len(fieldErrors) > 0 {
		return 0, 0, apperror.NewValidationError(apperror.MsgValidationFailed, fieldErrors)
	}

	page, pageSize = pagination.DefaultPage, pagination.DefaultPageSize
	if q.Page != nil {
		page, _ = strconv.Atoi(*q.Page)
	}
	if raw := q.pageSize(); raw != nil {
		pageSize, _ = strconv.Atoi(*raw)
	}

	return page, pageSize, nil
}

// parseStatsQuery converts the stats query parameters into service filters
func parseStatsQuery(q StatsQueryParams) (service.StatsQuery, error) {
	verr := apperror.NewValidationError(apperror.MsgValidationFailed, nil)
	query := service.StatsQuery{Filter: aggregate.FilterAll}

	if q.Type != "" {
		query.Filter = aggregate.Filter(q.Type)
	}

	parseAmount := func(field, raw string) *float64 {
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			verr = verr.WithFieldError(field, "Amount must be a valid number", raw)
			return nil
		}
		return &v
	}

	parseDate := func(field, raw string) *time.Time {
		if raw == "" {
			return nil
		}
		t, ok := aggregate.ParseDate(raw)
		if !ok {
			verr = verr.WithFieldError(field, "Date must be RFC3339 or YYYY-MM-DD", raw)
			return nil
		}
		return &t
	}

	query.MinAmount = parseAmount("minAmount", q.MinAmount)
	query.MaxAmount = parseAmount("maxAmount", q.MaxAmount)
	query.From = parseDate("fromDate", q.FromDate)
	query.To = parseDate("toDate", q.ToDate)

	if query.MinAmount != nil && query.MaxAmount != nil && *query.MinAmount > *query.MaxAmount {
		verr = verr.WithFieldError("minAmount", "minAmount must not exceed maxAmount", *query.MinAmount)
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		verr = verr.WithFieldError("fromDate", "fromDate must not be after toDate", q.FromDate)
	}

	if len(verr.ValidationErrors) > 0 {
		return service.StatsQuery{}, verr
	}
	return query, nil
}

// bindingError converts gin binding failures into a validation error with field details
func bindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.NewValidationError(err.Error(), nil)
	}

	fieldErrors := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   lowerFirst(fe.Field()),
			Message: fieldErrorMessage(fe),
			Value:   fe.Value(),
		})
	}
	return apperror.NewValidationError(apperror.MsgValidationFailed, fieldErrors)
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	}
	return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// Response helpers

// writeSuccess writes the success envelope
func writeSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// writeError converts err to the error envelope. Outside development,
// unexpected errors are reported without their details.
func writeError(c *gin.Context, err error) {
	appErr := apperror.As(err)
	log := logger.FromContext(c.Request.Context())

	if appErr.StatusCode >= http.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg(appErr.Message)
	} else {
		log.Warn().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg(appErr.Message)
	}

	resp := ErrorResponse{
		Success:          false,
		Error:            appErr.Code,
		Message:          appErr.Message,
		StatusCode:       appErr.StatusCode,
		ValidationErrors: appErr.ValidationErrors,
	}

	development := appConfig == nil || appConfig.IsDevelopment()
	if !development && !appErr.Operational {
		resp = ErrorResponse{
			Success:    false,
			Error:      apperror.CodeInternal,
			Message:    apperror.MsgSomethingWentWrong,
			StatusCode: http.StatusInternalServerError,
		}
	}

	if development {
		resp.Timestamp = time.Now().UTC().Format(time.RFC3339)
		resp.URL = c.Request.URL.RequestURI()
		resp.Method = c.Request.Method
	}

	c.AbortWithStatusJSON(resp.StatusCode, resp)
}
