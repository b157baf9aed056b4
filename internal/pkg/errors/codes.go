package errors

import "net/http"

// Error code constants.
// Errors carry code + params; the dashboard frontend handles translation.

// Batch error codes.
const (
	CodeBatchNotFound = "BATCH_NOT_FOUND"
)

// Master data error codes.
const (
	CodePlantNotFound    = "PLANT_NOT_FOUND"
	CodeLineNotFound     = "LINE_NOT_FOUND"
	CodeProductNotFound  = "PRODUCT_NOT_FOUND"
	CodeSupplierNotFound = "SUPPLIER_NOT_FOUND"
)

// Filter validation error codes.
const (
	CodeInvalidTimeRange   = "INVALID_TIME_RANGE"
	CodeInvalidCustomRange = "INVALID_CUSTOM_RANGE"
	CodeInvalidShift       = "INVALID_SHIFT"
	CodeInvalidDate        = "INVALID_DATE"
)

// Session/role error codes.
const (
	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodeUnknownRole     = "UNKNOWN_ROLE"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Dataset/report error codes.
const (
	CodeRegenerateBusy = "DATASET_REGENERATE_BUSY"
	CodeReportFailed   = "REPORT_GENERATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrBatchNotFoundf creates a batch not found error.
func ErrBatchNotFoundf(batchID string) *AppError {
	return &AppError{
		Code:       CodeBatchNotFound,
		Message:    "batch not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"batch_id": batchID},
	}
}

// ErrInvalidCustomRangef creates a bad request error for a custom time range
// missing one or both bounds.
func ErrInvalidCustomRangef() *AppError {
	return &AppError{
		Code:       CodeInvalidCustomRange,
		Message:    "custom time range requires both start and end",
		HTTPStatus: http.StatusBadRequest,
	}
}

// ErrUnknownRolef creates an unknown role error.
func ErrUnknownRolef(role string) *AppError {
	return &AppError{
		Code:       CodeUnknownRole,
		Message:    "no default view configured for role",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"role": role},
	}
}
