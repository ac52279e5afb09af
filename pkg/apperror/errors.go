package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic bad-input error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be positive", http.StatusBadRequest)
}

func ErrInvalidReservePercentage() *AppError {
	return New("VAL_003", "Reserve percentage must be between 0 and 1", http.StatusBadRequest)
}

func ErrInvalidHoldPeriod() *AppError {
	return New("VAL_004", "Hold period must be at least one day", http.StatusBadRequest)
}

func ErrZeroAdjustment() *AppError {
	return New("VAL_005", "Adjustment amount may not be zero", http.StatusBadRequest)
}

// ---- Reserve Ledger (RES) ----

func ErrInsufficientReserve() *AppError {
	return New("RES_001", "Insufficient reserve balance", http.StatusConflict)
}

func ErrNegativeBalance() *AppError {
	return New("RES_002", "Operation would drive reserve balance negative", http.StatusConflict)
}

func ErrHoldAlreadyReleased() *AppError {
	return New("RES_003", "Hold has already been released", http.StatusConflict)
}

func ErrSettlementRunning() *AppError {
	return New("RES_004", "A settlement batch is already running", http.StatusConflict)
}

// ---- Chargebacks (CBK) ----

func ErrDuplicateChargeback(externalID string) *AppError {
	return New("CBK_001", fmt.Sprintf("Chargeback with external id %q already exists", externalID), http.StatusConflict)
}

func ErrIllegalTransition(from, to string) *AppError {
	return New("CBK_002", fmt.Sprintf("Illegal chargeback transition from %s to %s", from, to), http.StatusConflict)
}

func ErrChargebackResolved() *AppError {
	return New("CBK_003", "Chargeback is already in a terminal state", http.StatusConflict)
}

func ErrInvalidOutcome() *AppError {
	return New("CBK_004", "Resolution outcome must be WON, LOST or ACCEPTED", http.StatusBadRequest)
}

// ---- Risk Assessment (RISK) ----

func ErrAssessmentApproved() *AppError {
	return New("RISK_001", "Assessment has already been approved", http.StatusConflict)
}

func ErrApprovalNotRequired() *AppError {
	return New("RISK_002", "Assessment does not require approval", http.StatusConflict)
}

// ---- Not found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}
