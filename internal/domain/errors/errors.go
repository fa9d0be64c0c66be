package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails or WithMessage still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No se encontró el usuario",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Este correo electrónico ya está registrado",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"No se pudo crear el usuario",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"No se pudo actualizar el usuario",
		"",
	)

	ErrNotVisitadora = NewBaseError(
		http.StatusBadRequest,
		"NOT_VISITADORA",
		"El usuario indicado no es una visitadora activa",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Correo o contraseña incorrectos",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"Tu cuenta ha sido desactivada. Contacta al administrador.",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Sesión inválida o expirada",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"La sesión ha expirado",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"La contraseña debe tener al menos 6 caracteres",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	ErrInvalidPeriod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERIOD",
		"Mes o año inválido",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"La fecha inicial debe ser anterior a la fecha final",
		"",
	)

	// Physician-related errors
	ErrPhysicianNotFound = NewBaseError(
		http.StatusNotFound,
		"PHYSICIAN_NOT_FOUND",
		"No se encontró el médico",
		"",
	)

	ErrPhysicianRequired = NewBaseError(
		http.StatusBadRequest,
		"PHYSICIAN_REQUIRED",
		"Por favor selecciona un médico",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Las coordenadas deben incluir latitud y longitud válidas",
		"",
	)

	// Visit-related errors
	ErrVisitNotFound = NewBaseError(
		http.StatusNotFound,
		"VISIT_NOT_FOUND",
		"No se encontró la visita",
		"",
	)

	ErrLocationRequired = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_REQUIRED",
		"Por favor captura tu ubicación GPS",
		"",
	)

	ErrSignatureRequired = NewBaseError(
		http.StatusBadRequest,
		"SIGNATURE_REQUIRED",
		"Por favor captura la firma",
		"",
	)

	ErrSignatureInvalid = NewBaseError(
		http.StatusBadRequest,
		"SIGNATURE_INVALID",
		"La firma debe ser una imagen PNG válida",
		"",
	)

	ErrSignatureUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"SIGNATURE_UPLOAD_FAILED",
		"No se pudo subir la firma",
		"",
	)

	// Commission-related errors
	ErrCommissionNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMISSION_NOT_FOUND",
		"No se encontró la comisión",
		"",
	)

	ErrCommissionAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"COMMISSION_ALREADY_PAID",
		"Esta comisión ya fue pagada",
		"",
	)

	ErrCommissionNotAssignedToYou = NewBaseError(
		http.StatusForbidden,
		"COMMISSION_NOT_ASSIGNED",
		"Esta comisión está asignada a otra visitadora",
		"",
	)

	ErrInvalidCommissionRule = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COMMISSION_RULE",
		"Los porcentajes deben estar entre 0 y 100 y las bases no pueden ser negativas",
		"",
	)

	ErrAmountMustBePositive = NewBaseError(
		http.StatusBadRequest,
		"AMOUNT_MUST_BE_POSITIVE",
		"Ingresa un monto válido mayor a 0",
		"",
	)

	ErrRecipientRequired = NewBaseError(
		http.StatusBadRequest,
		"RECIPIENT_REQUIRED",
		"Ingresa el nombre de quien recibe",
		"",
	)

	// Import-related errors
	ErrImportParse = NewBaseError(
		http.StatusBadRequest,
		"IMPORT_PARSE_FAILED",
		"Error al leer el archivo. Verifica que sea un Excel válido.",
		"",
	)

	ErrImportEmpty = NewBaseError(
		http.StatusBadRequest,
		"IMPORT_EMPTY",
		"No se encontraron comisiones válidas en el archivo",
		"",
	)

	ErrImportGeneratedColumn = NewBaseError(
		http.StatusInternalServerError,
		"IMPORT_GENERATED_COLUMN",
		"Error de configuración en la base de datos. Contacta al administrador.",
		"",
	)

	ErrImportDuplicate = NewBaseError(
		http.StatusConflict,
		"IMPORT_DUPLICATE",
		"Ya existen comisiones para este mes. Elimina las existentes primero.",
		"",
	)

	ErrImportPermission = NewBaseError(
		http.StatusForbidden,
		"IMPORT_PERMISSION_DENIED",
		"No tienes permisos para realizar esta operación.",
		"",
	)

	ErrImportFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"IMPORT_FAILED",
		"Error al importar comisiones",
		"",
	)

	// Report-related errors
	ErrReportFailed = NewBaseError(
		http.StatusInternalServerError,
		"REPORT_FAILED",
		"Error al generar el reporte",
		"",
	)

	ErrUnsupportedFormat = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FORMAT",
		"Formato de reporte no soportado",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"No se encontró el dispositivo",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Error en la transacción de base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la operación en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
