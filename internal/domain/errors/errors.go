package errors

import (
	"net/http"

	"pos/internal/errors"
)

// Category groups business errors by how the caller is expected to react.
type Category string

const (
	// CategoryValidation aborts the operation and leaves state unchanged.
	CategoryValidation Category = "validation"
	// CategoryPersistence is logged; the in-memory effect is kept.
	CategoryPersistence Category = "persistence"
	// CategoryFormat rejects malformed input documents such as backups.
	CategoryFormat Category = "format"
	CategoryNotFound Category = "not_found"
	CategoryAuth     Category = "auth"
	CategoryInternal Category = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int      // HTTP status code
	ErrorCode() string  // Business error code
	Message() string    // User-friendly error message
	Details() string    // Detailed error information (optional)
	Category() Category // Error taxonomy bucket
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	category  Category
}

// NewBaseError creates a new base error
func NewBaseError(category Category, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
		category:  category,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on error code so that WithDetails copies still compare equal
// to the predefined error they were derived from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Category returns the taxonomy bucket of the error
func (e *BaseError) Category() Category {
	return e.category
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		category:  e.category,
	}
}

// IsValidation reports whether err carries a validation failure.
func IsValidation(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.Category() == CategoryValidation
}

// Predefined error types
var (
	// Cart and stock errors
	ErrOutOfStock = NewBaseError(
		CategoryValidation,
		http.StatusConflict,
		"OUT_OF_STOCK",
		"Stok produk habis",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		CategoryValidation,
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Stok tidak mencukupi",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		CategoryValidation,
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Jumlah tidak valid",
		"",
	)

	ErrEmptyCart = NewBaseError(
		CategoryValidation,
		http.StatusConflict,
		"EMPTY_CART",
		"Keranjang masih kosong",
		"",
	)

	ErrConfirmationRequired = NewBaseError(
		CategoryValidation,
		http.StatusPreconditionRequired,
		"CONFIRMATION_REQUIRED",
		"Tindakan ini memerlukan konfirmasi",
		"",
	)

	ErrItemInCart = NewBaseError(
		CategoryValidation,
		http.StatusConflict,
		"ITEM_IN_CART",
		"Item masih ada di keranjang",
		"",
	)

	// Checkout errors
	ErrNoPaymentMethod = NewBaseError(
		CategoryValidation,
		http.StatusConflict,
		"NO_PAYMENT_METHOD",
		"Metode pembayaran belum dipilih",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		CategoryValidation,
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"Metode pembayaran tidak valid",
		"",
	)

	ErrInsufficientPayment = NewBaseError(
		CategoryValidation,
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_PAYMENT",
		"Uang yang diterima kurang dari total",
		"",
	)

	// Catalog and settings errors
	ErrInvalidItem = NewBaseError(
		CategoryValidation,
		http.StatusBadRequest,
		"INVALID_ITEM",
		"Data item tidak valid",
		"",
	)

	ErrInvalidSettings = NewBaseError(
		CategoryValidation,
		http.StatusBadRequest,
		"INVALID_SETTINGS",
		"Pengaturan tidak valid",
		"",
	)

	ErrValidationFailed = NewBaseError(
		CategoryValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validasi data masukan gagal",
		"",
	)

	// Backup errors
	ErrInvalidBackupFormat = NewBaseError(
		CategoryFormat,
		http.StatusBadRequest,
		"INVALID_BACKUP_FORMAT",
		"Format file backup tidak valid",
		"",
	)

	ErrPersistenceFailure = NewBaseError(
		CategoryPersistence,
		http.StatusInternalServerError,
		"PERSISTENCE_FAILURE",
		"Gagal menyimpan data",
		"",
	)

	// Not found errors
	ErrItemNotFound = NewBaseError(
		CategoryNotFound,
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item tidak ditemukan",
		"",
	)

	ErrCartLineNotFound = NewBaseError(
		CategoryNotFound,
		http.StatusNotFound,
		"CART_LINE_NOT_FOUND",
		"Item tidak ada di keranjang",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		CategoryNotFound,
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pesanan tidak ditemukan",
		"",
	)

	ErrBackupNotFound = NewBaseError(
		CategoryNotFound,
		http.StatusNotFound,
		"BACKUP_NOT_FOUND",
		"File backup tidak ditemukan",
		"",
	)

	ErrNotFound = NewBaseError(
		CategoryNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"Sumber daya tidak ditemukan",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		CategoryAuth,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Nama pengguna atau kata sandi salah",
		"",
	)

	ErrUnauthorized = NewBaseError(
		CategoryAuth,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Token akses tidak valid atau sudah kedaluwarsa",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		CategoryInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Terjadi kesalahan pada sistem",
		"",
	)
)

// StorageError represents a failure of an external storage backend, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the backend error
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return ErrPersistenceFailure.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return ErrPersistenceFailure.Message()
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}

// Category returns the taxonomy bucket of the error
func (e *StorageError) Category() Category {
	return CategoryPersistence
}
