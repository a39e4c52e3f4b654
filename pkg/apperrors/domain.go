package apperrors

import "net/http"

// =========================================================================
// Фабричные функции
// =========================================================================

func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrRequestFailed - запрос к API не дошел или ответ не разобран
func ErrRequestFailed(err error, domain string) *AppError {
	return Wrap(err, CodeRequestFailed, domain, "Request to the job portal API failed", http.StatusBadGateway)
}

// =========================================================================
// Сессия и учетные данные
// =========================================================================

// ErrMissingToken - в сессии нет accessToken. Текст совпадает с тем, что видит пользователь.
var ErrMissingToken = New(
	CodeMissingCredentials,
	"auth",
	"Access token is missing",
	http.StatusUnauthorized,
)

// ErrMissingUserID - в сессии нет _id (соискателя или компании)
var ErrMissingUserID = New(
	CodeMissingCredentials,
	"auth",
	"User id is missing",
	http.StatusUnauthorized,
)

var ErrSessionNotFound = New(
	CodeNotFound,
	"session",
	"Session not found",
	http.StatusNotFound,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Access token has expired",
	http.StatusUnauthorized,
)

var ErrWrongRole = New(
	CodeForbidden,
	"auth",
	"This page is not available for your account type",
	http.StatusForbidden,
)

// =========================================================================
// Отклики и вакансии
// =========================================================================

var ErrAlreadyApplied = New(
	CodeAlreadyApplied,
	"application",
	"You have already applied for this job",
	http.StatusConflict,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// --- Загрузка изображений компании ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
