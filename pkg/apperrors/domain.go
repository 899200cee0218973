package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок маркетплейса:
аккаунты, вакансии, отклики, сообщения.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Jobs ---

// ErrJobNotFound - вакансия не найдена.
var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)

// ErrNotJobOwner - вакансия принадлежит другому работодателю.
var ErrNotJobOwner = New(
	CodeForbidden,
	"jobs",
	"You do not own this job posting",
	http.StatusForbidden,
)

// --- Applications ---

// ErrAlreadyApplied - отклик на эту вакансию уже существует.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"applications",
	"Already applied to this job",
	http.StatusConflict,
)

// ErrApplicationNotFound - отклик не найден.
var ErrApplicationNotFound = New(
	CodeNotFound,
	"applications",
	"Application not found",
	http.StatusNotFound,
)

// ErrApplicationNotPending - статус уже финальный, повторный переход запрещен.
var ErrApplicationNotPending = New(
	CodeInvalidStatus,
	"applications",
	"Application has already been accepted or rejected",
	http.StatusConflict,
)

// --- Messages ---

// ErrMessageNotFound - сообщение не найдено.
var ErrMessageNotFound = New(
	CodeNotFound,
	"messages",
	"Message not found",
	http.StatusNotFound,
)

// ErrNotMessageParticipant - пользователь не отправитель и не получатель.
var ErrNotMessageParticipant = New(
	CodeForbidden,
	"messages",
	"User not authorized to access this message",
	http.StatusForbidden,
)

// ErrNotMessageReceiver - только получатель может отметить прочтение.
var ErrNotMessageReceiver = New(
	CodeForbidden,
	"messages",
	"Only the receiver can mark a message as read",
	http.StatusForbidden,
)

// --- Users / Profiles ---

// ErrUserNotFound - пользователь не найден.
var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)
