package apiclient

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobportal_front/pkg/apperrors"
)

// legacyAlreadyApplied - старые версии API отдают только текст без code
const legacyAlreadyApplied = "already applied"

// classify превращает ответ бэкенда в AppError с кодом.
// Вызывающий код сравнивает коды, а не текст сообщения.
func classify(status int, raw []byte, domain string) *apperrors.AppError {
	var body apiErrorBody
	_ = json.Unmarshal(raw, &body)

	message := strings.TrimSpace(body.Message)
	if message == "" {
		message = strings.TrimSpace(body.Error)
	}
	if message == "" {
		message = http.StatusText(status)
	}

	code := apperrors.ErrorCode(strings.ToUpper(strings.TrimSpace(body.Code)))
	if code == apperrors.CodeAlreadyApplied ||
		(code == "" && status >= 400 && status < 500 && strings.Contains(strings.ToLower(message), legacyAlreadyApplied)) {
		return apperrors.New(apperrors.CodeAlreadyApplied, domain, message, http.StatusConflict)
	}

	httpCode := status
	if status >= 500 {
		httpCode = http.StatusBadGateway
	}

	if code == "" {
		code = codeForStatus(status)
	}
	return apperrors.New(code, domain, message, httpCode)
}

func codeForStatus(status int) apperrors.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return apperrors.CodeUnauthorized
	case http.StatusForbidden:
		return apperrors.CodeForbidden
	case http.StatusNotFound:
		return apperrors.CodeNotFound
	case http.StatusConflict:
		return apperrors.CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.CodeValidationFailed
	case http.StatusRequestEntityTooLarge:
		return apperrors.CodeLimitExceeded
	default:
		return apperrors.CodeExternalServiceError
	}
}
