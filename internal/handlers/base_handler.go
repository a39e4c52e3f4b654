package handlers

import (
	"strconv"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/middleware"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
	"jobportal_front/internal/validator"
	"jobportal_front/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
	stores    *store.Registry
}

func NewBaseHandler(v *validator.Validator, stores *store.Registry) *BaseHandler {
	return &BaseHandler{
		validator: v,
		stores:    stores,
	}
}

// ============================================================================
// 2. Сессия и состояние страницы
// ============================================================================

// Session - сессия браузера из SessionMiddleware. Без middleware возвращает
// пустую анонимную сессию, чтобы сервисы отказали с "Access token is missing".
func (h *BaseHandler) Session(c *gin.Context) *session.Session {
	if sess := middleware.CurrentSession(c); sess != nil {
		return sess
	}
	logger.CtxWarn(c.Request.Context(), "Session not found in context", "path", c.Request.URL.Path)
	return session.New("")
}

// State - снимок состояния сессии после выполненных thunk-ов
func (h *BaseHandler) State(c *gin.Context) store.State {
	return h.stores.For(h.Session(c).ID).Snapshot()
}

// ============================================================================
// 3. Методы привязки и валидации
// ============================================================================

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	ctx := c.Request.Context()
	var vErr *validator.ValidationError
	if apperrors.As(err, &vErr) {
		logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, vErr.AppError())
	} else {
		logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

// ============================================================================
// 4. Обработчики ошибок
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ============================================================================
// 5. Функции парсинга
// ============================================================================

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func ParseQueryBool(c *gin.Context, key string) bool {
	value, err := strconv.ParseBool(c.Query(key))
	return err == nil && value
}

// ParsePagination - page с 1, page_size по умолчанию как в таблицах интерфейса
func ParsePagination(c *gin.Context, defaultPageSize int) (page int, pageSize int) {
	const maxPageSize = 100

	page = ParseQueryInt(c, "page", 1)
	if page <= 0 {
		page = 1
	}

	pageSize = ParseQueryInt(c, "page_size", defaultPageSize)
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}
