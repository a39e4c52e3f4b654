package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// SessionContextKey - ключ, по которому в gin.Context хранится *session.Session
const SessionContextKey = contextKey("session")

// SessionCookieName - имя cookie с идентификатором сессии браузера
const SessionCookieName = "sid"

// SessionHeaderName - альтернатива cookie для не-браузерных клиентов
const SessionHeaderName = "X-Session-ID"
