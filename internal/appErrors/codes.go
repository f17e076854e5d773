package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound   ErrorCode = "USER_NOT_FOUND"
	CodeLedgerNotFound ErrorCode = "LEDGER_NOT_FOUND"

	// Бизнес-логика: аккаунты и граф друзей
	CodeUsernameAlreadyExists ErrorCode = "USERNAME_ALREADY_EXISTS"
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAlreadyRequested      ErrorCode = "ALREADY_REQUESTED"
	CodeAlreadyFriends        ErrorCode = "ALREADY_FRIENDS"
	CodeNotFriends            ErrorCode = "NOT_FRIENDS"
	CodeAccountPending        ErrorCode = "ACCOUNT_PENDING"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
