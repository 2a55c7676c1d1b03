package apperror

import "errors"

// Kind категория бизнес-ошибки, по которой транспорт выбирает код ответа
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindForbidden
	KindPaymentRequired
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindPaymentRequired:
		return "payment_required"
	default:
		return "unknown"
	}
}

// Error бизнес-ошибка с категорией
type Error struct {
	Kind    Kind
	Message string
}

// New создает бизнес-ошибку
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf возвращает категорию первой *Error в цепочке err
// Для nil и нераспознанных ошибок возвращает KindUnknown
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Result метка результата операции для метрик:
// "success" для nil, категория для бизнес-ошибок, "error" для остальных
func Result(err error) string {
	if err == nil {
		return "success"
	}
	if kind := KindOf(err); kind != KindUnknown {
		return kind.String()
	}
	return "error"
}
