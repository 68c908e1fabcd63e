package errx

import (
	"fmt"
	"net/http"
)

// Type clasifica los errores del sistema
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeExternal       Type = "EXTERNAL"
	TypeUnavailable    Type = "UNAVAILABLE"
	TypeInternal       Type = "INTERNAL"
)

// Error es el error estándar de la aplicación
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"status"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail agrega un detalle al error (chainable)
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause adjunta el error subyacente
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// WithMessage reemplaza el mensaje manteniendo código y tipo
func (e *Error) WithMessage(message string) *Error {
	e.Message = message
	return e
}

// ============================================================================
// Registry - Registro de errores por módulo
// ============================================================================

// ErrorCode identifica un error registrado
type ErrorCode string

type registered struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry agrupa los códigos de error de un módulo bajo un prefijo
type Registry struct {
	prefix string
	codes  map[ErrorCode]registered
}

// NewRegistry crea un registro de errores para un módulo
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[ErrorCode]registered),
	}
}

// Register registra un código de error con su tipo, status HTTP y mensaje
func (r *Registry) Register(code string, t Type, httpStatus int, message string) ErrorCode {
	full := ErrorCode(r.prefix + "_" + code)
	r.codes[full] = registered{
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New crea una nueva instancia del error registrado
func (r *Registry) New(code ErrorCode) *Error {
	reg, ok := r.codes[code]
	if !ok {
		return &Error{
			Code:       string(code),
			Type:       TypeInternal,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &Error{
		Code:       string(code),
		Type:       reg.errType,
		Message:    reg.message,
		HTTPStatus: reg.httpStatus,
	}
}

// Wrap envuelve un error genérico como *Error
func Wrap(err error, message string, t Type) *Error {
	return &Error{
		Code:       string(t) + "_ERROR",
		Type:       t,
		Message:    message,
		HTTPStatus: statusFor(t),
		Err:        err,
	}
}

// AsError extrae un *Error si lo es
func AsError(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}

func statusFor(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeExternal:
		return http.StatusBadGateway
	case TypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
