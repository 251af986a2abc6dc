package converter

import "errors"

// Notice texts shown to the user for rejected actions.
const (
	NoticeEmptyName    = "Por favor, ingrese su nombre para continuar."
	NoticeNotConfirmed = "Por favor, confirma tu nombre primero."
	NoticeEmptyInput   = "Por favor, ingrese un valor primero."
	NoticeInvalid      = "Valor no válido."
	NoticeConfirmed    = "¡Nombre confirmado! Ya puede usar la calculadora."
)

// Notice maps a session error to the message shown to the user.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyName):
		return NoticeEmptyName
	case errors.Is(err, ErrNotConfirmed):
		return NoticeNotConfirmed
	case errors.Is(err, ErrEmptyInput):
		return NoticeEmptyInput
	case errors.Is(err, ErrInvalidNumber):
		return NoticeInvalid
	default:
		return err.Error()
	}
}

// Welcome is the greeting shown once a name is confirmed.
func Welcome(name string) string {
	return "Bienvenido, " + name + ", a la App de Conversión"
}
