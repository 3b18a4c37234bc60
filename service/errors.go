package service

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownFormula = errors.New("fórmula desconocida")

// ValidationError is a request error the caller can fix by changing its input.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err was caused by invalid input.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkAmount(name string, v float64) error {
	if !finite(v) {
		return invalidf("%s debe ser un número", name)
	}
	if v < 0 {
		return invalidf("%s no puede ser negativo", name)
	}
	if v > MaxAmount {
		return invalidf("%s excede el máximo permitido de $%.2f", name, MaxAmount)
	}
	return nil
}

func checkPercentage(name string, v float64) error {
	if !finite(v) || v < 0 || v > 100 {
		return invalidf("%s debe estar entre 0 y 100", name)
	}
	return nil
}

func checkInflation(v float64) error {
	if !finite(v) || v <= -100 {
		return invalid("inflación inválida: debe ser mayor a -100%")
	}
	if v > MaxInflationRate {
		return invalidf("inflación excede el máximo de %.0f%% mensual", MaxInflationRate)
	}
	return nil
}
