// Package saga formaliza los flujos multi-paso del dashboard: una lista
// ordenada de pasos donde cada uno es obligatorio o best-effort. La falla de
// un paso obligatorio aborta el flujo; la de uno best-effort se registra como
// warning y el flujo continúa. El contrato de falla parcial queda testeable
// en aislamiento en lugar de vivir en cadenas try/catch inline.
package saga

import (
	"context"
	"net/http"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/logx"
)

// Mode define la política de continuación de un paso
type Mode int

const (
	// Required aborta el flujo completo si el paso falla
	Required Mode = iota
	// BestEffort registra la falla como warning y continúa
	BestEffort
)

// Step es un paso nombrado del flujo
type Step struct {
	Name string
	Mode Mode
	Run  func(ctx context.Context) error
}

// Warning es la falla no fatal de un paso best-effort
type Warning struct {
	Step string `json:"step"`
	Err  error  `json:"-"`
}

// Message expone el warning de forma serializable
func (w Warning) Message() string {
	return w.Step + ": " + w.Err.Error()
}

// Result resume una ejecución del flujo
type Result struct {
	Executed []string  `json:"executed"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// HasWarnings indica si algún paso best-effort falló
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// WarningMessages devuelve los warnings como strings para la respuesta
func (r *Result) WarningMessages() []string {
	if len(r.Warnings) == 0 {
		return nil
	}
	out := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		out[i] = w.Message()
	}
	return out
}

var sagaErrors = errx.NewRegistry("SAGA")

var CodeStepFailed = sagaErrors.Register("STEP_FAILED", errx.TypeBusiness, http.StatusBadGateway, "Workflow step failed")

// Execute corre los pasos en orden. Devuelve el resultado parcial junto con
// el error cuando un paso obligatorio falla; los pasos posteriores no corren.
func Execute(ctx context.Context, steps ...Step) (*Result, error) {
	result := &Result{}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := step.Run(ctx)
		if err == nil {
			result.Executed = append(result.Executed, step.Name)
			continue
		}

		if step.Mode == BestEffort {
			logx.WithFields(logx.Fields{"step": step.Name}).
				Warnf("best-effort step failed: %v", err)
			result.Warnings = append(result.Warnings, Warning{Step: step.Name, Err: err})
			continue
		}

		if e, ok := errx.AsError(err); ok {
			return result, e.WithDetail("step", step.Name)
		}
		return result, sagaErrors.New(CodeStepFailed).
			WithDetail("step", step.Name).
			WithCause(err)
	}

	return result, nil
}
