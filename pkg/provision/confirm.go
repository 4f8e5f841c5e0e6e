//go:generate mockgen -destination=../../mocks/mock_confirmer.go -package=mocks github.com/optum/vmdeploy/pkg/provision Confirmer

package provision

import (
	"context"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// Confirmer blocks until the operator answers whether the resources should be deleted
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// SurveyConfirmer asks on the terminal. Enter accepts the default answer, which is yes.
type SurveyConfirmer struct {
	Ask func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error
}

// NewSurveyConfirmer creates a SurveyConfirmer reading from the process terminal
func NewSurveyConfirmer() *SurveyConfirmer {
	return &SurveyConfirmer{Ask: survey.AskOne}
}

func (c *SurveyConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	type answer struct {
		ok  bool
		err error
	}

	answers := make(chan answer, 1)

	go func() {
		ok := false
		err := c.Ask(&survey.Confirm{Message: message, Default: true}, &ok)
		answers <- answer{ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ErrInterrupted
	case a := <-answers:
		if errors.Is(a.err, terminal.InterruptErr) {
			return false, ErrInterrupted
		}
		return a.ok, a.err
	}
}

// AutoConfirmer answers yes without prompting, used for self destroying runs
type AutoConfirmer struct {
	Logger *logrus.Entry
}

func (c AutoConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, ErrInterrupted
	}

	if c.Logger != nil {
		c.Logger.Infof("%s (self destroy enabled, continuing)", message)
	}

	return true, nil
}
