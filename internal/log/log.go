package log

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerInterval = 100 * time.Millisecond

// WithSpinner executes the given function while showing a spinner with the
// specified message. The spinner stops on every exit path.
func WithSpinner(message string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], spinnerInterval)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		return fmt.Errorf("coloring spinner: %w", err)
	}

	s.Start()
	s.FinalMSG = message + " \033[32m[done]\033[0m"
	defer s.Stop()

	return fn()
}
