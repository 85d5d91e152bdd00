package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner executes action while showing a spinner with the given
// title. When stdout is not a terminal the action runs directly with no
// animation. Returns the action's error.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if DetectNoColor() {
		return action()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- action()
	}()

	s := spinner.New().Title(title)
	if err := s.Action(func() {
		select {
		case <-ctx.Done():
		case err := <-errCh:
			errCh <- err
		}
	}).Run(); err != nil {
		return fmt.Errorf("spinner: %w", err)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
