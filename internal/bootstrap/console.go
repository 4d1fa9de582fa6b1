package bootstrap

import (
	"context"
	"errors"

	"github.com/Domenick1991/airlineops/internal/console"
)

// Run drives the operator menu and blocks until the operator exits or the
// context is canceled.
func Run(ctx context.Context, menu *console.Menu) error {
	errCh := make(chan error, 1)
	go func() { errCh <- menu.Run(ctx) }()

	select {
	case err := <-errCh:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}
