package cmdutil

import (
	"context"
)

// RunStream pulls items from source, applies visit, and streams kept
// results via send. It returns the number of kept outputs and the first
// error encountered.
func RunStream[S, T any](
	ctx context.Context,
	source func(context.Context, func(S) error) error,
	visit func(S) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := source(ctx, func(s S) error {
		keep, out, vErr := visit(s)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
