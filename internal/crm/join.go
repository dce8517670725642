package crm

import (
	"context"
	"sync"
)

// JoinedLists is the result of two list loads issued concurrently for
// one screen. Each side settles independently: a failed side carries
// its error and a nil slice, and never blocks the other.
type JoinedLists[P, S any] struct {
	Primary    []P
	Secondary  []S
	PrimaryErr error
	SecondErr  error
}

// FetchBoth runs two list loads concurrently and returns once both have
// settled. Screens that need a foreign key's option set alongside their
// own collection use this to bound load latency to the slower of the
// two requests instead of their sum.
func FetchBoth[P, S any](
	ctx context.Context,
	primary func(context.Context) ([]P, error),
	secondary func(context.Context) ([]S, error),
) JoinedLists[P, S] {
	var result JoinedLists[P, S]

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Primary, result.PrimaryErr = primary(ctx)
	}()
	go func() {
		defer wg.Done()
		result.Secondary, result.SecondErr = secondary(ctx)
	}()
	wg.Wait()

	return result
}
