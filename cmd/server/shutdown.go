// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package main

import (
	"context"
	"errors"
	"time"
)

// errShutdownTimeout is returned when the supervisor tree does not report
// completion within the shutdown window.
var errShutdownTimeout = errors.New("supervisor did not stop before shutdown timeout")

// awaitShutdown blocks until the supervisor tree finishes or ctx is cancelled,
// then waits up to timeout for its single completion value. suture sends at
// most one value on errCh and never closes it, so the channel is read once.
func awaitShutdown(ctx context.Context, errCh <-chan error, timeout time.Duration, onSignal func()) error {
	var (
		err      error
		received bool
	)

	select {
	case <-ctx.Done():
		if onSignal != nil {
			onSignal()
		}
	case err = <-errCh:
		received = true
	}

	if !received {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case err = <-errCh:
		case <-timer.C:
			return errShutdownTimeout
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
