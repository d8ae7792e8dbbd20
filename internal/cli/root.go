package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s) ", a.current.User.Name, a.current.User.Role)
}

// Run restores any persisted session and starts the interactive loop.
func (a *App) Run(ctx context.Context) {
	printlnFn("TourMate (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}
