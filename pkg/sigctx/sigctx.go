package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context canceled on SIGINT, SIGTERM, SIGQUIT
// and any extra signals.
func NotifyContext(extra ...os.Signal) (context.Context, context.CancelFunc) {
	sigs := append([]os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}, extra...)
	return signal.NotifyContext(context.Background(), sigs...)
}
