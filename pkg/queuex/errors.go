package queuex

import "github.com/docuchain/docworker/pkg/errx"

var queueErrors = errx.NewRegistry("QUEUE")

var (
	ErrDequeue = queueErrors.Register("DEQUEUE", errx.TypeExternal, "Redis dequeue failed")
	ErrEnqueue = queueErrors.Register("ENQUEUE", errx.TypeExternal, "Redis enqueue failed")
	ErrLen     = queueErrors.Register("LEN", errx.TypeExternal, "Redis queue length failed")
)
