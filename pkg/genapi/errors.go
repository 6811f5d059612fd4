package genapi

import "github.com/docuchain/docworker/pkg/errx"

var genErrors = errx.NewRegistry("GEN")

var (
	ErrRequest  = genErrors.Register("REQUEST", errx.TypeExternal, "Generation request failed")
	ErrResponse = genErrors.Register("RESPONSE", errx.TypeExternal, "Invalid generation response")
	ErrStatus   = genErrors.Register("STATUS", errx.TypeExternal, "Generation service returned an error status")
)
