package docstore

import "github.com/docuchain/docworker/pkg/errx"

var storeErrors = errx.NewRegistry("STORE")

var (
	ErrAcquire      = storeErrors.Register("ACQUIRE", errx.TypeExternal, "Failed to acquire database connection")
	ErrUpdateStatus = storeErrors.Register("UPDATE_STATUS", errx.TypeExternal, "Failed to update document status")
)
