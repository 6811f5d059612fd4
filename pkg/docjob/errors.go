package docjob

import "github.com/docuchain/docworker/pkg/errx"

var jobErrors = errx.NewRegistry("JOB")

var (
	ErrMalformedPayload     = jobErrors.Register("MALFORMED_PAYLOAD", errx.TypeValidation, "Queue payload is not valid JSON")
	ErrMissingRequiredField = jobErrors.Register("MISSING_REQUIRED_FIELD", errx.TypeValidation, "Job is missing a required field")
	ErrEncode               = jobErrors.Register("ENCODE", errx.TypeInternal, "Failed to encode job payload")
)
