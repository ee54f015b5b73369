package apperrors

// ErrorResponse is the body the prediction backend sends with a non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// messages used by the stub backend, matching the backend's failure cases
const (
	MsgMissingField      = "missing required field: %s"
	MsgInvalidYear       = "year must be between 1990 and %d"
	MsgInvalidPrice      = "price must be greater than 0"
	MsgInvalidKms        = "kms driven cannot be negative"
	MsgInvalidFuel       = "invalid fuel type"
	MsgInvalidSeller     = "invalid seller type"
	MsgInvalidGearbox    = "invalid transmission type"
	MsgInvalidOwner      = "invalid number of owners"
	MsgModelNotTrained   = "the model is not trained, train the model first"
	MsgNoTrainingFile    = "no data file provided"
	MsgEmptyTrainingFile = "empty file"
	MsgMalformedBody     = "numeric fields are malformed"
)
