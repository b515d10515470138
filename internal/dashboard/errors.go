package dashboard

// GateError is a local validation failure: the request was never sent.
// The messages match what the organization sees in the form UI.
type GateError struct {
	Message string
}

func (e *GateError) Error() string { return e.Message }

func gate(msg string) error { return &GateError{Message: msg} }

// Validation messages shown when a mutation is blocked before any request.
const (
	msgRequiredFields = "please fill all required fields (marked with *)"
	msgPhoneDigits    = "contact number must be exactly 10 digits"
	msgPickDateTime   = "please select a date and time"
)
