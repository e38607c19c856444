package response

// Result is the uniform mutation outcome: handlers surface storage errors
// verbatim in Error and never report partial success.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func OK() Result {
	return Result{Success: true}
}

func Failed(err error) Result {
	return Result{Success: false, Error: err.Error()}
}
