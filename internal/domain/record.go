package domain

// ErrorRecord describes one failed hook or test method invocation
type ErrorRecord struct {
	Type    string `json:"type"`    // Identifier of the test-case type
	Method  string `json:"method"`  // Method the failure is attributed to
	Kind    string `json:"kind"`    // Failure category, e.g. AssertionError
	Message string `json:"message"` // Human readable message
	Trace   string `json:"trace"`   // Stack trace captured when the failure was caught
}

// Name returns the "<type>::<method>" form used in reports
func (r ErrorRecord) Name() string {
	return r.Type + "::" + r.Method
}
