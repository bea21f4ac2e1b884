package contact

// ValidationError signals bad or missing contact form input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid contact request: " + e.Reason
}
