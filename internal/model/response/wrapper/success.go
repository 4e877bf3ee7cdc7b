package wrapper

// MessageWrapper is the body of every non-list response.
type MessageWrapper struct {
	Message string `json:"message" example:"User added successfully"`
}

type ErrorWrapper struct {
	Message string `json:"message" example:"User not found"`
}
