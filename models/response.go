package models

// Envelope is the uniform response body returned by every endpoint:
// the result payload, pagination metadata (always present, possibly empty),
// a generated response id and the server-side timestamp.
type Envelope struct {
	Result       any            `json:"result"`
	Pagination   map[string]any `json:"pagination"`
	ResponseID   string         `json:"response_id"`
	ResponseTime string         `json:"response_time"`
}

// AuthenticateResult is the success payload of POST /authenticate:
// the session token, the serialized account, and the dependent student
// accounts attached for guardian/teacher roles (empty otherwise).
type AuthenticateResult struct {
	SessionToken string `json:"session_token"`
	AccountInfo
	Students []AccountInfo `json:"students"`
}

// ErrorPayload is the fixed error body substituted for any failed flow.
// Business failures are returned with HTTP 200; only header-auth failures
// use HTTP 400.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
