package models

// SessionData is the value stored in the key-value session store under the
// signed session token. SessionID is the opaque hex identifier embedded in
// the token; SessionInfo is the serialized account payload captured at login.
type SessionData struct {
	SessionID   string      `json:"session_id"`
	SessionInfo AccountInfo `json:"session_info"`
}
