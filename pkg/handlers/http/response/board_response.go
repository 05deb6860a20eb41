package response

type SessionResponse struct {
	UserID string `json:"userId"`
}
