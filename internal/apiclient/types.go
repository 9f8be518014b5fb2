package apiclient

// Confidence mirrors the backend classifier's two-stage confidence
// block. The pointer fields are absent for sources that do not score
// (e.g. the keyword placeholder).
type Confidence struct {
	Stage   string   `json:"stage"`
	POOD    *float64 `json:"p_ood,omitempty"`
	PIntent *float64 `json:"p_intent,omitempty"`
}

type ChatResponse struct {
	Intent         string     `json:"intent"`
	Confidence     Confidence `json:"confidence"`
	Response       string     `json:"response"`
	Language       string     `json:"language"`
	Source         string     `json:"source"`
	ConversationID string     `json:"conversation_id,omitempty"`
	Timestamp      string     `json:"timestamp,omitempty"`
}

type HealthResponse struct {
	Status              string `json:"status"`
	IntentModel         bool   `json:"intent_model"`
	RAGModel            bool   `json:"rag_model"`
	ActiveConversations int    `json:"active_conversations,omitempty"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthResponse is the shared shape of every /auth/* endpoint.
type AuthResponse struct {
	Success      bool   `json:"success"`
	User         *User  `json:"user,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Error        string `json:"error,omitempty"`
	Message      string `json:"message,omitempty"`
	// ResetToken is only populated by dev-mode backends.
	ResetToken string `json:"reset_token,omitempty"`
}
