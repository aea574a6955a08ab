package llm

// Role автор реплики в диалоге
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Backend имена поддерживаемых бэкендов
const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Message реплика диалога
type Message struct {
	Role    Role
	Content string
}

// chatRequest тело запроса /chat/completions
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse ответ /chat/completions
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// apiError тело ошибки OpenAI
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
