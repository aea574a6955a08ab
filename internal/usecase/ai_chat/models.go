package ai_chat

// HistoryItem реплика предыдущего диалога
type HistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request запрос к ассистенту
type Request struct {
	ProviderID int64         `json:"-"`
	Message    string        `json:"message"`
	History    []HistoryItem `json:"history"`
}

// Response ответ ассистента
type Response struct {
	Reply string `json:"reply"`
}
