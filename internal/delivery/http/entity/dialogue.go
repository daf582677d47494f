package entity

type CreateDialogueRequest struct {
	Words []string `json:"words"`
	Topic string   `json:"topic"`
}

type CreateDialogueResponse struct {
	Success  bool   `json:"success"`
	Dialogue string `json:"dialogue"`
	AudioURL string `json:"audioUrl"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
