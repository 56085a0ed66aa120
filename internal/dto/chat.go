package dto

type ChatMessageRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type PreferencesRequest struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}
