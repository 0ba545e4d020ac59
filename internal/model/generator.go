package model

import "time"

// GenerateRequest represents a password generation request.
// Pointers distinguish a missing field (nil -> default) from an explicit value,
// so an explicit zero length is rejected rather than defaulted.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest carries a password to score.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse reports the heuristic score and the zxcvbn estimate.
type StrengthResponse struct {
	Score    int              `json:"score"`
	MaxScore int              `json:"max_score"`
	Reasons  []string         `json:"reasons"`
	Estimate EstimateResponse `json:"estimate"`
}

// EstimateResponse is the guess-based estimate shown alongside the score.
type EstimateResponse struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time,omitempty"`
}

// HistoryEntryResponse is one generated password in the session history.
type HistoryEntryResponse struct {
	Seq         int       `json:"seq"`
	Password    string    `json:"password"`
	GeneratedAt time.Time `json:"generated_at"`
}

// HistoryResponse lists the session history, oldest first.
type HistoryResponse struct {
	Count   int                    `json:"count"`
	Entries []HistoryEntryResponse `json:"entries"`
}
