package dto

import "career-canvas/internal/match"

type MatchResponse struct {
	MatchScore  int    `json:"matchScore"`
	Explanation string `json:"explanation"`
}

func NewMatchResponse(r match.Result) MatchResponse {
	return MatchResponse{MatchScore: r.MatchScore, Explanation: r.Explanation}
}
