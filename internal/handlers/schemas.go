package handlers

import "gitlab.com/TitanInd/deepmatch/internal/compare"

type CompareRequest struct {
	Received interface{} `json:"received"`
	Expected interface{} `json:"expected"`
	// Precision and Strict fall back to the configured defaults when omitted.
	Precision *int  `json:"precision"`
	Strict    *bool `json:"strict"`
}

type CompareResponse struct {
	ID          string               `json:"id"`
	URL         string               `json:"url,omitempty"`
	Match       bool                 `json:"match"`
	Precision   int                  `json:"precision"`
	Strict      bool                 `json:"strict"`
	Discrepancy *compare.Discrepancy `json:"discrepancy,omitempty"`
}

type HealthCheckResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	TotalCompares int64  `json:"totalCompares"`
}
