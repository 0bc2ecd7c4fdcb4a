package response

import (
	"fmt"

	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase"
)

type CleanupResponse struct {
	Archived int    `json:"archived"`
	Failed   int    `json:"failed"`
	Message  string `json:"message"`
}

func FromSweepResult(r usecase.SweepResult) CleanupResponse {
	return CleanupResponse{
		Archived: r.Archived,
		Failed:   r.Failed,
		Message:  fmt.Sprintf("archived %d expired checkout sessions, %d failed", r.Archived, r.Failed),
	}
}
