package form

import (
	"time"

	"github.com/jask/modalpick/internal/database/repository"
)

type (
	frameMsg  time.Time
	latestMsg struct{ sub *repository.Submission }
	savedMsg  struct {
		sub   repository.Submission
		total int
	}
	errMsg    struct{ error }
	statusMsg string
)
