package packing

import (
	"fmt"
	"math"

	"github.com/idilsaglam/packlist/internal/model"
)

// CompleteMessage is shown once every item is packed.
const CompleteMessage = "You got everything!"

// Stats summarises packing progress.
type Stats struct {
	Total      int
	Packed     int
	Percentage int
}

// ComputeStats counts items and derives the rounded packed percentage.
// An empty list is 0%, not 100%.
func ComputeStats(items []model.Item) Stats {
	s := Stats{Total: len(items)}
	for _, it := range items {
		if it.Packed {
			s.Packed++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Packed) / float64(s.Total) * 100))
	}
	return s
}

func (s Stats) Complete() bool { return s.Percentage == 100 }

// Message is the footer text.
func (s Stats) Message() string {
	if s.Complete() {
		return CompleteMessage
	}
	return fmt.Sprintf("You have %d items in the list. You already packed %d (%d%%).",
		s.Total, s.Packed, s.Percentage)
}
