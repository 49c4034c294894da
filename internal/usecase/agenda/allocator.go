package agenda

import (
	"math"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
)

// maxItemMinutes bounds one allocation so the int conversion cannot overflow
const maxItemMinutes = math.MaxInt32

// Minutes converts a suggested percentage into whole minutes of totalDuration.
// Halves round up, negative results clamp to zero and huge ones to maxItemMinutes. Percentages are never
// normalized, so skewed suggestions produce minutes that do not sum to the total.
func Minutes(suggestedPercentage float64, totalDuration int) int {
	raw := suggestedPercentage / 100 * float64(totalDuration)
	if math.IsNaN(raw) || raw <= 0 {
		return 0
	}
	if raw >= maxItemMinutes {
		return maxItemMinutes
	}
	return int(math.Floor(raw + 0.5))
}

// Allocate returns the minutes of every item, in item order
func Allocate(items []entities.AgendaItem, totalDuration int) []int {
	minutes := make([]int, len(items))
	for i, it := range items {
		minutes[i] = Minutes(it.SuggestedPercentage, totalDuration)
	}
	return minutes
}
