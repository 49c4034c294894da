package agenda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
)

func TestMinutes(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		total int
		want  int
	}{
		{"quarter of an hour", 25, 60, 15},
		{"full meeting", 100, 45, 45},
		{"zero percent", 0, 60, 0},
		{"half rounds up", 12.5, 60, 8},
		{"rounds to nearest", 12, 30, 4},
		{"below half rounds down", 11, 30, 3},
		{"small share", 1, 30, 0},
		{"negative clamps to zero", -10, 60, 0},
		{"over one hundred", 150, 60, 90},
		{"one minute meeting", 50, 1, 1},
		{"huge percentage is capped", 1e300, 60, math.MaxInt32},
		{"huge duration is capped", 100, math.MaxInt, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Minutes(tt.pct, tt.total))
		})
	}
}

func TestAllocate_DoesNotNormalize(t *testing.T) {
	items := []entities.AgendaItem{
		{SuggestedPercentage: 50},
		{SuggestedPercentage: 30},
	}

	minutes := Allocate(items, 60)

	assert.Equal(t, []int{30, 18}, minutes)
	assert.Equal(t, 48, minutes[0]+minutes[1])
}

func TestAllocate_OrderInvariant(t *testing.T) {
	a := entities.AgendaItem{SuggestedPercentage: 33.3}
	b := entities.AgendaItem{SuggestedPercentage: 66.7}

	forward := Allocate([]entities.AgendaItem{a, b}, 90)
	reversed := Allocate([]entities.AgendaItem{b, a}, 90)

	assert.Equal(t, forward[0], reversed[1])
	assert.Equal(t, forward[1], reversed[0])
}

func TestAllocate_Empty(t *testing.T) {
	assert.Empty(t, Allocate(nil, 60))
}

func TestAllocate_NeverNegative(t *testing.T) {
	items := []entities.AgendaItem{
		{SuggestedPercentage: 100},
		{SuggestedPercentage: 60},
		{SuggestedPercentage: math.MaxFloat64},
	}

	for _, total := range []int{1, entities.MaxTotalDuration, math.MaxInt} {
		for _, m := range Allocate(items, total) {
			assert.GreaterOrEqual(t, m, 0)
			assert.LessOrEqual(t, m, math.MaxInt32)
		}
	}
}
