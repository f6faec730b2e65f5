package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating_Empty(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]Review{}))
}

func TestAverageRating_RoundsToOneDecimal(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"single review", []int{4}, 4.0},
		{"exact mean", []int{4, 2}, 3.0},
		{"rounds up", []int{1, 2, 2}, 1.7},
		{"rounds down", []int{5, 4, 4}, 4.3},
		{"all fives", []int{5, 5, 5, 5}, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = Review{Rating: r}
			}
			assert.Equal(t, tt.want, AverageRating(reviews))
		})
	}
}
