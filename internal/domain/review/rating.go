package review

import "fmt"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a star rating from MinRating to MaxRating inclusive.
type Rating int

func NewRating(value int) (Rating, error) {
	r := Rating(value)
	if !r.IsValid() {
		return 0, fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return r, nil
}

func (r Rating) IsValid() bool {
	return r >= MinRating && r <= MaxRating
}

func (r Rating) Int() int {
	return int(r)
}
