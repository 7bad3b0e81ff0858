package domain

type Movie struct {
	ID    string
	Title string
}

type Rating int

const (
	RatingNotRated Rating = 0
	RatingOne      Rating = 1
	RatingTwo      Rating = 2
	RatingThree    Rating = 3
	RatingFour     Rating = 4
	RatingFive     Rating = 5
)

func (r Rating) Valid() bool {
	return r >= RatingOne && r <= RatingFive
}
