package response

import (
	"time"

	"cinereview/internal/data/entity"
)

// StarCount is the width of the rating indicator.
const StarCount = 5

// ReviewDateLayout renders dates as "Mar 5, 2024".
const ReviewDateLayout = "Jan 2, 2006"

type ReviewResponse struct {
	ID           string    `json:"id"`
	MovieTitle   string    `json:"movie_title"`
	ReviewText   string    `json:"review_text"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID.String(),
		MovieTitle:   review.MovieTitle,
		ReviewText:   review.ReviewText,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		CreatedAt:    review.CreatedAt,
	}
}

// ReviewCard is the display form of a single review.
type ReviewCard struct {
	ID           string
	MovieTitle   string
	ReviewText   string
	ReviewerName string
	Stars        [StarCount]bool
	Date         string
}

func (r ReviewResponse) Card() ReviewCard {
	return ReviewCard{
		ID:           r.ID,
		MovieTitle:   r.MovieTitle,
		ReviewText:   r.ReviewText,
		ReviewerName: r.ReviewerName,
		Stars:        StarUnits(r.Rating),
		Date:         FormatReviewDate(r.CreatedAt),
	}
}

// StarUnits marks units 1..rating as filled.
func StarUnits(rating int) [StarCount]bool {
	var stars [StarCount]bool
	for i := range stars {
		stars[i] = i < rating
	}
	return stars
}

// FormatReviewDate formats t in UTC, or returns "" for the zero time.
func FormatReviewDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(ReviewDateLayout)
}

func ReviewsToCards(reviews []ReviewResponse) []ReviewCard {
	cards := make([]ReviewCard, len(reviews))
	for i, review := range reviews {
		cards[i] = review.Card()
	}
	return cards
}
