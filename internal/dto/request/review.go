package request

// CreateReviewRequest carries the four user-supplied review fields. The id and
// creation time are never accepted from clients.
type CreateReviewRequest struct {
	MovieTitle   string `json:"movie_title" validate:"required"`
	ReviewText   string `json:"review_text" validate:"required"`
	ReviewerName string `json:"reviewer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
}
