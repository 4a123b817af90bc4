package entity

// Review is one row of movie_reviews. ID and CreatedAt are filled by the
// store on insert; rows are never updated.
type Review struct {
	BaseSimple
	MovieTitle   string `db:"movie_title"`
	ReviewText   string `db:"review_text"`
	ReviewerName string `db:"reviewer_name"`
	Rating       int    `db:"rating"` // 1-5
}
