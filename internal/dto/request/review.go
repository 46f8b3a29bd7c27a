package request

// AddReviewRequest carries a new review. The 1-5 rating bound and the
// 200-character text cap are enforced here, not trusted to the client.
// Empty text is a valid review; only the rating is mandatory.
type AddReviewRequest struct {
	MovieID      string `json:"movieID" validate:"required"`
	ReviewText   string `json:"reviewText" validate:"max=200"`
	ReviewNumber int    `json:"reviewNumber" validate:"required,min=1,max=5"`
}
