package request

type SearchMoviesRequest struct {
	Query string `json:"query" validate:"required"`
	Page  int    `json:"page" validate:"required,min=1"`
}

type MovieDetailsRequest struct {
	ID string `json:"id" validate:"required"`
}
