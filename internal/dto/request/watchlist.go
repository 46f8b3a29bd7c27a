package request

type WatchLaterRequest struct {
	MovieID string `json:"movieID" validate:"required"`
}
