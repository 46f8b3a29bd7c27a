package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-discovery/internal/dto/request"
	"movie-discovery/internal/dto/response"
	"movie-discovery/internal/usecase"
	"movie-discovery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /getreviews/{movieID} (public)
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")
	if movieID == "" {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID)
	if err != nil {
		utils.ResponseInternalError(w, "Database error")
		return
	}

	utils.ResponseOK(w, reviews)
}

// GetReviewStats handles GET /getreviewstats/{movieID} (public)
func (h *ReviewHandler) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")
	if movieID == "" {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	stats, err := h.service.GetMovieReviewStats(r.Context(), movieID)
	if err != nil {
		utils.ResponseInternalError(w, "Database error")
		return
	}

	utils.ResponseOK(w, stats)
}

// AddReview handles POST /addreview (protected)
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Missing userID (user not logged in)")
		return
	}

	var req request.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	review, err := h.service.AddReview(r.Context(), userID, &req)
	if err != nil {
		utils.ResponseInternalError(w, "Database error")
		return
	}

	utils.ResponseOK(w, response.ReviewCreatedResponse{
		Success: true,
		Review:  *review,
	})
}
