package rating

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/poseidontrading/poseidon/internal/types"
	"github.com/poseidontrading/poseidon/pkg/forms"
	"github.com/poseidontrading/poseidon/pkg/response"
)

const listPath = "/rating/list"

// Service handles rating operations.
type Service struct {
	db *Database
}

func NewService(gormDB *gorm.DB) *Service {
	return &Service{
		db: NewDatabase(gormDB),
	}
}

func (s *Service) CreateRating(rating *types.Rating) error {
	return s.db.CreateRating(rating)
}

func (s *Service) GetRating(id uint) (*types.Rating, error) {
	return s.db.GetRating(id)
}

func (s *Service) GetAllRatings() ([]types.Rating, error) {
	return s.db.GetAllRatings()
}

func (s *Service) UpdateRating(rating *types.Rating) error {
	return s.db.UpdateRating(rating)
}

func (s *Service) DeleteRating(id uint) error {
	return s.db.DeleteRating(id)
}

// GinHandlers contains HTTP handlers for the rating pages.
type GinHandlers struct {
	service *Service
}

func NewGinHandlers(service *Service) *GinHandlers {
	return &GinHandlers{
		service: service,
	}
}

func (h *GinHandlers) ListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ratings, err := h.service.GetAllRatings()
		data := gin.H{"Ratings": NewViews(ratings)}
		if err != nil {
			log.Error().Err(err).Str("entity", "rating").Msg("failed to list ratings")
			data["Flash"] = response.Flash{Error: "Could not load ratings, please try again"}
		}
		response.HTML(c, http.StatusOK, "rating/list", data)
	}
}

func (h *GinHandlers) AddFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.HTML(c, http.StatusOK, "rating/add", gin.H{"Form": Form{}})
	}
}

func (h *GinHandlers) ValidateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form Form
		if err := c.ShouldBind(&form); err != nil {
			response.HTML(c, http.StatusBadRequest, "rating/add", gin.H{
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		rating, errs := form.ToEntity()
		if len(errs) > 0 {
			response.HTML(c, http.StatusBadRequest, "rating/add", gin.H{
				"Form":   form,
				"Errors": errs,
			})
			return
		}

		if err := h.service.CreateRating(rating); err != nil {
			log.Error().Err(err).Str("entity", "rating").Msg("failed to create rating")
			response.RedirectWithError(c, listPath, "Could not save the rating, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Rating created successfully")
	}
}

func (h *GinHandlers) UpdateFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		rating, err := h.service.GetRating(id)
		if err != nil {
			log.Error().Err(err).Str("entity", "rating").Uint("id", id).Msg("failed to fetch rating")
			response.RedirectWithError(c, listPath, "Could not load the rating, please try again")
			return
		}
		if rating == nil {
			response.RedirectWithError(c, listPath, fmt.Sprintf("Rating %d not found", id))
			return
		}

		response.HTML(c, http.StatusOK, "rating/update", gin.H{
			"ID":   id,
			"Form": FormFromEntity(*rating),
		})
	}
}

func (h *GinHandlers) UpdateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var form Form
		if err := c.ShouldBind(&form); err != nil {
			response.HTML(c, http.StatusBadRequest, "rating/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		rating, errs := form.ToEntity()
		if len(errs) > 0 {
			response.HTML(c, http.StatusBadRequest, "rating/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": errs,
			})
			return
		}

		rating.ID = id
		if err := h.service.UpdateRating(rating); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Rating %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "rating").Uint("id", id).Msg("failed to update rating")
			response.RedirectWithError(c, listPath, "Could not update the rating, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Rating updated successfully")
	}
}

func (h *GinHandlers) DeleteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := h.service.DeleteRating(id); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Rating %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "rating").Uint("id", id).Msg("failed to delete rating")
			response.RedirectWithError(c, listPath, "Could not delete the rating, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Rating deleted successfully")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.RedirectWithError(c, listPath, "Invalid rating id")
		return 0, false
	}
	return uint(id), true
}
