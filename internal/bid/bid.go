package bid

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

const listPath = "/bid/list"

// Service handles bid list operations.
type Service struct {
	db *Database
}

// NewService creates a new bid service with the given database connection.
func NewService(gormDB *gorm.DB) *Service {
	return &Service{
		db: NewDatabase(gormDB),
	}
}

func (s *Service) CreateBid(bid *types.Bid) error {
	return s.db.CreateBid(bid)
}

func (s *Service) GetBid(id uint) (*types.Bid, error) {
	return s.db.GetBid(id)
}

func (s *Service) GetAllBids() ([]types.Bid, error) {
	return s.db.GetAllBids()
}

func (s *Service) UpdateBid(bid *types.Bid) error {
	return s.db.UpdateBid(bid)
}

func (s *Service) DeleteBid(id uint) error {
	return s.db.DeleteBid(id)
}

// GinHandlers contains HTTP handlers for the bid pages.
type GinHandlers struct {
	service *Service
}

// NewGinHandlers creates a new set of HTTP handlers for the bid pages.
func NewGinHandlers(service *Service) *GinHandlers {
	return &GinHandlers{
		service: service,
	}
}

// ListHandler renders the bid list. A store failure degrades to an empty
// list with an error banner rather than an error page.
func (h *GinHandlers) ListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		bids, err := h.service.GetAllBids()
		data := gin.H{"Bids": NewViews(bids)}
		if err != nil {
			log.Error().Err(err).Str("entity", "bid").Msg("failed to list bids")
			data["Flash"] = response.Flash{Error: "Could not load bids, please try again"}
		}
		response.HTML(c, http.StatusOK, "bid/list", data)
	}
}

// AddFormHandler renders the empty add form.
func (h *GinHandlers) AddFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.HTML(c, http.StatusOK, "bid/add", gin.H{"Form": Form{}})
	}
}

// ValidateHandler handles the add form submission. Validation failures
// re-render the form with field messages and persist nothing.
func (h *GinHandlers) ValidateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form Form
		if err := c.ShouldBind(&form); err != nil {
			response.HTML(c, http.StatusBadRequest, "bid/add", gin.H{
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		bid, errs := form.ToEntity()
		if len(errs) > 0 {
			response.HTML(c, http.StatusBadRequest, "bid/add", gin.H{
				"Form":   form,
				"Errors": errs,
			})
			return
		}

		if err := h.service.CreateBid(bid); err != nil {
			log.Error().Err(err).Str("entity", "bid").Msg("failed to create bid")
			response.RedirectWithError(c, listPath, "Could not save the bid, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Bid created successfully")
	}
}

// UpdateFormHandler renders the update form pre-populated from the store.
func (h *GinHandlers) UpdateFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		bid, err := h.service.GetBid(id)
		if err != nil {
			log.Error().Err(err).Str("entity", "bid").Uint("id", id).Msg("failed to fetch bid")
			response.RedirectWithError(c, listPath, "Could not load the bid, please try again")
			return
		}
		if bid == nil {
			response.RedirectWithError(c, listPath, fmt.Sprintf("Bid %d not found", id))
			return
		}

		response.HTML(c, http.StatusOK, "bid/update", gin.H{
			"ID":   id,
			"Form": FormFromEntity(*bid),
		})
	}
}

// UpdateHandler handles the update form submission.
func (h *GinHandlers) UpdateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var form Form
		if err := c.ShouldBind(&form); err != nil {
			response.HTML(c, http.StatusBadRequest, "bid/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		bid, errs := form.ToEntity()
		if len(errs) > 0 {
			response.HTML(c, http.StatusBadRequest, "bid/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": errs,
			})
			return
		}

		bid.ID = id
		if err := h.service.UpdateBid(bid); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Bid %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "bid").Uint("id", id).Msg("failed to update bid")
			response.RedirectWithError(c, listPath, "Could not update the bid, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Bid updated successfully")
	}
}

// DeleteHandler removes a bid and redirects to the list either way.
func (h *GinHandlers) DeleteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := h.service.DeleteBid(id); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Bid %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "bid").Uint("id", id).Msg("failed to delete bid")
			response.RedirectWithError(c, listPath, "Could not delete the bid, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Bid deleted successfully")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.RedirectWithError(c, listPath, "Invalid bid id")
		return 0, false
	}
	return uint(id), true
}
