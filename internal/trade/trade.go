package trade

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

const listPath = "/trade/list"

// Service handles trade operations.
type Service struct {
	db *Database
}

func NewService(gormDB *gorm.DB) *Service {
	return &Service{
		db: NewDatabase(gormDB),
	}
}

func (s *Service) CreateTrade(trade *types.Trade) error {
	return s.db.CreateTrade(trade)
}

func (s *Service) GetTrade(id uint) (*types.Trade, error) {
	return s.db.GetTrade(id)
}

func (s *Service) GetAllTrades() ([]types.Trade, error) {
	return s.db.GetAllTrades()
}

func (s *Service) UpdateTrade(trade *types.Trade) error {
	return s.db.UpdateTrade(trade)
}

func (s *Service) DeleteTrade(id uint) error {
	return s.db.DeleteTrade(id)
}

// GinHandlers contains HTTP handlers for the trade pages.
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
		trades, err := h.service.GetAllTrades()
		data := gin.H{"Trades": NewViews(trades)}
		if err != nil {
			log.Error().Err(err).Str("entity", "trade").Msg("failed to list trades")
			data["Flash"] = response.Flash{Error: "Could not load trades, please try again"}
		}
		response.HTML(c, http.StatusOK, "trade/list", data)
	}
}

func (h *GinHandlers) AddFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.HTML(c, http.StatusOK, "trade/add", gin.H{"Form": Form{}})
	}
}

func (h *GinHandlers) ValidateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form Form
		if err := c.ShouldBind(&form); err != nil {
			response.HTML(c, http.StatusBadRequest, "trade/add", gin.H{
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		trade, errs := form.ToEntity()
		if len(errs) > 0 {
			response.HTML(c, http.StatusBadRequest, "trade/add", gin.H{
				"Form":   form,
				"Errors": errs,
			})
			return
		}

		if err := h.service.CreateTrade(trade); err != nil {
			log.Error().Err(err).Str("entity", "trade").Msg("failed to create trade")
			response.RedirectWithError(c, listPath, "Could not save the trade, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Trade created successfully")
	}
}

func (h *GinHandlers) UpdateFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		trade, err := h.service.GetTrade(id)
		if err != nil {
			log.Error().Err(err).Str("entity", "trade").Uint("id", id).Msg("failed to fetch trade")
			response.RedirectWithError(c, listPath, "Could not load the trade, please try again")
			return
		}
		if trade == nil {
			response.RedirectWithError(c, listPath, fmt.Sprintf("Trade %d not found", id))
			return
		}

		response.HTML(c, http.StatusOK, "trade/update", gin.H{
			"ID":   id,
			"Form": FormFromEntity(*trade),
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
			response.HTML(c, http.StatusBadRequest, "trade/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		trade, errs := form.ToEntity()
		if len(errs) > 0 {
			response.HTML(c, http.StatusBadRequest, "trade/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": errs,
			})
			return
		}

		trade.ID = id
		if err := h.service.UpdateTrade(trade); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Trade %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "trade").Uint("id", id).Msg("failed to update trade")
			response.RedirectWithError(c, listPath, "Could not update the trade, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Trade updated successfully")
	}
}

func (h *GinHandlers) DeleteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := h.service.DeleteTrade(id); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Trade %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "trade").Uint("id", id).Msg("failed to delete trade")
			response.RedirectWithError(c, listPath, "Could not delete the trade, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Trade deleted successfully")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.RedirectWithError(c, listPath, "Invalid trade id")
		return 0, false
	}
	return uint(id), true
}
