package curvepoint

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

const listPath = "/curvePoint/list"

// Service handles curve point operations.
type Service struct {
	db *Database
}

func NewService(gormDB *gorm.DB) *Service {
	return &Service{
		db: NewDatabase(gormDB),
	}
}

func (s *Service) CreateCurvePoint(point *types.CurvePoint) error {
	return s.db.CreateCurvePoint(point)
}

func (s *Service) GetCurvePoint(id uint) (*types.CurvePoint, error) {
	return s.db.GetCurvePoint(id)
}

func (s *Service) GetAllCurvePoints() ([]types.CurvePoint, error) {
	return s.db.GetAllCurvePoints()
}

func (s *Service) UpdateCurvePoint(point *types.CurvePoint) error {
	return s.db.UpdateCurvePoint(point)
}

func (s *Service) DeleteCurvePoint(id uint) error {
	return s.db.DeleteCurvePoint(id)
}

// GinHandlers contains HTTP handlers for the curve point pages.
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
		points, err := h.service.GetAllCurvePoints()
		data := gin.H{"CurvePoints": NewViews(points)}
		if err != nil {
			log.Error().Err(err).Str("entity", "curve_point").Msg("failed to list curve points")
			data["Flash"] = response.Flash{Error: "Could not load curve points, please try again"}
		}
		response.HTML(c, http.StatusOK, "curvePoint/list", data)
	}
}

func (h *GinHandlers) AddFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.HTML(c, http.StatusOK, "curvePoint/add", gin.H{"Form": Form{}})
	}
}

func (h *GinHandlers) ValidateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form Form
		if err := c.ShouldBind(&form); err != nil {
			response.HTML(c, http.StatusBadRequest, "curvePoint/add", gin.H{
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		point, errs := form.ToEntity()
		if len(errs) > 0 {
			response.HTML(c, http.StatusBadRequest, "curvePoint/add", gin.H{
				"Form":   form,
				"Errors": errs,
			})
			return
		}

		if err := h.service.CreateCurvePoint(point); err != nil {
			log.Error().Err(err).Str("entity", "curve_point").Msg("failed to create curve point")
			response.RedirectWithError(c, listPath, "Could not save the curve point, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Curve point created successfully")
	}
}

func (h *GinHandlers) UpdateFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		point, err := h.service.GetCurvePoint(id)
		if err != nil {
			log.Error().Err(err).Str("entity", "curve_point").Uint("id", id).Msg("failed to fetch curve point")
			response.RedirectWithError(c, listPath, "Could not load the curve point, please try again")
			return
		}
		if point == nil {
			response.RedirectWithError(c, listPath, fmt.Sprintf("Curve point %d not found", id))
			return
		}

		response.HTML(c, http.StatusOK, "curvePoint/update", gin.H{
			"ID":   id,
			"Form": FormFromEntity(*point),
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
			response.HTML(c, http.StatusBadRequest, "curvePoint/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		point, errs := form.ToEntity()
		if len(errs) > 0 {
			response.HTML(c, http.StatusBadRequest, "curvePoint/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": errs,
			})
			return
		}

		point.ID = id
		if err := h.service.UpdateCurvePoint(point); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Curve point %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "curve_point").Uint("id", id).Msg("failed to update curve point")
			response.RedirectWithError(c, listPath, "Could not update the curve point, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Curve point updated successfully")
	}
}

func (h *GinHandlers) DeleteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := h.service.DeleteCurvePoint(id); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Curve point %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "curve_point").Uint("id", id).Msg("failed to delete curve point")
			response.RedirectWithError(c, listPath, "Could not delete the curve point, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Curve point deleted successfully")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.RedirectWithError(c, listPath, "Invalid curve point id")
		return 0, false
	}
	return uint(id), true
}
