package rulename

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

const listPath = "/ruleName/list"

// Service handles rule name operations.
type Service struct {
	db *Database
}

func NewService(gormDB *gorm.DB) *Service {
	return &Service{
		db: NewDatabase(gormDB),
	}
}

func (s *Service) CreateRuleName(rule *types.RuleName) error {
	return s.db.CreateRuleName(rule)
}

func (s *Service) GetRuleName(id uint) (*types.RuleName, error) {
	return s.db.GetRuleName(id)
}

func (s *Service) GetAllRuleNames() ([]types.RuleName, error) {
	return s.db.GetAllRuleNames()
}

func (s *Service) UpdateRuleName(rule *types.RuleName) error {
	return s.db.UpdateRuleName(rule)
}

func (s *Service) DeleteRuleName(id uint) error {
	return s.db.DeleteRuleName(id)
}

// GinHandlers contains HTTP handlers for the rule name pages.
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
		rules, err := h.service.GetAllRuleNames()
		data := gin.H{"RuleNames": NewViews(rules)}
		if err != nil {
			log.Error().Err(err).Str("entity", "rule_name").Msg("failed to list rule names")
			data["Flash"] = response.Flash{Error: "Could not load rules, please try again"}
		}
		response.HTML(c, http.StatusOK, "ruleName/list", data)
	}
}

func (h *GinHandlers) AddFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.HTML(c, http.StatusOK, "ruleName/add", gin.H{"Form": Form{}})
	}
}

func (h *GinHandlers) ValidateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form Form
		if err := c.ShouldBind(&form); err != nil {
			response.HTML(c, http.StatusBadRequest, "ruleName/add", gin.H{
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		rule, _ := form.ToEntity()
		if err := h.service.CreateRuleName(rule); err != nil {
			log.Error().Err(err).Str("entity", "rule_name").Msg("failed to create rule name")
			response.RedirectWithError(c, listPath, "Could not save the rule, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Rule created successfully")
	}
}

func (h *GinHandlers) UpdateFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		rule, err := h.service.GetRuleName(id)
		if err != nil {
			log.Error().Err(err).Str("entity", "rule_name").Uint("id", id).Msg("failed to fetch rule name")
			response.RedirectWithError(c, listPath, "Could not load the rule, please try again")
			return
		}
		if rule == nil {
			response.RedirectWithError(c, listPath, fmt.Sprintf("Rule %d not found", id))
			return
		}

		response.HTML(c, http.StatusOK, "ruleName/update", gin.H{
			"ID":   id,
			"Form": FormFromEntity(*rule),
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
			response.HTML(c, http.StatusBadRequest, "ruleName/update", gin.H{
				"ID":     id,
				"Form":   form,
				"Errors": forms.Errors(err),
			})
			return
		}

		rule, _ := form.ToEntity()
		rule.ID = id
		if err := h.service.UpdateRuleName(rule); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Rule %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "rule_name").Uint("id", id).Msg("failed to update rule name")
			response.RedirectWithError(c, listPath, "Could not update the rule, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Rule updated successfully")
	}
}

func (h *GinHandlers) DeleteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := h.service.DeleteRuleName(id); err != nil {
			if errors.Is(err, ErrNotFound) {
				response.RedirectWithError(c, listPath, fmt.Sprintf("Rule %d not found", id))
				return
			}
			log.Error().Err(err).Str("entity", "rule_name").Uint("id", id).Msg("failed to delete rule name")
			response.RedirectWithError(c, listPath, "Could not delete the rule, please try again")
			return
		}

		response.RedirectWithSuccess(c, listPath, "Rule deleted successfully")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.RedirectWithError(c, listPath, "Invalid rule id")
		return 0, false
	}
	return uint(id), true
}
