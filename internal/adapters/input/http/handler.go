package http

import (
	"errors"
	"net/url"
	"time"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/input"
	"bbq-enquiry/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for the knowledge and
// post-call endpoints
type HTTPHandler struct {
	knowledge input.KnowledgeService
	postCall  input.PostCallService
	db        *gorm.DB
	exportDir string
	validator validator.Validator
}

// New func - Creates new HTTP handler. db is nil when bookings run on the
// in-memory repository.
func New(knowledge input.KnowledgeService, postCall input.PostCallService, db *gorm.DB, exportDir string) *HTTPHandler {
	return &HTTPHandler{
		knowledge: knowledge,
		postCall:  postCall,
		db:        db,
		exportDir: exportDir,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if hdl.db != nil {
		sqlDB, err := hdl.db.DB()
		if err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
		}
		if err = sqlDB.Ping(); err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// ListCities func
// ListCities godoc
// @Summary List cities
// @Description List all cities with outlets
// @Tags Knowledge Base
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/knowledge/cities [get]
func (hdl *HTTPHandler) ListCities(c *fiber.Ctx) error {
	cities, err := hdl.knowledge.ListCities()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"cities": cities})
}

// GetAllRestaurants func
// GetAllRestaurants godoc
// @Summary List all restaurants
// @Description List every canonical outlet identifier in the knowledge base
// @Tags Knowledge Base
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/knowledge/restaurants [get]
func (hdl *HTTPHandler) GetAllRestaurants(c *fiber.Ctx) error {
	restaurants, err := hdl.knowledge.ListAllOutlets()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"restaurants": restaurants})
}

// GetRestaurants func
// GetRestaurants godoc
// @Summary List outlets by city
// @Description List outlet display names for a city
// @Tags Chatbot
// @Produce json
// @param city path string true "city"
// @Success 200 {object} map[string]interface{}
// @Router /api/chatbot/restaurants/{city} [get]
func (hdl *HTTPHandler) GetRestaurants(c *fiber.Ctx) error {
	city := pathParam(c, "city")
	restaurants, err := hdl.knowledge.GetOutletsByCity(city)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	if len(restaurants) == 0 {
		return notFound(c, "No restaurants found in "+city)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"restaurants": restaurants})
}

// GetRestaurantInfo func
// GetRestaurantInfo godoc
// @Summary Outlet info
// @Description Fetch the full record for a canonical outlet identifier
// @Tags Chatbot
// @Produce json
// @param name path string true "canonical outlet identifier"
// @Success 200 {object} map[string]interface{}
// @Router /api/chatbot/restaurant/{name} [get]
func (hdl *HTTPHandler) GetRestaurantInfo(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	info, err := hdl.knowledge.GetOutletInfo(name)
	if errors.Is(err, domain.ErrOutletNotFound) {
		return notFound(c, "Restaurant "+name+" not found")
	}
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(info)
}

// GetRestaurantMenu func
// GetRestaurantMenu godoc
// @Summary Outlet menu
// @Description Fetch the menu lines for a canonical outlet identifier
// @Tags Chatbot
// @Produce json
// @param name path string true "canonical outlet identifier"
// @Success 200 {object} map[string]interface{}
// @Router /api/chatbot/restaurant/{name}/menu [get]
func (hdl *HTTPHandler) GetRestaurantMenu(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	menu, err := hdl.knowledge.GetOutletMenu(name)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	if len(menu) == 0 {
		return notFound(c, "Menu not found for "+name)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"menu": menu})
}

// GetRestaurantFaq func
// GetRestaurantFaq godoc
// @Summary Outlet FAQs
// @Description Fetch FAQ entries, filtered when a query is supplied
// @Tags Chatbot
// @Produce json
// @param name path string true "canonical outlet identifier"
// @param query query string false "filter text"
// @Success 200 {object} map[string]interface{}
// @Router /api/chatbot/restaurant/{name}/faq [get]
func (hdl *HTTPHandler) GetRestaurantFaq(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	query := c.Query("query")
	faq, err := hdl.knowledge.GetOutletFaqs(name, query)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	if len(faq) == 0 {
		if query != "" {
			return notFound(c, "No FAQ found matching '"+query+"'")
		}
		return notFound(c, "FAQ not found for "+name)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"faq": faq})
}

// SearchKnowledge func
// SearchKnowledge godoc
// @Summary Search knowledge base
// @Description Free-text search across all outlets' menus and FAQs
// @Tags Knowledge Base
// @Produce json
// @param query query string true "search text"
// @Success 200 {object} map[string]interface{}
// @Router /api/knowledge/search [get]
func (hdl *HTTPHandler) SearchKnowledge(c *fiber.Ctx) error {
	query := c.Query("query")
	results, err := hdl.knowledge.Search(query)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	if len(results) == 0 {
		return notFound(c, "No results found for '"+query+"'")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"results": results})
}

// AnalyzeCall func
// AnalyzeCall godoc
// @Summary Store call analysis
// @Description Store post-call analysis data for a session
// @Tags Post-Call Analysis
// @Accept application/json
// @Produce json
// @param CallAnalysisRequest body CallAnalysisRequest true "CallAnalysisRequest"
// @Success 200 {object} map[string]interface{}
// @Router /api/post-call/analyze [post]
func (hdl *HTTPHandler) AnalyzeCall(c *fiber.Ctx) error {
	var request CallAnalysisRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	flow := make([]domain.FlowStep, 0, len(request.ConversationFlow))
	for _, step := range request.ConversationFlow {
		flow = append(flow, domain.FlowStep{State: step.State, Message: step.Message})
	}

	analysis := domain.CallAnalysis{
		SessionID:        request.SessionID,
		StartTime:        request.StartTime,
		EndTime:          request.EndTime,
		Duration:         request.Duration,
		UserSatisfaction: request.UserSatisfaction,
		IntentFulfilled:  request.IntentFulfilled,
		ConversationFlow: flow,
		ErrorCount:       request.ErrorCount,
		ResolutionStatus: request.ResolutionStatus,
		PendingActions:   request.PendingActions,
	}
	if err := hdl.postCall.StoreAnalysis(analysis); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Call analysis stored successfully"})
}

// GetCallAnalysis func
// GetCallAnalysis godoc
// @Summary Get call analysis
// @Description Fetch the stored analysis for one session
// @Tags Post-Call Analysis
// @Produce json
// @param session_id path string true "session identifier"
// @Success 200 {object} map[string]interface{}
// @Router /api/post-call/analysis/{session_id} [get]
func (hdl *HTTPHandler) GetCallAnalysis(c *fiber.Ctx) error {
	sessionID := pathParam(c, "session_id")
	analysis, err := hdl.postCall.GetAnalysis(sessionID)
	if errors.Is(err, domain.ErrAnalysisNotFound) {
		return notFound(c, "No analysis found for session "+sessionID)
	}
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(analysis)
}

// ListCallAnalyses func
// ListCallAnalyses godoc
// @Summary List call analyses
// @Description List stored analyses with optional time window and satisfaction filters
// @Tags Post-Call Analysis
// @Produce json
// @param start_date query string false "RFC3339 lower bound on start time"
// @param end_date query string false "RFC3339 upper bound on end time"
// @param min_satisfaction query int false "minimum user satisfaction"
// @Success 200 {object} map[string]interface{}
// @Router /api/post-call/analyses [get]
func (hdl *HTTPHandler) ListCallAnalyses(c *fiber.Ctx) error {
	var query AnalysisQuery
	if err := c.QueryParser(&query); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(query); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	filter := domain.AnalysisFilter{MinSatisfaction: query.MinSatisfaction}
	if query.StartDate != nil {
		start, err := time.Parse(time.RFC3339, *query.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
		}
		filter.StartDate = &start
	}
	if query.EndDate != nil {
		end, err := time.Parse(time.RFC3339, *query.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
		}
		filter.EndDate = &end
	}

	analyses, err := hdl.postCall.ListAnalyses(filter)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"analyses": analyses})
}

// GetMetrics func
// GetMetrics godoc
// @Summary Call metrics
// @Description Aggregated metrics over all stored call analyses
// @Tags Post-Call Analysis
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/post-call/metrics [get]
func (hdl *HTTPHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := hdl.postCall.Metrics()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(metrics)
}

// GetPendingActions func
// GetPendingActions godoc
// @Summary Pending actions
// @Description De-duplicated union of pending actions across analyses
// @Tags Post-Call Analysis
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/post-call/pending-actions [get]
func (hdl *HTTPHandler) GetPendingActions(c *fiber.Ctx) error {
	actions, err := hdl.postCall.PendingActions()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"pending_actions": actions})
}

// ExportAnalyses func
// ExportAnalyses godoc
// @Summary Export call analyses
// @Description Write all analyses to a timestamped JSON file
// @Tags Post-Call Analysis
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/post-call/export [get]
func (hdl *HTTPHandler) ExportAnalyses(c *fiber.Ctx) error {
	filename, err := hdl.postCall.Export(hdl.exportDir)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Analyses exported to " + filename})
}

// pathParam reads a route parameter, undoing URL escaping for outlet
// identifiers that contain spaces
func pathParam(c *fiber.Ctx, name string) string {
	value := c.Params(name)
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

func notFound(c *fiber.Ctx, detail string) error {
	msg := ResponseBody{Status: NotFound}
	msg.Status.Message = []string{detail}
	return c.Status(fiber.StatusNotFound).JSON(msg)
}
