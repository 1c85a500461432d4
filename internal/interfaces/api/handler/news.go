package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"backoffice/internal/application/dto"
	"backoffice/internal/application/service"
	appErrors "backoffice/internal/pkg/errors"
	"backoffice/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewsHandler serves the news surface: CRUD-lite plus the reminder pair.
type NewsHandler struct {
	newsService     service.NewsService
	reminderService service.ReminderService
	identity        IdentityResolver
	log             logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(
	newsService service.NewsService,
	reminderService service.ReminderService,
	identity IdentityResolver,
	log logger.Logger,
) *NewsHandler {
	return &NewsHandler{
		newsService:     newsService,
		reminderService: reminderService,
		identity:        identity,
		log:             log,
	}
}

// CreateNews handles POST /v1/news/create.
func (h *NewsHandler) CreateNews(c echo.Context) error {
	var req dto.CreateNewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.Date.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and date are required"})
	}

	newsID, err := h.newsService.CreateNews(c.Request().Context(), req)
	if err != nil {
		h.log.Error("Create news request failed", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create news"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": newsID})
}

// ListNews handles GET /v1/news/get.
func (h *NewsHandler) ListNews(c echo.Context) error {
	news, err := h.newsService.ListNews(c.Request().Context())
	if err != nil {
		h.log.Error("List news request failed", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list news"})
	}
	return c.JSON(http.StatusOK, news)
}

// GetNewsByID handles GET /v1/news/get/by/id/:news_id.
func (h *NewsHandler) GetNewsByID(c echo.Context) error {
	newsID, err := parseNewsID(c.Param("news_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid news id"})
	}

	news, err := h.newsService.GetNews(c.Request().Context(), newsID)
	if err != nil {
		if errors.Is(err, appErrors.ErrNewsNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "news not found"})
		}
		h.log.Error(fmt.Sprintf("Get news %d request failed", newsID), err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to get news"})
	}
	return c.JSON(http.StatusOK, news)
}

// RequestReminder handles POST /v1/news/reminder.
func (h *NewsHandler) RequestReminder(c echo.Context) error {
	userID, err := h.identity.CurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req dto.RequestReminderRequest
	if err := c.Bind(&req); err != nil || req.NewsID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "news_id is required"})
	}
	req.RequesterID = userID

	if _, err := h.reminderService.RequestReminder(c.Request().Context(), req); err != nil {
		if errors.Is(err, appErrors.ErrNewsNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "news not found"})
		}
		h.log.Error(fmt.Sprintf("Reminder request failed for news %d", req.NewsID), err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reminder"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// CancelReminder handles DELETE /v1/news/reminder. Cancelling a reminder that
// does not exist still returns 200.
func (h *NewsHandler) CancelReminder(c echo.Context) error {
	userID, err := h.identity.CurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req dto.CancelReminderRequest
	if err := c.Bind(&req); err != nil || req.NewsID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "news_id is required"})
	}
	req.RequesterID = userID

	if err := h.reminderService.CancelReminder(c.Request().Context(), req); err != nil {
		if errors.Is(err, appErrors.ErrNewsNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "news not found"})
		}
		h.log.Error(fmt.Sprintf("Reminder cancellation failed for news %d", req.NewsID), err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel reminder"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func parseNewsID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid news id %q", raw)
	}
	return uint(id), nil
}
