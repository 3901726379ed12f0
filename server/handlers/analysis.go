package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "privacyassist/server/errors"
	"privacyassist/server/services"
	"privacyassist/server/types"
)

// AnalysisHandler обработчики эндпоинтов загрузки и анализа датасетов
type AnalysisHandler struct {
	service services.AnalysisServiceInterface
}

// NewAnalysisHandler создает обработчик анализа
func NewAnalysisHandler(service services.AnalysisServiceInterface) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// HandleUploadDataset обработчик загрузки датасета
// @Summary Загрузить датасет в сессию
// @Description Принимает таблицу с именованными типизированными колонками и сохраняет её на время сессии. Типы колонок выводятся из значений, если не указаны явно.
// @Tags datasets
// @Accept json
// @Produce json
// @Param dataset body types.UploadDatasetRequest true "Датасет"
// @Success 200 {object} types.UploadDatasetResponse "Идентификатор и сводка"
// @Failure 400 {object} types.ErrorResponse "Некорректный датасет"
// @Failure 413 {object} types.ErrorResponse "Датасет превышает лимит размера"
// @Router /api/datasets [post]
func (h *AnalysisHandler) HandleUploadDataset(c *gin.Context) {
	var req types.UploadDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("некорректное тело запроса", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	resp, err := h.service.UploadDataset(&req)
	if err != nil {
		SendAppError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

// HandleDatasetSummary обработчик сводки по датасету
// @Summary Получить сводку по загруженному датасету
// @Description Возвращает размеры таблицы и по-колоночную статистику: тип, уникальные значения, пропуски
// @Tags datasets
// @Produce json
// @Param id path string true "Идентификатор датасета"
// @Success 200 {object} types.DatasetSummaryResponse "Сводка"
// @Failure 404 {object} types.ErrorResponse "Датасет не найден"
// @Router /api/datasets/{id} [get]
func (h *AnalysisHandler) HandleDatasetSummary(c *gin.Context) {
	resp, err := h.service.GetDatasetSummary(c.Param("id"))
	if err != nil {
		SendAppError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

// HandleDeleteDataset обработчик удаления датасета из сессии
// @Summary Удалить датасет
// @Tags datasets
// @Produce json
// @Param id path string true "Идентификатор датасета"
// @Success 200 {object} map[string]bool "Подтверждение"
// @Router /api/datasets/{id} [delete]
func (h *AnalysisHandler) HandleDeleteDataset(c *gin.Context) {
	h.service.DeleteDataset(c.Param("id"))
	SendJSONResponse(c, http.StatusOK, gin.H{"deleted": true})
}

// HandleAnalyzePrivacy обработчик анализа приватности
// @Summary Выполнить анализ приватности датасета
// @Description Считает по-колоночные риски приватности, информационно-теоретические метрики и агрегаты уровня датасета. Возвращает результат и числовые ряды для графиков.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body types.AnalyzePrivacyRequest true "Запрос анализа"
// @Success 200 {object} types.AnalyzePrivacyResponse "Результат анализа приватности"
// @Failure 400 {object} types.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} types.ErrorResponse "Датасет не найден"
// @Router /api/privacy/analyze [post]
func (h *AnalysisHandler) HandleAnalyzePrivacy(c *gin.Context) {
	var req types.AnalyzePrivacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("dataset_id is required", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	resp, err := h.service.AnalyzePrivacy(req.DatasetID)
	if err != nil {
		SendAppError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

// HandleAnalyzeQuality обработчик анализа качества
// @Summary Выполнить анализ качества датасета
// @Description Считает шесть измерений качества, проверяет пользовательские ограничения и возвращает взвешенный общий скор с рядами для графиков.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body types.AnalyzeQualityRequest true "Запрос анализа с опциональными ограничениями"
// @Success 200 {object} types.AnalyzeQualityResponse "Результат анализа качества"
// @Failure 400 {object} types.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} types.ErrorResponse "Датасет не найден"
// @Router /api/quality/analyze [post]
func (h *AnalysisHandler) HandleAnalyzeQuality(c *gin.Context) {
	var req types.AnalyzeQualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("dataset_id is required", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	resp, err := h.service.AnalyzeQuality(req.DatasetID, req.Constraints)
	if err != nil {
		SendAppError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

// HandleHealth обработчик проверки живости
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Статус сервиса"
// @Router /health [get]
func (h *AnalysisHandler) HandleHealth(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, gin.H{"status": "ok"})
}
