package types

import (
	"privacyassist/dataset"
	"privacyassist/privacy"
	"privacyassist/quality"
)

// UploadColumn одна колонка загружаемого датасета. Тип опционален:
// если не указан, выводится из значений.
type UploadColumn struct {
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type,omitempty"`
	Values []any  `json:"values"`
}

// UploadDatasetRequest запрос загрузки датасета в сессию
type UploadDatasetRequest struct {
	Name    string         `json:"name"`
	Columns []UploadColumn `json:"columns" binding:"required"`
}

// UploadDatasetResponse ответ на загрузку датасета
type UploadDatasetResponse struct {
	DatasetID string          `json:"dataset_id"`
	Name      string          `json:"name"`
	Summary   dataset.Summary `json:"summary"`
}

// DatasetSummaryResponse сводка по загруженному датасету
type DatasetSummaryResponse struct {
	DatasetID string          `json:"dataset_id"`
	Name      string          `json:"name"`
	Summary   dataset.Summary `json:"summary"`
}

// AnalyzePrivacyRequest запрос анализа приватности
type AnalyzePrivacyRequest struct {
	DatasetID string `json:"dataset_id" binding:"required"`
}

// AnalyzePrivacyResponse результат анализа приватности с рядами для графиков
type AnalyzePrivacyResponse struct {
	DatasetID string             `json:"dataset_id"`
	Result    *privacy.Result    `json:"result"`
	Charts    *privacy.ChartData `json:"charts"`
}

// AnalyzeQualityRequest запрос анализа качества с опциональными ограничениями
type AnalyzeQualityRequest struct {
	DatasetID   string               `json:"dataset_id" binding:"required"`
	Constraints []quality.Constraint `json:"constraints,omitempty"`
}

// AnalyzeQualityResponse результат анализа качества с рядами для графиков
type AnalyzeQualityResponse struct {
	DatasetID string             `json:"dataset_id"`
	Result    *quality.Result    `json:"result"`
	Charts    *quality.ChartData `json:"charts"`
}

// ErrorResponse стандартный формат ошибки API
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
