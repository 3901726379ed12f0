package services

import (
	"privacyassist/quality"
	"privacyassist/server/types"
)

// AnalysisServiceInterface интерфейс сервиса анализа.
// Используется обработчиками для улучшения тестируемости.
type AnalysisServiceInterface interface {
	UploadDataset(req *types.UploadDatasetRequest) (*types.UploadDatasetResponse, error)
	GetDatasetSummary(id string) (*types.DatasetSummaryResponse, error)
	AnalyzePrivacy(id string) (*types.AnalyzePrivacyResponse, error)
	AnalyzeQuality(id string, constraints []quality.Constraint) (*types.AnalyzeQualityResponse, error)
	DeleteDataset(id string)
}

// Проверка соответствия реализации интерфейсу
var _ AnalysisServiceInterface = (*AnalysisService)(nil)
