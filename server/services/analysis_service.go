package services

import (
	"fmt"
	"log/slog"

	"privacyassist/dataset"
	"privacyassist/privacy"
	"privacyassist/quality"
	apperrors "privacyassist/server/errors"
	"privacyassist/server/types"
)

// LoggerInterface интерфейс для логирования.
// Используется для улучшения тестируемости и возможности замены реализации.
type LoggerInterface interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
}

// defaultLogger стандартная реализация логгера с использованием slog
type defaultLogger struct {
	logger *slog.Logger
}

func newDefaultLogger() *defaultLogger {
	return &defaultLogger{logger: slog.Default()}
}

func (l *defaultLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *defaultLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }
func (l *defaultLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }

// AnalysisService сервис анализа датасетов: хранит загруженные датасеты
// на время сессии и выполняет по ним анализ приватности и качества.
// Каждый анализ — чистое синхронное вычисление над неизменяемым датасетом.
type AnalysisService struct {
	datasets        *DatasetStore
	privacyAnalyzer *privacy.Analyzer
	qualityAnalyzer *quality.Analyzer
	maxCells        int
	logger          LoggerInterface
}

// NewAnalysisService создает сервис анализа
func NewAnalysisService(datasets *DatasetStore, privacyAnalyzer *privacy.Analyzer, qualityAnalyzer *quality.Analyzer, maxCells int) *AnalysisService {
	return &AnalysisService{
		datasets:        datasets,
		privacyAnalyzer: privacyAnalyzer,
		qualityAnalyzer: qualityAnalyzer,
		maxCells:        maxCells,
		logger:          newDefaultLogger(),
	}
}

// SetLogger заменяет логгер (для тестов)
func (s *AnalysisService) SetLogger(logger LoggerInterface) {
	s.logger = logger
}

// UploadDataset строит датасет из запроса, валидирует его и сохраняет в сессию
func (s *AnalysisService) UploadDataset(req *types.UploadDatasetRequest) (*types.UploadDatasetResponse, error) {
	if len(req.Columns) == 0 {
		return nil, apperrors.NewValidationError("датасет не содержит колонок", nil)
	}

	columns := make([]dataset.Column, 0, len(req.Columns))
	cells := 0
	for _, uc := range req.Columns {
		col, err := dataset.InferColumn(uc.Name, uc.Type, uc.Values)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("некорректная колонка %q", uc.Name), err)
		}
		cells += len(col.Values)
		columns = append(columns, col)
	}

	if s.maxCells > 0 && cells > s.maxCells {
		return nil, apperrors.NewPayloadTooLargeError(
			fmt.Sprintf("датасет слишком велик: %d ячеек при лимите %d", cells, s.maxCells), nil)
	}

	ds, err := dataset.New(columns)
	if err != nil {
		// Нарушение прямоугольности — ошибка контракта вызывающей стороны
		return nil, apperrors.NewValidationError("таблица не прямоугольная", err)
	}

	id := s.datasets.Put(req.Name, ds)
	s.logger.Info("dataset uploaded",
		"dataset_id", id,
		"rows", ds.Rows(),
		"columns", len(ds.Columns),
	)

	return &types.UploadDatasetResponse{
		DatasetID: id,
		Name:      req.Name,
		Summary:   ds.Summarize(),
	}, nil
}

// GetDatasetSummary возвращает сводку по загруженному датасету
func (s *AnalysisService) GetDatasetSummary(id string) (*types.DatasetSummaryResponse, error) {
	name, ds, ok := s.datasets.Get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError("датасет не найден", nil)
	}

	return &types.DatasetSummaryResponse{
		DatasetID: id,
		Name:      name,
		Summary:   ds.Summarize(),
	}, nil
}

// AnalyzePrivacy выполняет анализ приватности загруженного датасета
func (s *AnalysisService) AnalyzePrivacy(id string) (*types.AnalyzePrivacyResponse, error) {
	_, ds, ok := s.datasets.Get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError("датасет не найден", nil)
	}

	result, charts := s.privacyAnalyzer.Analyze(ds)
	s.logger.Info("privacy analysis completed",
		"dataset_id", id,
		"overall_privacy_score", result.OverallPrivacyScore,
		"high_risk_columns", len(result.HighRiskColumns),
	)

	return &types.AnalyzePrivacyResponse{
		DatasetID: id,
		Result:    result,
		Charts:    charts,
	}, nil
}

// AnalyzeQuality выполняет анализ качества загруженного датасета
// с опциональными пользовательскими ограничениями
func (s *AnalysisService) AnalyzeQuality(id string, constraints []quality.Constraint) (*types.AnalyzeQualityResponse, error) {
	_, ds, ok := s.datasets.Get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError("датасет не найден", nil)
	}

	result, charts := s.qualityAnalyzer.Analyze(ds, constraints)
	s.logger.Info("quality analysis completed",
		"dataset_id", id,
		"overall_quality_score", result.OverallQualityScore,
		"constraints_total", result.CustomConstraints.TotalCount,
	)

	return &types.AnalyzeQualityResponse{
		DatasetID: id,
		Result:    result,
		Charts:    charts,
	}, nil
}

// DeleteDataset удаляет датасет из сессии
func (s *AnalysisService) DeleteDataset(id string) {
	s.datasets.Delete(id)
}
