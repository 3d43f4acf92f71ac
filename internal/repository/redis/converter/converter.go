package converter

import (
	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/usecase"
)

// TodaySummaryConverter преобразует сводку дня между usecase и Redis-моделью.
type TodaySummaryConverter interface {
	ToRedisModel(entity *usecase.TodaySummaryRes) *TodaySummaryRedisModel
	ToUseCase(model *TodaySummaryRedisModel) *usecase.TodaySummaryRes
}

type TodaySummaryConverterImpl struct{}

func NewTodaySummaryConverterImpl() *TodaySummaryConverterImpl {
	return &TodaySummaryConverterImpl{}
}

func (c *TodaySummaryConverterImpl) ToRedisModel(entity *usecase.TodaySummaryRes) *TodaySummaryRedisModel {
	top := make([]TopProductRedisModel, 0, len(entity.TopProducts))
	for _, p := range entity.TopProducts {
		top = append(top, TopProductRedisModel{
			Name:    p.Name,
			Units:   p.Units,
			Revenue: int64(p.Revenue),
		})
	}

	return &TodaySummaryRedisModel{
		TotalRevenue: int64(entity.TotalRevenue),
		SaleCount:    entity.SaleCount,
		UnitsSold:    entity.UnitsSold,
		TopProducts:  top,
	}
}

func (c *TodaySummaryConverterImpl) ToUseCase(model *TodaySummaryRedisModel) *usecase.TodaySummaryRes {
	top := make([]usecase.TopProduct, 0, len(model.TopProducts))
	for _, p := range model.TopProducts {
		top = append(top, usecase.TopProduct{
			Name:    p.Name,
			Units:   p.Units,
			Revenue: domain.Money(p.Revenue),
		})
	}

	return &usecase.TodaySummaryRes{
		TotalRevenue: domain.Money(model.TotalRevenue),
		SaleCount:    model.SaleCount,
		UnitsSold:    model.UnitsSold,
		TopProducts:  top,
	}
}
