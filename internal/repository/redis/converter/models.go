package converter

// TopProductRedisModel — позиция в закэшированном топе продаж.
type TopProductRedisModel struct {
	Name    string `json:"name"`
	Units   int64  `json:"units"`
	Revenue int64  `json:"revenue"`
}

// TodaySummaryRedisModel — закэшированная сводка за текущий день.
type TodaySummaryRedisModel struct {
	TotalRevenue int64                  `json:"total_revenue"`
	SaleCount    int64                  `json:"sale_count"`
	UnitsSold    int64                  `json:"units_sold"`
	TopProducts  []TopProductRedisModel `json:"top_products"`
}
