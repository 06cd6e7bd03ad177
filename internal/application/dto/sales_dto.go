package dto

// SalesQuery parámetros de GET /api/sales.
type SalesQuery struct {
	Limit      string `query:"limit"`  // default 100
	Offset     string `query:"offset"` // default 0
	Retailer   string `query:"retailer"`
	City       string `query:"city"`
	FiscalYear string `query:"fiscal_year"`
	SortBy     string `query:"sort_by"`    // sales|retailer|date (default sales)
	SortOrder  string `query:"sort_order"` // asc|desc (default desc)
}

// RetailerSalesDTO ventas agregadas de un minorista.
type RetailerSalesDTO struct {
	RetailerNumber   string `json:"retailer_number"`
	Location         string `json:"location"`
	Address          string `json:"address"`
	City             string `json:"city"`
	State            string `json:"state"`
	Zip              string `json:"zip"`
	County           string `json:"county"`
	TransactionCount int64  `json:"transaction_count"`
	TotalSales       string `json:"total_sales"`
	AvgSales         string `json:"avg_sales"`
	LatestMonth      string `json:"latest_month"`
}

// SalesListResponse respuesta de GET /api/sales.
type SalesListResponse struct {
	Sales   []RetailerSalesDTO `json:"sales"`
	Count   int64              `json:"count"`
	Showing int                `json:"showing"`
}

// FiscalYearStatsDTO totales de un año fiscal.
type FiscalYearStatsDTO struct {
	TotalSales       string `json:"total_sales"`
	TransactionCount int64  `json:"transaction_count"`
	RetailerCount    int64  `json:"retailer_count"`
}

// SalesStatsResponse respuesta de GET /api/sales/stats.
type SalesStatsResponse struct {
	TotalSales     string                        `json:"total_sales"`
	TotalRetailers int64                         `json:"total_retailers"`
	TotalCities    int64                         `json:"total_cities"`
	ByFiscalYear   map[string]FiscalYearStatsDTO `json:"by_fiscal_year"`
}
