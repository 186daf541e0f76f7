package dto

import "github.com/shopspring/decimal"

// SalesByDayQuery rango opcional para las estadísticas por día.
type SalesByDayQuery struct {
	DataInicio string `query:"dataInicio"`
	DataFim    string `query:"dataFim"`
}

// DayStats totales de un día calendario.
type DayStats struct {
	Date       string          `json:"date"`
	TotalSales decimal.Decimal `json:"totalSales"`
	SaleCount  int             `json:"saleCount"`
}

// SalesByDayMeta metadatos del agregado por día.
type SalesByDayMeta struct {
	TotalDays int    `json:"totalDays"`
	Period    string `json:"period"`
}

// SalesByDayResponse respuesta de GET /stats/sales-by-day.
type SalesByDayResponse struct {
	Message string         `json:"message"`
	Data    []DayStats     `json:"data"`
	Meta    SalesByDayMeta `json:"meta"`
}

// ChampionCustomer identificación del cliente campeón.
type ChampionCustomer struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Champion un cliente campeón con sus métricas. totalVolume y saleCount
// acompañan siempre; averageSale y distinctSaleDays solo en su categoría.
type Champion struct {
	Customer         ChampionCustomer `json:"customer"`
	TotalVolume      decimal.Decimal  `json:"totalVolume"`
	SaleCount        int              `json:"saleCount"`
	AverageSale      *decimal.Decimal `json:"averageSale,omitempty"`
	DistinctSaleDays *int             `json:"distinctSaleDays,omitempty"`
}

// ChampionSet los tres campeones independientes; null cuando nadie tiene ventas.
type ChampionSet struct {
	TopVolume    *Champion `json:"topVolume"`
	TopAverage   *Champion `json:"topAverage"`
	TopFrequency *Champion `json:"topFrequency"`
}

// ClienteStatsMeta metadatos del agregado de campeones.
type ClienteStatsMeta struct {
	TotalCustomers     int `json:"totalCustomers"`
	CustomersWithSales int `json:"customersWithSales"`
}

// ClienteStatsResponse respuesta de GET /stats/customers.
type ClienteStatsResponse struct {
	Message string           `json:"message"`
	Data    ChampionSet      `json:"data"`
	Meta    ClienteStatsMeta `json:"meta"`
}
