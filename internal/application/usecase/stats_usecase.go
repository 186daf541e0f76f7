package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/domain"
	"github.com/jhoicas/toystore-api/internal/domain/entity"
	"github.com/jhoicas/toystore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StatsUseCase agregador de estadísticas: ventas por día y clientes campeones.
// Los cálculos son en memoria sobre las filas que entrega el repositorio.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el agregador.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// SalesByDay agrupa las ventas del rango [dataInicio, dataFim] (inclusivo) por
// día calendario, con total y cantidad por día, en orden ascendente de fecha.
// Sin ambos extremos presentes no se filtra.
func (uc *StatsUseCase) SalesByDay(ctx context.Context, q dto.SalesByDayQuery) (*dto.SalesByDayResponse, error) {
	filter := rangeFilter{}
	if q.DataInicio != "" && q.DataFim != "" {
		inicio, err := dto.ParseDate(q.DataInicio)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fim, err := dto.ParseDate(q.DataFim)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.inicio, filter.fim = &inicio, &fim
	}

	sales, err := uc.repo.ListSalesInRange(ctx, filter.inicio, filter.fim)
	if err != nil {
		return nil, err
	}

	// El repositorio entrega las ventas ordenadas por fecha ascendente; la
	// agrupación preserva el orden de primera aparición de cada día.
	days := make([]dto.DayStats, 0)
	index := make(map[string]int)
	for _, s := range sales {
		day := s.Data.Format(dateLayout)
		i, ok := index[day]
		if !ok {
			index[day] = len(days)
			days = append(days, dto.DayStats{Date: day, TotalSales: decimal.Zero})
			i = index[day]
		}
		days[i].TotalSales = days[i].TotalSales.Add(s.Valor)
		days[i].SaleCount++
	}

	period := "todos los períodos"
	if filter.inicio != nil {
		period = fmt.Sprintf("%s a %s", q.DataInicio, q.DataFim)
	}
	return &dto.SalesByDayResponse{
		Message: "estadísticas de ventas por día",
		Data:    days,
		Meta: dto.SalesByDayMeta{
			TotalDays: len(days),
			Period:    period,
		},
	}, nil
}

// ClienteStats calcula los tres campeones independientes: mayor volumen total,
// mayor promedio por venta y más días distintos con ventas. Comparación
// estrictamente mayor: ante empate conserva al primer cliente encontrado
// (el repositorio entrega los clientes ordenados por id ascendente).
func (uc *StatsUseCase) ClienteStats(ctx context.Context) (*dto.ClienteStatsResponse, error) {
	clientes, err := uc.repo.ListClientesWithVendas(ctx)
	if err != nil {
		return nil, err
	}

	var topVolume, topAverage, topFrequency *dto.Champion
	maxVolume := decimal.Zero
	maxAverage := decimal.Zero
	maxFrequency := 0
	withSales := 0

	for _, c := range clientes {
		if len(c.Vendas) == 0 {
			continue
		}
		withSales++

		volume := decimal.Zero
		uniqueDays := make(map[string]struct{})
		for _, v := range c.Vendas {
			volume = volume.Add(v.Valor)
			uniqueDays[v.Data.Format(dateLayout)] = struct{}{}
		}
		count := len(c.Vendas)
		average := volume.Div(decimal.NewFromInt(int64(count)))
		frequency := len(uniqueDays)

		if volume.GreaterThan(maxVolume) {
			maxVolume = volume
			topVolume = championFor(c, volume, count)
		}
		if average.GreaterThan(maxAverage) {
			maxAverage = average
			champ := championFor(c, volume, count)
			avg := average
			champ.AverageSale = &avg
			topAverage = champ
		}
		if frequency > maxFrequency {
			maxFrequency = frequency
			champ := championFor(c, volume, count)
			freq := frequency
			champ.DistinctSaleDays = &freq
			topFrequency = champ
		}
	}

	return &dto.ClienteStatsResponse{
		Message: "estadísticas de clientes",
		Data: dto.ChampionSet{
			TopVolume:    topVolume,
			TopAverage:   topAverage,
			TopFrequency: topFrequency,
		},
		Meta: dto.ClienteStatsMeta{
			TotalCustomers:     len(clientes),
			CustomersWithSales: withSales,
		},
	}, nil
}

type rangeFilter struct {
	inicio, fim *time.Time
}

func championFor(c *entity.Cliente, volume decimal.Decimal, count int) *dto.Champion {
	return &dto.Champion{
		Customer: dto.ChampionCustomer{
			ID:       c.ID,
			FullName: c.FullName,
			Email:    c.Email,
		},
		TotalVolume: volume,
		SaleCount:   count,
	}
}
