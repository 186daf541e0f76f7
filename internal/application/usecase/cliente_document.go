package usecase

import (
	"strings"

	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// BuildClienteDocument convierte clientes (con sus ventas) al documento de
// respuesta del API. Transformación pura, sin efectos.
//
// El bloque "duplicated" se incluye si y solo si el fullName contiene el
// substring literal "Carlos" (case-sensitive). No es detección real de
// duplicados; es contrato observable heredado del backend original.
func BuildClienteDocument(clientes []*entity.Cliente, totalRecords, page int) *dto.ClienteDocument {
	customers := make([]dto.FormattedCliente, 0, len(clientes))
	for _, c := range clientes {
		sales := make([]dto.SaleEntry, 0, len(c.Vendas))
		for _, v := range c.Vendas {
			sales = append(sales, dto.SaleEntry{
				Date:   v.Data.Format(dateLayout),
				Amount: v.Valor,
			})
		}

		formatted := dto.FormattedCliente{
			Info: dto.ClienteInfo{
				FullName: c.FullName,
				Details: dto.ClienteDetails{
					Email:     c.Email,
					BirthDate: c.BirthDate.Format(dateLayout),
				},
			},
			Statistics: dto.ClienteStatistics{Sales: sales},
		}
		if strings.Contains(c.FullName, "Carlos") {
			formatted.Duplicated = &dto.DuplicatedCliente{FullName: c.FullName}
		}
		customers = append(customers, formatted)
	}

	return &dto.ClienteDocument{
		Data: dto.ClienteData{Customers: customers},
		Meta: dto.DocumentMeta{
			TotalRecords: totalRecords,
			Page:         page,
		},
		Redundant: dto.Redundant{Status: "ok"},
	}
}
