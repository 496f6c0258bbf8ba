package request

import "ocorrencias_api/internal/domain/entities"

type ProviderRequest struct {
	Nome               string  `json:"nome" binding:"required"`
	Telefone           string  `json:"telefone"`
	Email              string  `json:"email"`
	Aprovado           bool    `json:"aprovado"`
	ValorAcionamento   float64 `json:"valor_acionamento"`
	ValorHoraAdicional float64 `json:"valor_hora_adicional"`
	ValorKmAdicional   float64 `json:"valor_km_adicional"`
	FranquiaHoras      float64 `json:"franquia_horas"`
	FranquiaKm         float64 `json:"franquia_km"`
}

func (r ProviderRequest) ToEntity() entities.Provider {
	return entities.Provider{
		Nome:               r.Nome,
		Telefone:           r.Telefone,
		Email:              r.Email,
		Aprovado:           r.Aprovado,
		ValorAcionamento:   r.ValorAcionamento,
		ValorHoraAdicional: r.ValorHoraAdicional,
		ValorKmAdicional:   r.ValorKmAdicional,
		FranquiaHoras:      r.FranquiaHoras,
		FranquiaKm:         r.FranquiaKm,
	}
}
