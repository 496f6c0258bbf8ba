package response

import (
	"time"

	"ocorrencias_api/internal/domain/entities"
)

type ProviderResponse struct {
	ID                 int64     `json:"id"`
	Nome               string    `json:"nome"`
	Telefone           string    `json:"telefone,omitempty"`
	Email              string    `json:"email,omitempty"`
	Aprovado           bool      `json:"aprovado"`
	ValorAcionamento   float64   `json:"valor_acionamento"`
	ValorHoraAdicional float64   `json:"valor_hora_adicional"`
	ValorKmAdicional   float64   `json:"valor_km_adicional"`
	FranquiaHoras      float64   `json:"franquia_horas"`
	FranquiaKm         float64   `json:"franquia_km"`
	CriadoEm           time.Time `json:"criado_em"`
}

func FromProvider(p entities.Provider) ProviderResponse {
	return ProviderResponse{
		ID:                 p.ID,
		Nome:               p.Nome,
		Telefone:           p.Telefone,
		Email:              p.Email,
		Aprovado:           p.Aprovado,
		ValorAcionamento:   p.ValorAcionamento,
		ValorHoraAdicional: p.ValorHoraAdicional,
		ValorKmAdicional:   p.ValorKmAdicional,
		FranquiaHoras:      p.FranquiaHoras,
		FranquiaKm:         p.FranquiaKm,
		CriadoEm:           p.CriadoEm,
	}
}

func FromProviders(list []entities.Provider) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProvider(p))
	}
	return out
}
