package entities

import "time"

// Provider (prestador) is a field agent dispatched to occurrences.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI nome-index: nome
type Provider struct {
	ID       int64     `json:"id"`
	Nome     string    `json:"nome"`
	Telefone string    `json:"telefone,omitempty"`
	Email    string    `json:"email,omitempty"`
	Aprovado bool      `json:"aprovado"`
	CriadoEm time.Time `json:"criado_em"`

	// Reimbursement rates.
	ValorAcionamento   float64 `json:"valor_acionamento"`
	ValorHoraAdicional float64 `json:"valor_hora_adicional"`
	ValorKmAdicional   float64 `json:"valor_km_adicional"`
	FranquiaHoras      float64 `json:"franquia_horas"`
	FranquiaKm         float64 `json:"franquia_km"`
}
