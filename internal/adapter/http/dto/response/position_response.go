package response

import (
	"time"

	"ocorrencias_api/internal/domain/entities"
)

// PositionResponse carries both clocks: timestamp is what the device
// reported, recebido_em is the server time that orders samples.
type PositionResponse struct {
	ID           string     `json:"id"`
	PrestadorID  int64      `json:"prestador_id"`
	OcorrenciaID *int64     `json:"ocorrencia_id"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Velocidade   *float64   `json:"velocidade,omitempty"`
	Direcao      *float64   `json:"direcao,omitempty"`
	Altitude     *float64   `json:"altitude,omitempty"`
	Precisao     *float64   `json:"precisao,omitempty"`
	Bateria      *float64   `json:"bateria,omitempty"`
	Status       string     `json:"status"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
	RecebidoEm   time.Time  `json:"recebido_em"`
}

type LivePositionResponse struct {
	PositionResponse
	PrestadorNome     string `json:"prestador_nome"`
	PrestadorTelefone string `json:"prestador_telefone,omitempty"`
}

func FromPosition(p entities.PositionSample) PositionResponse {
	return PositionResponse{
		ID:           p.ID,
		PrestadorID:  p.PrestadorID,
		OcorrenciaID: p.OcorrenciaID,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Velocidade:   p.Velocidade,
		Direcao:      p.Direcao,
		Altitude:     p.Altitude,
		Precisao:     p.Precisao,
		Bateria:      p.Bateria,
		Status:       p.Status,
		Timestamp:    p.DeviceTime,
		RecebidoEm:   p.RecordedAt,
	}
}

func FromPositions(list []entities.PositionSample) []PositionResponse {
	out := make([]PositionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPosition(p))
	}
	return out
}

func FromLivePositions(list []entities.LivePosition) []LivePositionResponse {
	out := make([]LivePositionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, LivePositionResponse{
			PositionResponse:  FromPosition(p.PositionSample),
			PrestadorNome:     p.PrestadorNome,
			PrestadorTelefone: p.PrestadorTelefone,
		})
	}
	return out
}
