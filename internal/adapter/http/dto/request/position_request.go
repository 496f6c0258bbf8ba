package request

import (
	"time"

	"ocorrencias_api/internal/usecase"
)

// PositionRequest is a GPS fix posted by a provider device. timestamp is
// the device clock and is stored as metadata only.
type PositionRequest struct {
	PrestadorID  int64      `json:"prestadorId"`
	OcorrenciaID *int64     `json:"ocorrenciaId"`
	Latitude     *float64   `json:"latitude" binding:"required"`
	Longitude    *float64   `json:"longitude" binding:"required"`
	Velocidade   *float64   `json:"velocidade"`
	Direcao      *float64   `json:"direcao"`
	Altitude     *float64   `json:"altitude"`
	Precisao     *float64   `json:"precisao"`
	Bateria      *float64   `json:"bateria"`
	Status       string     `json:"status"`
	Timestamp    *time.Time `json:"timestamp"`
}

func (r PositionRequest) ToInput() usecase.PositionInput {
	in := usecase.PositionInput{
		PrestadorID:  r.PrestadorID,
		OcorrenciaID: r.OcorrenciaID,
		Velocidade:   r.Velocidade,
		Direcao:      r.Direcao,
		Altitude:     r.Altitude,
		Precisao:     r.Precisao,
		Bateria:      r.Bateria,
		Status:       r.Status,
		Timestamp:    r.Timestamp,
	}
	if r.Latitude != nil {
		in.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		in.Longitude = *r.Longitude
	}
	return in
}
