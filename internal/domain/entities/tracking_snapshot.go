package entities

import "time"

// TrackingSnapshot is the read-only projection served on the public
// tracking link. It carries nothing a client portal user could not already
// see about their own occurrence.
type TrackingSnapshot struct {
	OcorrenciaID int64
	Tipo         string
	Placa        string
	Modelo       string
	Cor          string
	Status       OccurrenceStatus
	Inicio       *time.Time
	Chegada      *time.Time

	PrestadorNome     string
	PrestadorTelefone string
	UltimaPosicao     *PositionSample

	Rastreavel bool
}
