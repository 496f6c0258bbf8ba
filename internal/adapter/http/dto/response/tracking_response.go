package response

import (
	"time"

	"ocorrencias_api/internal/domain/entities"
)

type TrackingLinkResponse struct {
	OcorrenciaID int64  `json:"ocorrencia_id"`
	Hash         string `json:"hash"`
	URL          string `json:"url"`
}

type TrackingProviderResponse struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone,omitempty"`
}

type TrackingPositionResponse struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecebidoEm time.Time `json:"recebido_em"`
}

// TrackingSnapshotResponse is the public payload. It never carries client,
// expense or outcome data.
type TrackingSnapshotResponse struct {
	OcorrenciaID  int64                     `json:"ocorrencia_id"`
	Tipo          string                    `json:"tipo"`
	Placa         string                    `json:"placa"`
	Modelo        string                    `json:"modelo,omitempty"`
	Cor           string                    `json:"cor,omitempty"`
	Status        string                    `json:"status"`
	Inicio        *time.Time                `json:"inicio"`
	Chegada       *time.Time                `json:"chegada"`
	Prestador     *TrackingProviderResponse `json:"prestador"`
	UltimaPosicao *TrackingPositionResponse `json:"ultima_posicao"`
	Rastreavel    bool                      `json:"rastreavel"`
}

func FromTrackingLink(o entities.Occurrence, basePath string) TrackingLinkResponse {
	return TrackingLinkResponse{
		OcorrenciaID: o.ID,
		Hash:         o.TrackingHash,
		URL:          basePath + "/" + o.TrackingHash,
	}
}

func FromTrackingSnapshot(s entities.TrackingSnapshot) TrackingSnapshotResponse {
	res := TrackingSnapshotResponse{
		OcorrenciaID: s.OcorrenciaID,
		Tipo:         s.Tipo,
		Placa:        s.Placa,
		Modelo:       s.Modelo,
		Cor:          s.Cor,
		Status:       string(s.Status),
		Inicio:       s.Inicio,
		Chegada:      s.Chegada,
		Rastreavel:   s.Rastreavel,
	}
	if s.PrestadorNome != "" {
		res.Prestador = &TrackingProviderResponse{Nome: s.PrestadorNome, Telefone: s.PrestadorTelefone}
	}
	if s.UltimaPosicao != nil {
		res.UltimaPosicao = &TrackingPositionResponse{
			Latitude:   s.UltimaPosicao.Latitude,
			Longitude:  s.UltimaPosicao.Longitude,
			RecebidoEm: s.UltimaPosicao.RecordedAt,
		}
	}
	return res
}
