package response

import (
	"time"

	"ocorrencias_api/internal/domain/entities"
)

type PhotoResponse struct {
	ID       string    `json:"id"`
	URL      string    `json:"url"`
	Legenda  string    `json:"legenda,omitempty"`
	CriadoEm time.Time `json:"criado_em"`
}

type ExpenseItemResponse struct {
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
}

// OccurrenceResponse is the staff view. despesas and km are null when
// unknown, never zero.
type OccurrenceResponse struct {
	ID        int64  `json:"id"`
	Tipo      string `json:"tipo"`
	Placa1    string `json:"placa1"`
	Placa2    string `json:"placa2,omitempty"`
	Placa3    string `json:"placa3,omitempty"`
	Modelo    string `json:"modelo,omitempty"`
	Cor       string `json:"cor,omitempty"`
	Descricao string `json:"descricao,omitempty"`
	Endereco  string `json:"endereco,omitempty"`
	Cidade    string `json:"cidade,omitempty"`
	Estado    string `json:"estado,omitempty"`
	Operador  string `json:"operador,omitempty"`

	Cliente     string `json:"cliente"`
	ClienteID   int64  `json:"cliente_id"`
	Prestador   string `json:"prestador,omitempty"`
	PrestadorID int64  `json:"prestador_id,omitempty"`

	Status    string `json:"status"`
	Resultado string `json:"resultado,omitempty"`

	CriadoEm     time.Time  `json:"criado_em"`
	AtualizadoEm time.Time  `json:"atualizado_em"`
	Inicio       *time.Time `json:"inicio"`
	Chegada      *time.Time `json:"chegada"`
	Termino      *time.Time `json:"termino"`
	EncerradaEm  *time.Time `json:"encerrada_em"`

	Despesas           *float64              `json:"despesas"`
	DespesasDetalhadas []ExpenseItemResponse `json:"despesas_detalhadas"`
	Km                 *float64              `json:"km"`

	Fotos        []PhotoResponse `json:"fotos"`
	TrackingHash *string         `json:"tracking_hash,omitempty"`
}

func FromOccurrence(o entities.Occurrence) OccurrenceResponse {
	res := OccurrenceResponse{
		ID:                 o.ID,
		Tipo:               o.Tipo,
		Placa1:             o.Placa1,
		Placa2:             o.Placa2,
		Placa3:             o.Placa3,
		Modelo:             o.Modelo,
		Cor:                o.Cor,
		Descricao:          o.Descricao,
		Endereco:           o.Endereco,
		Cidade:             o.Cidade,
		Estado:             o.Estado,
		Operador:           o.Operador,
		Cliente:            o.Cliente,
		ClienteID:          o.ClienteID,
		Prestador:          o.Prestador,
		PrestadorID:        o.PrestadorID,
		Status:             string(o.Status),
		Resultado:          o.Resultado,
		CriadoEm:           o.CriadoEm,
		AtualizadoEm:       o.AtualizadoEm,
		Inicio:             o.Inicio,
		Chegada:            o.Chegada,
		Termino:            o.Termino,
		EncerradaEm:        o.EncerradaEm,
		Despesas:           o.Despesas,
		Km:                 o.Km,
		DespesasDetalhadas: make([]ExpenseItemResponse, 0, len(o.DespesasDetalhadas)),
		Fotos:              make([]PhotoResponse, 0, len(o.Fotos)),
	}
	for _, it := range o.DespesasDetalhadas {
		res.DespesasDetalhadas = append(res.DespesasDetalhadas, ExpenseItemResponse{Categoria: it.Categoria, Valor: it.Valor})
	}
	for _, p := range o.Fotos {
		res.Fotos = append(res.Fotos, PhotoResponse{ID: p.ID, URL: p.URL, Legenda: p.Legenda, CriadoEm: p.CriadoEm})
	}
	if o.TrackingHash != "" {
		h := o.TrackingHash
		res.TrackingHash = &h
	}
	return res
}

// FromOccurrencePortal is the provider and client view. The tracking hash
// is only handed out by the staff endpoints.
func FromOccurrencePortal(o entities.Occurrence) OccurrenceResponse {
	res := FromOccurrence(o)
	res.TrackingHash = nil
	return res
}

func FromOccurrences(list []entities.Occurrence, convert func(entities.Occurrence) OccurrenceResponse) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(list))
	for _, o := range list {
		out = append(out, convert(o))
	}
	return out
}
