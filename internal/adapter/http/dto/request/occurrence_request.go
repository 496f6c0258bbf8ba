package request

import (
	"bytes"
	"encoding/json"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"
)

// NullableFloat tells an absent field apart from an explicit null. Null
// means "unknown" and is never read as zero.
type NullableFloat struct {
	Set   bool
	Value *float64
}

func (n *NullableFloat) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type ExpenseItemRequest struct {
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
}

// OccurrenceRequest is the body of POST and PUT /ocorrencias. Omitted
// fields are left untouched on update.
type OccurrenceRequest struct {
	Tipo      *string `json:"tipo"`
	Placa1    *string `json:"placa1"`
	Placa2    *string `json:"placa2"`
	Placa3    *string `json:"placa3"`
	Modelo    *string `json:"modelo"`
	Cor       *string `json:"cor"`
	Descricao *string `json:"descricao"`
	Endereco  *string `json:"endereco"`
	Cidade    *string `json:"cidade"`
	Estado    *string `json:"estado"`
	Operador  *string `json:"operador"`

	Cliente     *string `json:"cliente"`
	ClienteID   *int64  `json:"cliente_id"`
	Prestador   *string `json:"prestador"`
	PrestadorID *int64  `json:"prestador_id"`

	Status    *string `json:"status"`
	Resultado *string `json:"resultado"`

	Despesas           NullableFloat         `json:"despesas" swaggertype:"number"`
	DespesasDetalhadas *[]ExpenseItemRequest `json:"despesas_detalhadas"`
	Km                 NullableFloat         `json:"km" swaggertype:"number"`

	Chegada *time.Time `json:"chegada"`
}

func (r OccurrenceRequest) ToInput() usecase.OccurrenceInput {
	in := usecase.OccurrenceInput{
		Tipo:        r.Tipo,
		Placa1:      r.Placa1,
		Placa2:      r.Placa2,
		Placa3:      r.Placa3,
		Modelo:      r.Modelo,
		Cor:         r.Cor,
		Descricao:   r.Descricao,
		Endereco:    r.Endereco,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		Operador:    r.Operador,
		Cliente:     r.Cliente,
		ClienteID:   r.ClienteID,
		Prestador:   r.Prestador,
		PrestadorID: r.PrestadorID,
		Resultado:   r.Resultado,
		Despesas:    usecase.OptionalFloat{Set: r.Despesas.Set, Value: r.Despesas.Value},
		Km:          usecase.OptionalFloat{Set: r.Km.Set, Value: r.Km.Value},
		Chegada:     r.Chegada,
	}
	if r.Status != nil {
		// Unknown values are passed through so the state machine rejects
		// them with ErrInvalidStatus.
		s, ok := entities.ParseOccurrenceStatus(*r.Status)
		if !ok {
			s = entities.OccurrenceStatus(*r.Status)
		}
		in.Status = &s
	}
	if r.DespesasDetalhadas != nil {
		items := make([]entities.ExpenseItem, 0, len(*r.DespesasDetalhadas))
		for _, it := range *r.DespesasDetalhadas {
			items = append(items, entities.ExpenseItem{Categoria: it.Categoria, Valor: it.Valor})
		}
		in.DespesasDetalhadas = &items
	}
	return in
}
