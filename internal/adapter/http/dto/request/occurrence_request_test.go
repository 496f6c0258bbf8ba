package request

import (
	"encoding/json"
	"testing"

	"ocorrencias_api/internal/domain/entities"
)

func TestOccurrenceRequest_NullableFloat(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		wantNil bool
		want    float64
	}{
		{name: "absent", body: `{}`, wantSet: false, wantNil: true},
		{name: "explicit null", body: `{"despesas":null}`, wantSet: true, wantNil: true},
		{name: "zero", body: `{"despesas":0}`, wantSet: true, want: 0},
		{name: "value", body: `{"despesas":150.75}`, wantSet: true, want: 150.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req OccurrenceRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			in := req.ToInput()
			if in.Despesas.Set != tt.wantSet {
				t.Fatalf("expected Set=%v, got %v", tt.wantSet, in.Despesas.Set)
			}
			if tt.wantNil {
				if in.Despesas.Value != nil {
					t.Fatalf("expected nil value, got %v", *in.Despesas.Value)
				}
				return
			}
			if in.Despesas.Value == nil || *in.Despesas.Value != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, in.Despesas.Value)
			}
		})
	}
}

func TestOccurrenceRequest_RejectsNonNumericAmount(t *testing.T) {
	var req OccurrenceRequest
	if err := json.Unmarshal([]byte(`{"km":"muito"}`), &req); err == nil {
		t.Fatalf("expected error for non-numeric km")
	}
}

func TestOccurrenceRequest_ToInputStatus(t *testing.T) {
	t.Run("accent-free alias", func(t *testing.T) {
		var req OccurrenceRequest
		_ = json.Unmarshal([]byte(`{"status":"nao_recuperado"}`), &req)
		in := req.ToInput()
		if in.Status == nil || *in.Status != entities.OccurrenceStatusNaoRecuperado {
			t.Fatalf("unexpected status: %v", in.Status)
		}
	})

	t.Run("unknown passes through", func(t *testing.T) {
		var req OccurrenceRequest
		_ = json.Unmarshal([]byte(`{"status":"voando"}`), &req)
		in := req.ToInput()
		if in.Status == nil || string(*in.Status) != "voando" {
			t.Fatalf("unexpected status: %v", in.Status)
		}
	})

	t.Run("absent", func(t *testing.T) {
		var req OccurrenceRequest
		_ = json.Unmarshal([]byte(`{"tipo":"furto"}`), &req)
		in := req.ToInput()
		if in.Status != nil {
			t.Fatalf("expected nil status")
		}
		if in.Tipo == nil || *in.Tipo != "furto" {
			t.Fatalf("unexpected tipo: %v", in.Tipo)
		}
	})
}

func TestOccurrenceRequest_ExpenseItems(t *testing.T) {
	var req OccurrenceRequest
	body := `{"despesas_detalhadas":[{"categoria":"pedagio","valor":12.5},{"categoria":"combustivel","valor":80}]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in := req.ToInput()
	if in.DespesasDetalhadas == nil || len(*in.DespesasDetalhadas) != 2 {
		t.Fatalf("unexpected items: %v", in.DespesasDetalhadas)
	}
	if (*in.DespesasDetalhadas)[1].Categoria != "combustivel" {
		t.Fatalf("order not kept: %+v", *in.DespesasDetalhadas)
	}
}

func TestPositionRequest_ToInput(t *testing.T) {
	var req PositionRequest
	body := `{"prestadorId":3,"ocorrenciaId":12,"latitude":-23.55,"longitude":-46.63,"timestamp":"2024-05-01T10:00:00Z"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in := req.ToInput()
	if in.PrestadorID != 3 || in.OcorrenciaID == nil || *in.OcorrenciaID != 12 {
		t.Fatalf("unexpected ids: %+v", in)
	}
	if in.Latitude != -23.55 || in.Longitude != -46.63 || in.Timestamp == nil {
		t.Fatalf("unexpected fix: %+v", in)
	}
}

func TestProviderRequest_ToEntity(t *testing.T) {
	p := ProviderRequest{Nome: "João", Aprovado: true, ValorAcionamento: 200}.ToEntity()
	if p.Nome != "João" || !p.Aprovado || p.ValorAcionamento != 200 || p.ID != 0 {
		t.Fatalf("unexpected provider: %+v", p)
	}
}
