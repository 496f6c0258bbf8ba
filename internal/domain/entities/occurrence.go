package entities

import (
	"strings"
	"time"
)

// OccurrenceStatus is the lifecycle state of an occurrence (ocorrência).
//
// aguardando and em_andamento are trackable: the occurrence may carry a public
// tracking hash, accept position samples and hold its provider's assignment.
// Every other status is terminal and absorbing.
type OccurrenceStatus string

const (
	OccurrenceStatusAguardando    OccurrenceStatus = "aguardando"
	OccurrenceStatusEmAndamento   OccurrenceStatus = "em_andamento"
	OccurrenceStatusConcluida     OccurrenceStatus = "concluida"
	OccurrenceStatusCancelada     OccurrenceStatus = "cancelada"
	OccurrenceStatusRecuperado    OccurrenceStatus = "recuperado"
	OccurrenceStatusNaoRecuperado OccurrenceStatus = "não_recuperado"
	OccurrenceStatusEncerrada     OccurrenceStatus = "encerrada"
)

var (
	trackableStatuses = []OccurrenceStatus{
		OccurrenceStatusAguardando,
		OccurrenceStatusEmAndamento,
	}
	terminalStatuses = []OccurrenceStatus{
		OccurrenceStatusConcluida,
		OccurrenceStatusCancelada,
		OccurrenceStatusRecuperado,
		OccurrenceStatusNaoRecuperado,
		OccurrenceStatusEncerrada,
	}
)

// ParseOccurrenceStatus accepts the canonical values plus the unaccented
// spelling of não_recuperado sent by older mobile builds.
func ParseOccurrenceStatus(raw string) (OccurrenceStatus, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "nao_recuperado" {
		return OccurrenceStatusNaoRecuperado, true
	}
	for _, s := range trackableStatuses {
		if string(s) == v {
			return s, true
		}
	}
	for _, s := range terminalStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

func (s OccurrenceStatus) IsTrackable() bool {
	return s == OccurrenceStatusAguardando || s == OccurrenceStatusEmAndamento
}

func (s OccurrenceStatus) IsTerminal() bool {
	for _, t := range terminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

func TrackableStatuses() []OccurrenceStatus {
	return append([]OccurrenceStatus(nil), trackableStatuses...)
}

func TerminalStatuses() []OccurrenceStatus {
	return append([]OccurrenceStatus(nil), terminalStatuses...)
}

// Photo is owned by its occurrence; deleting the occurrence deletes the
// photo and its backing file.
type Photo struct {
	ID       string    `json:"id"`
	URL      string    `json:"url"`
	Legenda  string    `json:"legenda,omitempty"`
	CriadoEm time.Time `json:"criado_em"`
}

// ExpenseItem is one line of the itemized expense breakdown.
type ExpenseItem struct {
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
}

// Occurrence is a vehicle theft/robbery recovery case.
//
// Storage model (DynamoDB):
//   - PK: id (number, from the counters table)
//   - GSI tracking_hash-index: tracking_hash
//   - GSI prestador_id-index: prestador_id
//   - GSI cliente_id-index: cliente_id
//
// Cliente and Prestador are display labels. Tenant scoping always goes
// through ClienteID and PrestadorID.
type Occurrence struct {
	ID     int64
	Tipo   string
	Placa1 string
	Placa2 string
	Placa3 string
	Modelo string
	Cor    string

	Cliente     string
	ClienteID   int64
	Prestador   string
	PrestadorID int64

	Status OccurrenceStatus

	Descricao string
	Endereco  string
	Cidade    string
	Estado    string
	Operador  string

	CriadoEm     time.Time
	AtualizadoEm time.Time
	Inicio       *time.Time
	Chegada      *time.Time
	Termino      *time.Time
	EncerradaEm  *time.Time

	// Nil means unknown, not zero.
	Despesas           *float64
	DespesasDetalhadas []ExpenseItem
	Km                 *float64

	Resultado string
	Fotos     []Photo

	// Present iff Status is trackable.
	TrackingHash string

	// Version is bumped on every write and used as the compare-and-swap key.
	Version int64
}

// Plates returns the non-empty plates in order.
func (o Occurrence) Plates() []string {
	out := make([]string, 0, 3)
	for _, p := range []string{o.Placa1, o.Placa2, o.Placa3} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HasPlate reports whether any plate matches, ignoring case and separators.
func (o Occurrence) HasPlate(plate string) bool {
	want := NormalizePlate(plate)
	if want == "" {
		return false
	}
	for _, p := range o.Plates() {
		if strings.Contains(NormalizePlate(p), want) {
			return true
		}
	}
	return false
}

// NormalizePlate upper-cases a plate and strips anything that is not a
// letter or digit ("abc-1234" -> "ABC1234").
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(plate) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
