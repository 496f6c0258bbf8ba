package entities

import "time"

const PositionStatusAtivo = "ativo"

// PositionSample is one GPS fix reported by a provider. Samples are
// append-only; "latest" is decided by RecordedAt, which the server assigns.
//
// Storage model (DynamoDB):
//   - PK: prestador_id, SK: recorded_key (fixed-width RecordedAt + "#" + uuid)
//   - GSI ocorrencia_id-index: ocorrencia_id / recorded_key
type PositionSample struct {
	ID           string
	PrestadorID  int64
	OcorrenciaID *int64

	Latitude   float64
	Longitude  float64
	Velocidade *float64
	Direcao    *float64
	Altitude   *float64
	Precisao   *float64
	Bateria    *float64

	Status string

	// DeviceTime is what the device claimed; metadata only, never an
	// ordering key.
	DeviceTime *time.Time
	RecordedAt time.Time
}

// LivePosition is a sample joined with its provider's display fields.
type LivePosition struct {
	PositionSample
	PrestadorNome     string
	PrestadorTelefone string
}

// ValidCoordinates reports whether lat/lon are inside the WGS84 ranges.
func ValidCoordinates(lat, lon float64) bool {
	// NaN fails both comparisons.
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
