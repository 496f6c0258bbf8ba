package entities

import "time"

// Account is a login. Its Tipo decides which of PrestadorID / ClienteID is
// meaningful.
type Account struct {
	ID          int64
	Email       string
	Nome        string
	SenhaHash   string
	Tipo        IdentityKind
	PrestadorID int64
	ClienteID   int64
	Permissoes  []string
	Ativo       bool
	CriadoEm    time.Time
}
