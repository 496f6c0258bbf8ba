package entities

import "time"

type IdentityKind string

const (
	IdentityKindStaff     IdentityKind = "staff"
	IdentityKindPrestador IdentityKind = "prestador"
	IdentityKindCliente   IdentityKind = "cliente"
)

func (k IdentityKind) Valid() bool {
	switch k {
	case IdentityKindStaff, IdentityKindPrestador, IdentityKindCliente:
		return true
	}
	return false
}

const (
	PermissionAll               = "*"
	PermissionOccurrencesRead   = "ocorrencias.ler"
	PermissionOccurrencesWrite  = "ocorrencias.editar"
	PermissionOccurrencesDelete = "ocorrencias.excluir"
	PermissionTrackingManage    = "rastreamento.gerenciar"
	PermissionProvidersManage   = "prestadores.gerenciar"
	PermissionBillingCreate     = "cobranca.criar"
)

// AuthIdentity is resolved from a bearer token once per request and passed
// explicitly down the call chain. SubjectID is the account id.
type AuthIdentity struct {
	SubjectID   int64
	Kind        IdentityKind
	Permissions []string
	ExpiresAt   time.Time
}

func (a AuthIdentity) IsStaff() bool     { return a.Kind == IdentityKindStaff }
func (a AuthIdentity) IsPrestador() bool { return a.Kind == IdentityKindPrestador }
func (a AuthIdentity) IsCliente() bool   { return a.Kind == IdentityKindCliente }

// HasPermission is only meaningful for staff; providers and clients are
// scoped by tenant resolution instead.
func (a AuthIdentity) HasPermission(perm string) bool {
	if !a.IsStaff() {
		return false
	}
	for _, p := range a.Permissions {
		if p == perm || p == PermissionAll {
			return true
		}
	}
	return false
}
