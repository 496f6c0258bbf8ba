package response

import (
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"
)

type LoginResponse struct {
	Token    string    `json:"token"`
	Tipo     string    `json:"tipo"`
	ExpiraEm time.Time `json:"expira_em"`
}

type IdentityResponse struct {
	ID         int64     `json:"id"`
	Tipo       string    `json:"tipo"`
	Permissoes []string  `json:"permissoes"`
	ExpiraEm   time.Time `json:"expira_em"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, Tipo: string(r.Identity.Kind), ExpiraEm: r.ExpiresAt}
}

func FromIdentity(id entities.AuthIdentity) IdentityResponse {
	perms := id.Permissions
	if perms == nil {
		perms = []string{}
	}
	return IdentityResponse{ID: id.SubjectID, Tipo: string(id.Kind), Permissoes: perms, ExpiraEm: id.ExpiresAt}
}
