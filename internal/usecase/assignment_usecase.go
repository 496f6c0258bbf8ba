package usecase

import (
	"context"
	"errors"
	"log"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

var (
	ErrForbidden        = errors.New("forbidden")
	ErrAccountNotFound  = errors.New("account not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrClientNotFound   = errors.New("client not found")
)

// IAssignmentUseCase narrows occurrence reads to what an identity may see.
//
// Providers see occurrences whose PrestadorID is theirs; clients see the
// ones whose ClienteID is theirs. The filter is applied again on the
// results so a misbehaving index can never leak another tenant's record.
type IAssignmentUseCase interface {
	ResolveProvider(ctx context.Context, identity entities.AuthIdentity) (entities.Provider, error)
	ResolveClient(ctx context.Context, identity entities.AuthIdentity) (entities.Client, error)
	CurrentAssignments(ctx context.Context, identity entities.AuthIdentity) ([]entities.Occurrence, error)
	CurrentAssignment(ctx context.Context, providerID int64) (entities.Occurrence, bool, error)
	AssignmentHistory(ctx context.Context, identity entities.AuthIdentity) ([]entities.Occurrence, error)
	ClientOccurrences(ctx context.Context, identity entities.AuthIdentity, status string) ([]entities.Occurrence, error)
	VisibleOccurrence(ctx context.Context, identity entities.AuthIdentity, id int64) (entities.Occurrence, error)
}

type AssignmentUseCase struct {
	accounts    interfaces.IAccountRepository
	providers   interfaces.IProviderRepository
	clients     interfaces.IClientRepository
	occurrences interfaces.IOccurrenceRepository
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(
	accounts interfaces.IAccountRepository,
	providers interfaces.IProviderRepository,
	clients interfaces.IClientRepository,
	occurrences interfaces.IOccurrenceRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{accounts: accounts, providers: providers, clients: clients, occurrences: occurrences}
}

func (u *AssignmentUseCase) ResolveProvider(ctx context.Context, identity entities.AuthIdentity) (entities.Provider, error) {
	if !identity.IsPrestador() {
		return entities.Provider{}, ErrForbidden
	}
	acc, err := u.account(ctx, identity)
	if err != nil {
		return entities.Provider{}, err
	}
	if acc.PrestadorID == 0 {
		return entities.Provider{}, ErrProviderNotFound
	}
	p, err := u.providers.GetByID(ctx, acc.PrestadorID)
	if err != nil {
		return entities.Provider{}, err
	}
	if p.ID == 0 {
		log.Printf("[assignment][usecase] account points to missing provider account_id=%d prestador_id=%d", acc.ID, acc.PrestadorID)
		return entities.Provider{}, ErrProviderNotFound
	}
	return p, nil
}

func (u *AssignmentUseCase) ResolveClient(ctx context.Context, identity entities.AuthIdentity) (entities.Client, error) {
	if !identity.IsCliente() {
		return entities.Client{}, ErrForbidden
	}
	acc, err := u.account(ctx, identity)
	if err != nil {
		return entities.Client{}, err
	}
	if acc.ClienteID == 0 {
		return entities.Client{}, ErrClientNotFound
	}
	c, err := u.clients.GetByID(ctx, acc.ClienteID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == 0 {
		log.Printf("[assignment][usecase] account points to missing client account_id=%d cliente_id=%d", acc.ID, acc.ClienteID)
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *AssignmentUseCase) CurrentAssignments(ctx context.Context, identity entities.AuthIdentity) ([]entities.Occurrence, error) {
	p, err := u.ResolveProvider(ctx, identity)
	if err != nil {
		return nil, err
	}
	return u.providerOccurrences(ctx, p.ID, entities.TrackableStatuses())
}

// CurrentAssignment returns the single trackable occurrence held by the
// provider, if any.
func (u *AssignmentUseCase) CurrentAssignment(ctx context.Context, providerID int64) (entities.Occurrence, bool, error) {
	list, err := u.providerOccurrences(ctx, providerID, entities.TrackableStatuses())
	if err != nil {
		return entities.Occurrence{}, false, err
	}
	if len(list) == 0 {
		return entities.Occurrence{}, false, nil
	}
	if len(list) > 1 {
		log.Printf("[assignment][usecase] provider holds %d trackable occurrences prestador_id=%d; using newest", len(list), providerID)
	}
	return list[0], true, nil
}

func (u *AssignmentUseCase) AssignmentHistory(ctx context.Context, identity entities.AuthIdentity) ([]entities.Occurrence, error) {
	p, err := u.ResolveProvider(ctx, identity)
	if err != nil {
		return nil, err
	}
	return u.providerOccurrences(ctx, p.ID, entities.TerminalStatuses())
}

func (u *AssignmentUseCase) ClientOccurrences(ctx context.Context, identity entities.AuthIdentity, status string) ([]entities.Occurrence, error) {
	c, err := u.ResolveClient(ctx, identity)
	if err != nil {
		return nil, err
	}
	var statuses []entities.OccurrenceStatus
	if status != "" {
		s, ok := entities.ParseOccurrenceStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		statuses = []entities.OccurrenceStatus{s}
	}

	list, err := u.occurrences.ListByClientID(ctx, c.ID, statuses)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Occurrence, 0, len(list))
	for _, o := range list {
		if o.ClienteID == c.ID {
			out = append(out, o)
		}
	}
	return out, nil
}

// VisibleOccurrence loads one occurrence on behalf of identity. Records the
// identity may not see are reported as not found.
func (u *AssignmentUseCase) VisibleOccurrence(ctx context.Context, identity entities.AuthIdentity, id int64) (entities.Occurrence, error) {
	if id <= 0 {
		return entities.Occurrence{}, ErrInvalidOccurrenceID
	}
	o, err := u.occurrences.GetByID(ctx, id)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if o.ID == 0 {
		return entities.Occurrence{}, ErrOccurrenceNotFound
	}

	switch identity.Kind {
	case entities.IdentityKindStaff:
		if !identity.HasPermission(entities.PermissionOccurrencesRead) {
			return entities.Occurrence{}, ErrForbidden
		}
		return o, nil
	case entities.IdentityKindPrestador:
		p, err := u.ResolveProvider(ctx, identity)
		if err != nil {
			return entities.Occurrence{}, err
		}
		if o.PrestadorID != p.ID {
			return entities.Occurrence{}, ErrOccurrenceNotFound
		}
		return o, nil
	case entities.IdentityKindCliente:
		c, err := u.ResolveClient(ctx, identity)
		if err != nil {
			return entities.Occurrence{}, err
		}
		if o.ClienteID != c.ID {
			return entities.Occurrence{}, ErrOccurrenceNotFound
		}
		return o, nil
	}
	return entities.Occurrence{}, ErrForbidden
}

func (u *AssignmentUseCase) providerOccurrences(ctx context.Context, providerID int64, statuses []entities.OccurrenceStatus) ([]entities.Occurrence, error) {
	list, err := u.occurrences.ListByProviderID(ctx, providerID, statuses)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Occurrence, 0, len(list))
	for _, o := range list {
		if o.PrestadorID == providerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (u *AssignmentUseCase) account(ctx context.Context, identity entities.AuthIdentity) (entities.Account, error) {
	acc, err := u.accounts.GetByID(ctx, identity.SubjectID)
	if err != nil {
		return entities.Account{}, err
	}
	if acc.ID == 0 || !acc.Ativo || acc.Tipo != identity.Kind {
		return entities.Account{}, ErrAccountNotFound
	}
	return acc, nil
}
