package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ocorrencias_api/internal/domain/entities"
)

var (
	ErrInvalidStatus      = errors.New("invalid occurrence status")
	ErrProviderRequired   = errors.New("an assigned provider is required to dispatch")
	ErrOutcomeRequired    = errors.New("outcome (resultado) is required to close an occurrence")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrOccurrenceTerminal = errors.New("occurrence is closed")
	ErrOutcomeAppendOnly  = errors.New("outcome of a closed occurrence can only be appended to")
	ErrArrivalAlreadySet  = errors.New("arrival already recorded")
)

// transitionEffect lists what a status change did to the record, so the
// caller can emit the matching store operations and logs.
type transitionEffect struct {
	From           entities.OccurrenceStatus
	To             entities.OccurrenceStatus
	Dispatched     bool
	Closed         bool
	RevokedHash    bool
	ReleasesLockOf int64
}

func (e transitionEffect) changed() bool {
	return e.From != e.To
}

// initialStatus decides the status of a new occurrence. Creation may skip
// straight to em_andamento for immediate dispatch; nothing else is allowed.
func initialStatus(requested *entities.OccurrenceStatus) (entities.OccurrenceStatus, error) {
	if requested == nil || *requested == "" {
		return entities.OccurrenceStatusAguardando, nil
	}
	switch *requested {
	case entities.OccurrenceStatusAguardando, entities.OccurrenceStatusEmAndamento:
		return *requested, nil
	}
	return "", fmt.Errorf("%w: a new occurrence must start as aguardando or em_andamento, got %q", ErrInvalidStatus, *requested)
}

// applyTransition moves o to next, stamping timestamps and revoking the
// tracking hash as part of the same in-memory change. It must run after
// every non-status field of the request has been applied, since dispatch
// and close validate the provider and the outcome the record will carry.
//
// Legal moves:
//
//	aguardando   -> em_andamento               (dispatch)
//	aguardando   -> cancelada                  (cancel before dispatch)
//	em_andamento -> any terminal status        (close)
//
// Terminal statuses are absorbing; asking for any status on a terminal
// occurrence, including the one it already has, is a conflict.
func applyTransition(o *entities.Occurrence, next entities.OccurrenceStatus, now time.Time) (transitionEffect, error) {
	eff := transitionEffect{From: o.Status, To: o.Status}

	if o.Status.IsTerminal() {
		return eff, fmt.Errorf("%w: status is already %s", ErrOccurrenceTerminal, o.Status)
	}
	if !next.IsTrackable() && !next.IsTerminal() {
		return eff, fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if next == o.Status {
		return eff, nil
	}

	switch {
	case o.Status == entities.OccurrenceStatusAguardando && next == entities.OccurrenceStatusEmAndamento:
		if o.PrestadorID == 0 || strings.TrimSpace(o.Prestador) == "" {
			return eff, ErrProviderRequired
		}
		if o.Inicio == nil {
			t := now
			o.Inicio = &t
		}
		eff.Dispatched = true

	case o.Status == entities.OccurrenceStatusAguardando && next == entities.OccurrenceStatusCancelada,
		o.Status == entities.OccurrenceStatusEmAndamento && next.IsTerminal():
		if strings.TrimSpace(o.Resultado) == "" {
			return eff, ErrOutcomeRequired
		}
		if o.Termino == nil {
			t := now
			o.Termino = &t
		}
		closedAt := now
		o.EncerradaEm = &closedAt
		if o.TrackingHash != "" {
			o.TrackingHash = ""
			eff.RevokedHash = true
		}
		eff.ReleasesLockOf = o.PrestadorID
		eff.Closed = true

	default:
		return eff, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.Status, next)
	}

	o.Status = next
	eff.To = next
	return eff, nil
}

// applyOutcome stores outcome text. While the occurrence is open any value
// is accepted and does not close it; once closed the text may only grow.
func applyOutcome(o *entities.Occurrence, resultado string) error {
	if !o.Status.IsTerminal() {
		o.Resultado = resultado
		return nil
	}
	if resultado == o.Resultado {
		return nil
	}
	if !strings.HasPrefix(resultado, o.Resultado) {
		return ErrOutcomeAppendOnly
	}
	o.Resultado = resultado
	return nil
}

// applyArrival stamps chegada once. Re-sending the same instant is a no-op.
func applyArrival(o *entities.Occurrence, at time.Time) error {
	if o.Chegada != nil {
		if o.Chegada.Equal(at) {
			return nil
		}
		return ErrArrivalAlreadySet
	}
	t := at.UTC()
	o.Chegada = &t
	return nil
}
