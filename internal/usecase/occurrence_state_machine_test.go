package usecase

import (
	"errors"
	"testing"
	"time"

	"ocorrencias_api/internal/domain/entities"
)

func TestInitialStatus(t *testing.T) {
	empty := entities.OccurrenceStatus("")
	dispatch := entities.OccurrenceStatusEmAndamento
	closed := entities.OccurrenceStatusConcluida

	if s, err := initialStatus(nil); err != nil || s != entities.OccurrenceStatusAguardando {
		t.Fatalf("nil: got %q err=%v", s, err)
	}
	if s, err := initialStatus(&empty); err != nil || s != entities.OccurrenceStatusAguardando {
		t.Fatalf("empty: got %q err=%v", s, err)
	}
	if s, err := initialStatus(&dispatch); err != nil || s != dispatch {
		t.Fatalf("em_andamento: got %q err=%v", s, err)
	}
	if _, err := initialStatus(&closed); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestApplyTransition(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("dispatch requires provider", func(t *testing.T) {
		o := entities.Occurrence{Status: entities.OccurrenceStatusAguardando}
		_, err := applyTransition(&o, entities.OccurrenceStatusEmAndamento, now)
		if !errors.Is(err, ErrProviderRequired) {
			t.Fatalf("expected ErrProviderRequired, got %v", err)
		}
		if o.Status != entities.OccurrenceStatusAguardando || o.Inicio != nil {
			t.Fatalf("record must be untouched on failure: %+v", o)
		}
	})

	t.Run("dispatch stamps inicio once", func(t *testing.T) {
		o := entities.Occurrence{Status: entities.OccurrenceStatusAguardando, PrestadorID: 3, Prestador: "Ana"}
		eff, err := applyTransition(&o, entities.OccurrenceStatusEmAndamento, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !eff.Dispatched || eff.Closed || !eff.changed() {
			t.Fatalf("unexpected effect: %+v", eff)
		}
		if o.Inicio == nil || !o.Inicio.Equal(now) {
			t.Fatalf("inicio not stamped: %v", o.Inicio)
		}
	})

	t.Run("dispatch keeps explicit inicio", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		o := entities.Occurrence{Status: entities.OccurrenceStatusAguardando, PrestadorID: 3, Prestador: "Ana", Inicio: &earlier}
		if _, err := applyTransition(&o, entities.OccurrenceStatusEmAndamento, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.Inicio.Equal(earlier) {
			t.Fatalf("inicio overwritten: %v", o.Inicio)
		}
	})

	t.Run("close requires outcome", func(t *testing.T) {
		o := entities.Occurrence{Status: entities.OccurrenceStatusEmAndamento, PrestadorID: 3, Prestador: "Ana"}
		_, err := applyTransition(&o, entities.OccurrenceStatusRecuperado, now)
		if !errors.Is(err, ErrOutcomeRequired) {
			t.Fatalf("expected ErrOutcomeRequired, got %v", err)
		}
	})

	t.Run("close revokes tracking hash and stamps closure", func(t *testing.T) {
		o := entities.Occurrence{
			Status:       entities.OccurrenceStatusEmAndamento,
			PrestadorID:  3,
			Prestador:    "Ana",
			Resultado:    "veículo localizado",
			TrackingHash: "abc",
		}
		eff, err := applyTransition(&o, entities.OccurrenceStatusRecuperado, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !eff.Closed || !eff.RevokedHash || eff.ReleasesLockOf != 3 {
			t.Fatalf("unexpected effect: %+v", eff)
		}
		if o.TrackingHash != "" {
			t.Fatalf("tracking hash must be cleared")
		}
		if o.Termino == nil || o.EncerradaEm == nil || !o.EncerradaEm.Equal(now) {
			t.Fatalf("closure timestamps not stamped: %+v", o)
		}
		if o.Status != entities.OccurrenceStatusRecuperado {
			t.Fatalf("status not applied: %s", o.Status)
		}
	})

	t.Run("cancel before dispatch", func(t *testing.T) {
		o := entities.Occurrence{Status: entities.OccurrenceStatusAguardando, Resultado: "cliente desistiu"}
		eff, err := applyTransition(&o, entities.OccurrenceStatusCancelada, now)
		if err != nil || !eff.Closed {
			t.Fatalf("expected cancel to close, eff=%+v err=%v", eff, err)
		}
	})

	t.Run("aguardando cannot jump to recuperado", func(t *testing.T) {
		o := entities.Occurrence{Status: entities.OccurrenceStatusAguardando, Resultado: "x"}
		_, err := applyTransition(&o, entities.OccurrenceStatusRecuperado, now)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("em_andamento cannot go back", func(t *testing.T) {
		o := entities.Occurrence{Status: entities.OccurrenceStatusEmAndamento}
		_, err := applyTransition(&o, entities.OccurrenceStatusAguardando, now)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("terminal is absorbing", func(t *testing.T) {
		for _, next := range append(entities.TerminalStatuses(), entities.TrackableStatuses()...) {
			o := entities.Occurrence{Status: entities.OccurrenceStatusConcluida, Resultado: "ok"}
			_, err := applyTransition(&o, next, now)
			if !errors.Is(err, ErrOccurrenceTerminal) {
				t.Fatalf("%s: expected ErrOccurrenceTerminal, got %v", next, err)
			}
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		o := entities.Occurrence{Status: entities.OccurrenceStatusAguardando}
		_, err := applyTransition(&o, "perdida", now)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("same open status is a no-op", func(t *testing.T) {
		o := entities.Occurrence{Status: entities.OccurrenceStatusEmAndamento}
		eff, err := applyTransition(&o, entities.OccurrenceStatusEmAndamento, now)
		if err != nil || eff.changed() {
			t.Fatalf("expected no-op, eff=%+v err=%v", eff, err)
		}
	})
}

func TestApplyOutcome(t *testing.T) {
	open := entities.Occurrence{Status: entities.OccurrenceStatusEmAndamento, Resultado: "parcial"}
	if err := applyOutcome(&open, "outro texto"); err != nil || open.Resultado != "outro texto" {
		t.Fatalf("open occurrence should accept any outcome: %q err=%v", open.Resultado, err)
	}
	if open.Status != entities.OccurrenceStatusEmAndamento {
		t.Fatalf("outcome must not close the occurrence")
	}

	closed := entities.Occurrence{Status: entities.OccurrenceStatusRecuperado, Resultado: "localizado"}
	if err := applyOutcome(&closed, "localizado; entregue ao cliente"); err != nil {
		t.Fatalf("append should be allowed: %v", err)
	}
	if err := applyOutcome(&closed, "reescrito"); !errors.Is(err, ErrOutcomeAppendOnly) {
		t.Fatalf("expected ErrOutcomeAppendOnly, got %v", err)
	}
	if err := applyOutcome(&closed, closed.Resultado); err != nil {
		t.Fatalf("same outcome should be a no-op: %v", err)
	}
}

func TestApplyArrival(t *testing.T) {
	at := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	o := entities.Occurrence{}
	if err := applyArrival(&o, at); err != nil || o.Chegada == nil {
		t.Fatalf("first arrival should be stored: err=%v", err)
	}
	if err := applyArrival(&o, at); err != nil {
		t.Fatalf("same arrival should be a no-op: %v", err)
	}
	if err := applyArrival(&o, at.Add(time.Minute)); !errors.Is(err, ErrArrivalAlreadySet) {
		t.Fatalf("expected ErrArrivalAlreadySet, got %v", err)
	}
}

func TestLockDelta(t *testing.T) {
	open := func(p int64) entities.Occurrence {
		return entities.Occurrence{Status: entities.OccurrenceStatusEmAndamento, PrestadorID: p}
	}
	closed := func(p int64) entities.Occurrence {
		return entities.Occurrence{Status: entities.OccurrenceStatusRecuperado, PrestadorID: p}
	}

	cases := []struct {
		name             string
		before, after    entities.Occurrence
		release, acquire int64
	}{
		{name: "unchanged", before: open(1), after: open(1)},
		{name: "reassign", before: open(1), after: open(2), release: 1, acquire: 2},
		{name: "assign", before: entities.Occurrence{Status: entities.OccurrenceStatusAguardando}, after: open(2), acquire: 2},
		{name: "close", before: open(1), after: closed(1), release: 1},
		{name: "edit closed", before: closed(1), after: closed(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, a := lockDelta(tc.before, tc.after)
			if r != tc.release || a != tc.acquire {
				t.Fatalf("expected release=%d acquire=%d, got %d %d", tc.release, tc.acquire, r, a)
			}
		})
	}
}
