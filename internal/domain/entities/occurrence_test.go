package entities

import "testing"

func TestOccurrenceStatus_Sets(t *testing.T) {
	for _, s := range TrackableStatuses() {
		if !s.IsTrackable() || s.IsTerminal() {
			t.Fatalf("%s should be trackable and not terminal", s)
		}
	}
	for _, s := range TerminalStatuses() {
		if s.IsTrackable() || !s.IsTerminal() {
			t.Fatalf("%s should be terminal and not trackable", s)
		}
	}
	if OccurrenceStatus("desconhecido").IsTerminal() || OccurrenceStatus("desconhecido").IsTrackable() {
		t.Fatalf("unknown status must be neither trackable nor terminal")
	}
}

func TestParseOccurrenceStatus(t *testing.T) {
	cases := map[string]OccurrenceStatus{
		"aguardando":     OccurrenceStatusAguardando,
		" EM_ANDAMENTO ": OccurrenceStatusEmAndamento,
		"não_recuperado": OccurrenceStatusNaoRecuperado,
		"nao_recuperado": OccurrenceStatusNaoRecuperado,
		"encerrada":      OccurrenceStatusEncerrada,
	}
	for raw, want := range cases {
		got, ok := ParseOccurrenceStatus(raw)
		if !ok || got != want {
			t.Fatalf("parse %q: got %q ok=%v", raw, got, ok)
		}
	}
	if _, ok := ParseOccurrenceStatus("fechada"); ok {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestOccurrence_HasPlate(t *testing.T) {
	o := Occurrence{Placa1: "ABC-1234", Placa3: "xyz9k88"}
	if !o.HasPlate("abc1234") {
		t.Fatalf("expected match on normalized plate")
	}
	if !o.HasPlate("9K8") {
		t.Fatalf("expected partial match on third plate")
	}
	if o.HasPlate("") || o.HasPlate("QQQ0000") {
		t.Fatalf("unexpected match")
	}
	if got := o.Plates(); len(got) != 2 {
		t.Fatalf("expected 2 plates, got %v", got)
	}
}

func TestValidCoordinates(t *testing.T) {
	if ValidCoordinates(95, 0) || ValidCoordinates(0, -181) {
		t.Fatalf("out-of-range coordinates accepted")
	}
	if !ValidCoordinates(-23.55, -46.63) || !ValidCoordinates(90, 180) {
		t.Fatalf("valid coordinates rejected")
	}
}

func TestAuthIdentity_HasPermission(t *testing.T) {
	staff := AuthIdentity{Kind: IdentityKindStaff, Permissions: []string{PermissionOccurrencesRead}}
	if !staff.HasPermission(PermissionOccurrencesRead) || staff.HasPermission(PermissionOccurrencesDelete) {
		t.Fatalf("unexpected staff permissions")
	}
	admin := AuthIdentity{Kind: IdentityKindStaff, Permissions: []string{PermissionAll}}
	if !admin.HasPermission(PermissionBillingCreate) {
		t.Fatalf("wildcard should grant everything")
	}
	provider := AuthIdentity{Kind: IdentityKindPrestador, Permissions: []string{PermissionAll}}
	if provider.HasPermission(PermissionOccurrencesRead) {
		t.Fatalf("permissions are staff-only")
	}
}
