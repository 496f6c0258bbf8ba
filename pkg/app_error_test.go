package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb unavailable")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb unavailable" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", body)
	}

	simple := NewDomainErrorSimple("OCCURRENCE_NOT_FOUND", "Occurrence not found", http.StatusNotFound)
	if simple.Error() != "OCCURRENCE_NOT_FOUND: Occurrence not found" {
		t.Fatalf("unexpected error string: %s", simple.Error())
	}

	custom := simple.WithMessage("Ocorrência 7 não encontrada")
	if custom.Message == simple.Message || custom.Code != simple.Code || custom.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected copy: %+v", custom)
	}
}
