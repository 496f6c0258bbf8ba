package entities

import (
	"strings"
	"time"
)

// Client is the company that owns occurrences. Only the read side lives in
// this service; registration is handled elsewhere.
type Client struct {
	ID       int64     `json:"id"`
	Nome     string    `json:"nome"`
	CNPJ     string    `json:"cnpj"`
	CriadoEm time.Time `json:"criado_em"`
}

// NormalizeTaxID keeps only the digits of a CNPJ/CPF.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
