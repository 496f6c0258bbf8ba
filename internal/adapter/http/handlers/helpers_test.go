package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	staffIdentity = entities.AuthIdentity{
		SubjectID:   1,
		Kind:        entities.IdentityKindStaff,
		Permissions: []string{entities.PermissionAll},
	}
	providerIdentity = entities.AuthIdentity{SubjectID: 20, Kind: entities.IdentityKindPrestador}
	clientIdentity   = entities.AuthIdentity{SubjectID: 30, Kind: entities.IdentityKindCliente}
)

// routerAs returns a router whose requests all carry identity, as if
// RequireAuth had already run.
func routerAs(identity entities.AuthIdentity) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
