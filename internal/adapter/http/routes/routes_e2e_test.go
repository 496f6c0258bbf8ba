package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ocorrencias_api/internal/adapter/persistence/memory"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/infrastructure/config"
	"ocorrencias_api/internal/infrastructure/ratelimit"
	"ocorrencias_api/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "senha-forte"

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	acme := store.SeedClient(entities.Client{Nome: "Acme", CNPJ: "11222333000181"})
	beta := store.SeedClient(entities.Client{Nome: "Beta"})
	joao := store.SeedProvider(entities.Provider{Nome: "João", Telefone: "11999990000", Aprovado: true})
	maria := store.SeedProvider(entities.Provider{Nome: "Maria", Aprovado: true})

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	for _, acc := range []entities.Account{
		{Email: "admin@ops.test", Tipo: entities.IdentityKindStaff, Permissoes: []string{entities.PermissionAll}},
		{Email: "leitor@ops.test", Tipo: entities.IdentityKindStaff, Permissoes: []string{entities.PermissionOccurrencesRead}},
		{Email: "joao@campo.test", Tipo: entities.IdentityKindPrestador, PrestadorID: joao.ID},
		{Email: "maria@campo.test", Tipo: entities.IdentityKindPrestador, PrestadorID: maria.ID},
		{Email: "acme@cliente.test", Tipo: entities.IdentityKindCliente, ClienteID: acme.ID},
		{Email: "beta@cliente.test", Tipo: entities.IdentityKindCliente, ClienteID: beta.ID},
	} {
		acc.SenhaHash = string(hash)
		acc.Ativo = true
		store.SeedAccount(acc)
	}

	photos, err := storage.NewLocalPhotoStorage(t.TempDir())
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	cfg := config.Config{
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		LiveWindow:         5 * time.Minute,
		PaymentGatewayMock: true,
		LoginMaxFailures:   3,
		LoginLockWindow:    time.Minute,
	}
	deps, err := assemble(cfg, memoryRepositories(store), infrastructure{
		throttle: ratelimit.NewMemoryThrottle(cfg.LoginMaxFailures, cfg.LoginLockWindow),
		photos:   photos,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return &testServer{t: t, router: NewRouter(deps), store: store}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(email string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": email, "senha": testPassword})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login %s: %d %s", email, w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(s.t, w, &body)
	return body.Token
}

// createDispatched opens an occurrence for client and dispatches it to
// provider. It returns the occurrence id.
func (s *testServer) createDispatched(staff, client, provider, plate string) int64 {
	s.t.Helper()
	w := s.do(http.MethodPost, "/v1/ocorrencias", staff, map[string]any{"placa1": plate, "cliente": client, "tipo": "roubo"})
	if w.Code != http.StatusCreated {
		s.t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created map[string]any
	decode(s.t, w, &created)
	id := int64(created["id"].(float64))

	w = s.do(http.MethodPut, fmt.Sprintf("/v1/ocorrencias/%d", id), staff, map[string]any{"prestador": provider})
	if w.Code != http.StatusOK {
		s.t.Fatalf("dispatch: %d %s", w.Code, w.Body.String())
	}
	return id
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestEndToEnd_OccurrenceLifecycle(t *testing.T) {
	s := newTestServer(t)
	staff := s.login("admin@ops.test")
	joao := s.login("joao@campo.test")
	acme := s.login("acme@cliente.test")

	// open
	w := s.do(http.MethodPost, "/v1/ocorrencias", staff, map[string]any{"placa1": "ABC1234", "cliente": "Acme", "tipo": "furto"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var occ map[string]any
	decode(t, w, &occ)
	if occ["status"] != "aguardando" {
		t.Fatalf("expected aguardando, got %v", occ["status"])
	}
	id := int64(occ["id"].(float64))
	occPath := fmt.Sprintf("/v1/ocorrencias/%d", id)

	// dispatch
	w = s.do(http.MethodPut, occPath, staff, map[string]any{"prestador": "João"})
	if w.Code != http.StatusOK {
		t.Fatalf("dispatch: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &occ)
	if occ["status"] != "em_andamento" || occ["inicio"] == nil {
		t.Fatalf("dispatch not applied: %s", w.Body.String())
	}

	// public link
	w = s.do(http.MethodPost, occPath+"/rastreamento", staff, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("issue: %d %s", w.Code, w.Body.String())
	}
	var link map[string]any
	decode(t, w, &link)
	trackingURL := link["url"].(string)

	// position
	w = s.do(http.MethodPost, "/v1/monitoramento/posicao", joao, map[string]any{"ocorrenciaId": id, "latitude": -23.5, "longitude": -46.6})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	w = s.do(http.MethodGet, occPath+"/posicao", staff, nil)
	var latest map[string]any
	decode(t, w, &latest)
	if latest["latitude"] != -23.5 || latest["longitude"] != -46.6 {
		t.Fatalf("latest is not the submitted sample: %s", w.Body.String())
	}

	w = s.do(http.MethodGet, trackingURL, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("resolve while trackable: %d %s", w.Code, w.Body.String())
	}
	var snap map[string]any
	decode(t, w, &snap)
	if snap["ultima_posicao"] == nil || snap["prestador"] == nil {
		t.Fatalf("snapshot incomplete: %s", w.Body.String())
	}

	w = s.do(http.MethodGet, occPath+"/ao-vivo", acme, nil)
	var live []map[string]any
	decode(t, w, &live)
	if w.Code != http.StatusOK || len(live) != 1 || live[0]["prestador_nome"] != "João" {
		t.Fatalf("client live feed: %d %s", w.Code, w.Body.String())
	}

	// close
	w = s.do(http.MethodPut, occPath, staff, map[string]any{"status": "recuperado"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("close without outcome: expected 400, got %d", w.Code)
	}
	w = s.do(http.MethodPut, occPath, staff, map[string]any{"resultado": "Recuperado", "status": "recuperado"})
	if w.Code != http.StatusOK {
		t.Fatalf("close: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &occ)
	if occ["encerrada_em"] == nil {
		t.Fatalf("encerrada_em not stamped: %s", w.Body.String())
	}
	if _, ok := occ["tracking_hash"]; ok {
		t.Fatalf("tracking hash survived the close: %s", w.Body.String())
	}

	// closed means not trackable anywhere
	w = s.do(http.MethodGet, trackingURL, "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("resolve after close: expected 404, got %d", w.Code)
	}
	w = s.do(http.MethodPost, "/v1/monitoramento/posicao", joao, map[string]any{"ocorrenciaId": id, "latitude": -23.6, "longitude": -46.7})
	if w.Code != http.StatusConflict {
		t.Fatalf("submit after close: expected 409, got %d", w.Code)
	}
	w = s.do(http.MethodGet, occPath+"/ao-vivo", acme, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("client live after close: expected 409, got %d", w.Code)
	}
	w = s.do(http.MethodGet, "/v1/prestador/ocorrencias", joao, nil)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("provider should have no active assignment: %d %s", w.Code, w.Body.String())
	}
	w = s.do(http.MethodPut, occPath, staff, map[string]any{"status": "recuperado", "resultado": "Recuperado"})
	if w.Code != http.StatusConflict {
		t.Fatalf("second close: expected 409, got %d", w.Code)
	}

	// billing
	w = s.do(http.MethodPost, occPath+"/cobranca", staff, map[string]any{})
	if w.Code != http.StatusConflict {
		t.Fatalf("charge without expenses: expected 409, got %d", w.Code)
	}
	w = s.do(http.MethodPut, occPath, staff, map[string]any{"despesas": 350.0})
	if w.Code != http.StatusOK {
		t.Fatalf("expenses after close: %d %s", w.Code, w.Body.String())
	}
	w = s.do(http.MethodPost, occPath+"/cobranca", staff, map[string]any{})
	if w.Code != http.StatusOK {
		t.Fatalf("charge: %d %s", w.Code, w.Body.String())
	}
	var payment map[string]any
	decode(t, w, &payment)
	if payment["valor"] != 350.0 || payment["status"] != "aprovado" {
		t.Fatalf("unexpected payment: %s", w.Body.String())
	}
	w = s.do(http.MethodGet, occPath+"/cobrancas", staff, nil)
	var payments []map[string]any
	decode(t, w, &payments)
	if len(payments) != 1 {
		t.Fatalf("expected one payment: %s", w.Body.String())
	}
	w = s.do(http.MethodGet, "/v1/cobrancas/"+payment["id"].(string), staff, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get payment: %d", w.Code)
	}
}

func TestEndToEnd_TenantIsolation(t *testing.T) {
	s := newTestServer(t)
	staff := s.login("admin@ops.test")
	joao := s.login("joao@campo.test")
	acme := s.login("acme@cliente.test")
	beta := s.login("beta@cliente.test")

	mine := s.createDispatched(staff, "Acme", "João", "AAA1111")
	theirs := s.createDispatched(staff, "Beta", "Maria", "BBB2222")

	w := s.do(http.MethodGet, "/v1/prestador/ocorrencias", joao, nil)
	var list []map[string]any
	decode(t, w, &list)
	if len(list) != 1 || int64(list[0]["id"].(float64)) != mine {
		t.Fatalf("provider sees foreign assignments: %s", w.Body.String())
	}
	for _, o := range list {
		if o["prestador"] != "João" {
			t.Fatalf("leaked occurrence of %v", o["prestador"])
		}
	}

	w = s.do(http.MethodPost, "/v1/monitoramento/posicao", joao, map[string]any{"ocorrenciaId": theirs, "latitude": 1, "longitude": 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("position on foreign occurrence: expected 404, got %d", w.Code)
	}

	w = s.do(http.MethodGet, fmt.Sprintf("/v1/cliente/ocorrencias/%d", theirs), acme, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("client reading foreign occurrence: expected 404, got %d", w.Code)
	}
	w = s.do(http.MethodGet, fmt.Sprintf("/v1/ocorrencias/%d/ao-vivo", mine), beta, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("client live on foreign occurrence: expected 404, got %d", w.Code)
	}
	w = s.do(http.MethodGet, "/v1/cliente/ocorrencias", acme, nil)
	decode(t, w, &list)
	if len(list) != 1 || list[0]["cliente"] != "Acme" {
		t.Fatalf("client list leaked: %s", w.Body.String())
	}

	// kind and permission gates
	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"anonymous staff list", http.MethodGet, "/v1/ocorrencias", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/v1/ocorrencias", "not-a-jwt", http.StatusUnauthorized},
		{"provider on staff list", http.MethodGet, "/v1/ocorrencias", joao, http.StatusForbidden},
		{"client on provider portal", http.MethodGet, "/v1/prestador/ocorrencias", acme, http.StatusForbidden},
		{"staff on client portal", http.MethodGet, "/v1/cliente/ocorrencias", staff, http.StatusForbidden},
		{"provider on live feed", http.MethodGet, fmt.Sprintf("/v1/ocorrencias/%d/ao-vivo", mine), joao, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(tc.method, tc.path, tc.token, nil)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	reader := s.login("leitor@ops.test")
	w = s.do(http.MethodDelete, fmt.Sprintf("/v1/ocorrencias/%d", mine), reader, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("read-only staff delete: expected 403, got %d", w.Code)
	}
}

func TestEndToEnd_ConcurrentClose(t *testing.T) {
	s := newTestServer(t)
	staff := s.login("admin@ops.test")
	id := s.createDispatched(staff, "Acme", "João", "CCC3333")
	path := fmt.Sprintf("/v1/ocorrencias/%d", id)

	statuses := []string{"recuperado", "nao_recuperado"}
	codes := make([]int, len(statuses))
	var wg sync.WaitGroup
	for i, st := range statuses {
		wg.Add(1)
		go func(i int, st string) {
			defer wg.Done()
			w := s.do(http.MethodPut, path, staff, map[string]any{"status": st, "resultado": "encerrado por " + st})
			codes[i] = w.Code
		}(i, st)
	}
	wg.Wait()

	winner := -1
	for i, code := range codes {
		switch code {
		case http.StatusOK:
			if winner != -1 {
				t.Fatalf("two closes succeeded: %v", codes)
			}
			winner = i
		case http.StatusConflict:
		default:
			t.Fatalf("unexpected status %d (all: %v)", code, codes)
		}
	}
	if winner == -1 {
		t.Fatalf("no close succeeded: %v", codes)
	}

	w := s.do(http.MethodGet, path, staff, nil)
	var occ map[string]any
	decode(t, w, &occ)
	want, _ := entities.ParseOccurrenceStatus(statuses[winner])
	if occ["status"] != string(want) {
		t.Fatalf("stored status %v does not match winner %s", occ["status"], want)
	}
}

func TestEndToEnd_ProviderBusy(t *testing.T) {
	s := newTestServer(t)
	staff := s.login("admin@ops.test")
	s.createDispatched(staff, "Acme", "João", "DDD4444")

	w := s.do(http.MethodPost, "/v1/ocorrencias", staff, map[string]any{"placa1": "EEE5555", "cliente": "Beta", "tipo": "roubo"})
	var occ map[string]any
	decode(t, w, &occ)
	w = s.do(http.MethodPut, fmt.Sprintf("/v1/ocorrencias/%d", int64(occ["id"].(float64))), staff, map[string]any{"prestador": "João"})
	if w.Code != http.StatusConflict {
		t.Fatalf("double dispatch: expected 409, got %d %s", w.Code, w.Body.String())
	}
}

func TestEndToEnd_PositionValidation(t *testing.T) {
	s := newTestServer(t)
	staff := s.login("admin@ops.test")
	joao := s.login("joao@campo.test")
	id := s.createDispatched(staff, "Acme", "João", "FFF6666")

	w := s.do(http.MethodPost, "/v1/monitoramento/posicao", joao, map[string]any{"ocorrenciaId": id, "latitude": 95, "longitude": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("lat=95: expected 400, got %d", w.Code)
	}

	// No occurrence named: the sample goes to the current assignment.
	w = s.do(http.MethodPost, "/v1/monitoramento/posicao", joao, map[string]any{"latitude": -23.55, "longitude": -46.63})
	if w.Code != http.StatusCreated {
		t.Fatalf("accepted sample: %d %s", w.Code, w.Body.String())
	}
	var sample map[string]any
	decode(t, w, &sample)
	if sample["ocorrencia_id"] == nil || int64(sample["ocorrencia_id"].(float64)) != id {
		t.Fatalf("sample not attached to the active occurrence: %s", w.Body.String())
	}

	w = s.do(http.MethodGet, fmt.Sprintf("/v1/ocorrencias/%d/posicao", id), staff, nil)
	var latest map[string]any
	decode(t, w, &latest)
	if latest["latitude"] != -23.55 {
		t.Fatalf("latest: %s", w.Body.String())
	}
}

func TestEndToEnd_LoginThrottle(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 3; i++ {
		w := s.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "admin@ops.test", "senha": "errada"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i, w.Code)
		}
	}
	w := s.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "ADMIN@ops.test", "senha": testPassword})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}

	w = s.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "joao@campo.test", "senha": testPassword})
	if w.Code != http.StatusOK {
		t.Fatalf("other accounts are not throttled: %d", w.Code)
	}
}

func TestEndToEnd_PingAndMe(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/v1/ping", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ping: %d", w.Code)
	}

	token := s.login("acme@cliente.test")
	w = s.do(http.MethodGet, "/v1/auth/me", token, nil)
	var me map[string]any
	decode(t, w, &me)
	if me["tipo"] != "cliente" {
		t.Fatalf("me: %s", w.Body.String())
	}
}
