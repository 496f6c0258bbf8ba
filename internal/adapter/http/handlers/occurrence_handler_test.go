package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ocorrencias_api/internal/adapter/http/handlers/mocks"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOccurrenceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.POST("/v1/ocorrencias", h.Create)

		w := doJSON(r, http.MethodPost, "/v1/ocorrencias", `{"despesas":"abc"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.POST("/v1/ocorrencias", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Occurrence{}, usecase.ErrUnknownClient)

		w := doJSON(r, http.MethodPost, "/v1/ocorrencias", `{"placa1":"ABC1234","cliente":"Nobody","tipo":"furto"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UNKNOWN_CLIENT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.POST("/v1/ocorrencias", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.OccurrenceInput) (entities.Occurrence, error) {
				if in.Placa1 == nil || *in.Placa1 != "ABC1234" || in.Cliente == nil || *in.Cliente != "Acme" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Occurrence{ID: 1, Placa1: "ABC1234", Cliente: "Acme", Tipo: "furto", Status: entities.OccurrenceStatusAguardando}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/ocorrencias", `{"placa1":"ABC1234","cliente":"Acme","tipo":"furto"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "aguardando" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOccurrenceHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"close without outcome", usecase.ErrOutcomeRequired, http.StatusBadRequest},
		{"illegal transition", usecase.ErrIllegalTransition, http.StatusConflict},
		{"lost the race", usecase.ErrConcurrentModification, http.StatusConflict},
		{"not found", usecase.ErrOccurrenceNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIOccurrenceUseCase(ctrl)
			h := NewOccurrenceHandler(uc)

			r := routerAs(staffIdentity)
			r.PUT("/v1/ocorrencias/:id", h.Update)

			uc.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(entities.Occurrence{}, tc.err)

			w := doJSON(r, http.MethodPut, "/v1/ocorrencias/7", `{"status":"recuperado"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("explicit null expense reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.PUT("/v1/ocorrencias/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, in usecase.OccurrenceInput) (entities.Occurrence, error) {
				if !in.Despesas.Set || in.Despesas.Value != nil {
					t.Fatalf("expected explicit null, got %+v", in.Despesas)
				}
				if in.Km.Set {
					t.Fatalf("km was not sent")
				}
				return entities.Occurrence{ID: 7}, nil
			})

		w := doJSON(r, http.MethodPut, "/v1/ocorrencias/7", `{"despesas":null}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.PUT("/v1/ocorrencias/:id", h.Update)

		w := doJSON(r, http.MethodPut, "/v1/ocorrencias/-3", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOccurrenceHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters are parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.GET("/v1/ocorrencias", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f interfaces.OccurrenceFilter) ([]entities.Occurrence, error) {
				if f.Cliente != "Acme" || f.Status != entities.OccurrenceStatusNaoRecuperado || f.Placa != "ABC" {
					t.Fatalf("unexpected filter: %+v", f)
				}
				if f.Inicio == nil || !f.Inicio.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected inicio: %v", f.Inicio)
				}
				if f.Fim == nil || f.Fim.Day() != 31 || f.Fim.Hour() != 23 {
					t.Fatalf("end date should cover the whole day: %v", f.Fim)
				}
				if !f.OrderByClosure {
					t.Fatalf("expected closure ordering")
				}
				return nil, nil
			})

		w := doJSON(r, http.MethodGet, "/v1/ocorrencias?cliente=Acme&status=nao_recuperado&placa=ABC&inicio=2024-01-01&fim=2024-01-31&ordem=encerramento", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("bad status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.GET("/v1/ocorrencias", h.List)

		w := doJSON(r, http.MethodGet, "/v1/ocorrencias?status=voando", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.GET("/v1/ocorrencias", h.List)

		w := doJSON(r, http.MethodGet, "/v1/ocorrencias?inicio=ontem", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOccurrenceHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOccurrenceUseCase(ctrl)
	h := NewOccurrenceHandler(uc)

	r := routerAs(staffIdentity)
	r.DELETE("/v1/ocorrencias/:id", h.Delete)

	uc.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	w := doJSON(r, http.MethodDelete, "/v1/ocorrencias/4", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestOccurrenceHandler_AddPhotos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.POST("/v1/ocorrencias/:id/fotos", h.AddPhotos)

		w := doJSON(r, http.MethodPost, "/v1/ocorrencias/3/fotos", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("files are streamed to the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewOccurrenceHandler(uc)

		r := routerAs(staffIdentity)
		r.POST("/v1/ocorrencias/:id/fotos", h.AddPhotos)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for _, name := range []string{"a.jpg", "b.png"} {
			fw, _ := mw.CreateFormFile("fotos", name)
			_, _ = fw.Write([]byte("img-" + name))
		}
		_ = mw.WriteField("legenda", "frente")
		_ = mw.Close()

		uc.EXPECT().AddPhotos(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, uploads []usecase.PhotoUpload) (entities.Occurrence, error) {
				if len(uploads) != 2 || uploads[1].Filename != "b.png" || uploads[0].Legenda != "frente" {
					t.Fatalf("unexpected uploads: %+v", uploads)
				}
				content, _ := io.ReadAll(uploads[0].Content)
				if string(content) != "img-a.jpg" {
					t.Fatalf("unexpected content: %s", content)
				}
				return entities.Occurrence{ID: 3, Fotos: []entities.Photo{{ID: "p1"}, {ID: "p2"}}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/ocorrencias/3/fotos", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
