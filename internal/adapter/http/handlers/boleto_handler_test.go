package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/adapter/http/handlers/mocks"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
	"cobranca_service/internal/usecase/interfaces"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newBoletoRouter(t *testing.T) (*gin.Engine, *mocks.MockIBoletoUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBoletoUseCase(ctrl)
	h := NewBoletoHandler(uc, zerolog.Nop())

	r := gin.New()
	r.POST("/v1/boletos", h.EmitirBoleto)
	r.POST("/v1/boletos/lote", h.EmitirLote)
	r.GET("/v1/boletos/:id", h.GetBoleto)
	r.PATCH("/v1/boletos/:id", h.Alterar)
	r.GET("/v1/boletos/:id/historico", h.ListarHistorico)
	r.POST("/v1/boletos/:id/consultar", h.Consultar)
	r.POST("/v1/boletos/:id/baixa", h.Baixar)
	r.POST("/v1/boletos/:id/protesto", h.Protestar)
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const emitirBody = `{
	"pagador_id": "pag-1",
	"seu_numero": "FAT-0001",
	"valor_nominal": 150.0,
	"data_vencimento": "2027-01-15",
	"especie_documento": "02"
}`

func TestBoletoHandler_EmitirBoleto(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		r, _ := newBoletoRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/boletos", `{"seu_numero":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid due date format", func(t *testing.T) {
		r, _ := newBoletoRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/boletos",
			`{"pagador_id":"p","seu_numero":"s","valor_nominal":1,"data_vencimento":"15/01/2027","especie_documento":"02"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().EmitirBoleto(gomock.Any(), gomock.Any()).Return(usecase.ResultadoEmissao{
			Sucesso: true,
			Boleto: entities.Boleto{
				ID:          "bol-1",
				SeuNumero:   "FAT-0001",
				NossoNumero: "12345678901",
				Status:      entities.StatusAberto,
			},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/boletos", emitirBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var body response.EmissaoResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !body.Sucesso || body.Boleto == nil || body.Boleto.ID != "bol-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("business rejection is 422 with typed result", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().EmitirBoleto(gomock.Any(), gomock.Any()).Return(usecase.ResultadoEmissao{
			Motivo: "documento do pagador invalido",
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/boletos", emitirBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var body response.EmissaoResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Sucesso || body.Motivo == "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("bank error maps to gateway status", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().EmitirBoleto(gomock.Any(), gomock.Any()).Return(usecase.ResultadoEmissao{},
			&interfaces.BankError{Codigo: "A99", Mensagem: "instabilidade", HTTPStatus: 503})

		w := doJSON(r, http.MethodPost, "/v1/boletos", emitirBody)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestBoletoHandler_GetBoleto(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Boleto{}, usecase.ErrBoletoNaoEncontrado)

		w := doJSON(r, http.MethodGet, "/v1/boletos/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Code != "BOLETO_NOT_FOUND" {
			t.Fatalf("unexpected error code: %s", body.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "bol-1").Return(entities.Boleto{ID: "bol-1", Status: entities.StatusAberto}, nil)

		w := doJSON(r, http.MethodGet, "/v1/boletos/bol-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBoletoHandler_Consultar(t *testing.T) {
	t.Run("unregistered boleto is a conflict", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().ConsultarEAtualizar(gomock.Any(), "bol-1", entities.OrigemAPI).
			Return(entities.Boleto{}, usecase.ErrBoletoSemRegistro)

		w := doJSON(r, http.MethodPost, "/v1/boletos/bol-1/consultar", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().ConsultarEAtualizar(gomock.Any(), "bol-1", entities.OrigemAPI).
			Return(entities.Boleto{ID: "bol-1", Status: entities.StatusLiquidado}, nil)

		w := doJSON(r, http.MethodPost, "/v1/boletos/bol-1/consultar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBoletoHandler_Baixar(t *testing.T) {
	t.Run("motivo out of range", func(t *testing.T) {
		r, _ := newBoletoRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/boletos/bol-1/baixa", `{"motivo":9}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("terminal state conflict", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().BaixarBoleto(gomock.Any(), "bol-1", entities.BaixaOutros, entities.OrigemAPI).
			Return(entities.Boleto{}, entities.ErrStatusTerminal)

		w := doJSON(r, http.MethodPost, "/v1/boletos/bol-1/baixa", `{"motivo":7}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().BaixarBoleto(gomock.Any(), "bol-1", entities.BaixaPagoDinheiro, entities.OrigemAPI).
			Return(entities.Boleto{ID: "bol-1", Status: entities.StatusBaixado}, nil)

		w := doJSON(r, http.MethodPost, "/v1/boletos/bol-1/baixa", `{"motivo":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBoletoHandler_Protestar(t *testing.T) {
	t.Run("codigo funcao rejected by binding", func(t *testing.T) {
		r, _ := newBoletoRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/boletos/bol-1/protesto", `{"codigo_funcao":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("premature protest is 422", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().ProtestarBoleto(gomock.Any(), "bol-1", entities.FuncaoProtestar, entities.OrigemAPI).
			Return(entities.Boleto{}, entities.ErrProtestoPrematuro)

		w := doJSON(r, http.MethodPost, "/v1/boletos/bol-1/protesto", `{"codigo_funcao":1}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().ProtestarBoleto(gomock.Any(), "bol-1", entities.FuncaoNegativar, entities.OrigemAPI).
			Return(entities.Boleto{ID: "bol-1", Status: entities.StatusProtestoSolicitado}, nil)

		w := doJSON(r, http.MethodPost, "/v1/boletos/bol-1/protesto", `{"codigo_funcao":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBoletoHandler_Alterar(t *testing.T) {
	t.Run("non-positive value rejected by binding", func(t *testing.T) {
		r, _ := newBoletoRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/boletos/bol-1", `{"valor_nominal":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty amendment is 400", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().AlterarBoleto(gomock.Any(), "bol-1", gomock.Any(), entities.OrigemAPI).
			Return(entities.Boleto{}, usecase.ErrAlteracaoVazia)

		w := doJSON(r, http.MethodPatch, "/v1/boletos/bol-1", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("terminal state conflict", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().AlterarBoleto(gomock.Any(), "bol-1", gomock.Any(), entities.OrigemAPI).
			Return(entities.Boleto{}, entities.ErrStatusTerminal)

		w := doJSON(r, http.MethodPatch, "/v1/boletos/bol-1", `{"valor_nominal":200}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBoletoRouter(t)
		uc.EXPECT().AlterarBoleto(gomock.Any(), "bol-1", gomock.Any(), entities.OrigemAPI).DoAndReturn(
			func(_ context.Context, _ string, alt usecase.AlteracaoInput, _ entities.OrigemMovimento) (entities.Boleto, error) {
				if alt.ValorNominal == nil || *alt.ValorNominal != 200.0 {
					t.Fatalf("value not parsed: %+v", alt)
				}
				if alt.DataVencimento == nil || alt.DataVencimento.Format("2006-01-02") != "2027-02-01" {
					t.Fatalf("due date not parsed: %+v", alt)
				}
				return entities.Boleto{ID: "bol-1", Status: entities.StatusAberto, ValorNominal: 200.0}, nil
			})

		w := doJSON(r, http.MethodPatch, "/v1/boletos/bol-1",
			`{"valor_nominal":200,"data_vencimento":"2027-02-01"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestBoletoHandler_EmitirLote(t *testing.T) {
	r, uc := newBoletoRouter(t)
	uc.EXPECT().EmitirLote(gomock.Any(), gomock.Any()).Return([]usecase.ResultadoEmissao{
		{Sucesso: true, Boleto: entities.Boleto{ID: "bol-1"}},
		{Motivo: "valor nominal deve ser maior que zero"},
	}, nil)

	body := `{"boletos":[
		{"pagador_id":"p1","seu_numero":"A","valor_nominal":10,"data_vencimento":"2027-01-15","especie_documento":"02"},
		{"pagador_id":"p2","seu_numero":"B","valor_nominal":20,"data_vencimento":"2027-01-15","especie_documento":"02"}
	]}`
	w := doJSON(r, http.MethodPost, "/v1/boletos/lote", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var results []response.EmissaoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(results) != 2 || !results[0].Sucesso || results[1].Sucesso {
		t.Fatalf("unexpected results: %+v", results)
	}
}
