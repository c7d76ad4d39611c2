package response

import (
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
)

type BoletoResponse struct {
	ID          string `json:"id"`
	ConfigID    string `json:"config_id"`
	PagadorID   string `json:"pagador_id"`
	NossoNumero string `json:"nosso_numero,omitempty"`
	SeuNumero   string `json:"seu_numero"`

	Status string `json:"status"`

	ValorNominal    float64  `json:"valor_nominal"`
	ValorAbatimento float64  `json:"valor_abatimento,omitempty"`
	ValorPago       *float64 `json:"valor_pago,omitempty"`

	DataEmissao    time.Time  `json:"data_emissao"`
	DataVencimento time.Time  `json:"data_vencimento"`
	DataPagamento  *time.Time `json:"data_pagamento,omitempty"`

	EspecieDocumento string `json:"especie_documento"`

	CodigoBarras   string `json:"codigo_barras,omitempty"`
	LinhaDigitavel string `json:"linha_digitavel,omitempty"`

	Registrado              bool `json:"registrado"`
	PermitePagamentoParcial bool `json:"permite_pagamento_parcial"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBoleto(b entities.Boleto) BoletoResponse {
	return BoletoResponse{
		ID:                      b.ID,
		ConfigID:                b.ConfigID,
		PagadorID:               b.PagadorID,
		NossoNumero:             b.NossoNumero,
		SeuNumero:               b.SeuNumero,
		Status:                  string(b.Status),
		ValorNominal:            b.ValorNominal,
		ValorAbatimento:         b.ValorAbatimento,
		ValorPago:               b.ValorPago,
		DataEmissao:             b.DataEmissao,
		DataVencimento:          b.DataVencimento,
		DataPagamento:           b.DataPagamento,
		EspecieDocumento:        string(b.EspecieDocumento),
		CodigoBarras:            b.CodigoBarras,
		LinhaDigitavel:          b.LinhaDigitavel,
		Registrado:              b.Registrado,
		PermitePagamentoParcial: b.PermitePagamentoParcial,
		CreatedAt:               b.CreatedAt,
		UpdatedAt:               b.UpdatedAt,
	}
}

// EmissaoResponse mirrors the typed emission result: rejected emissions are
// a payload, not an HTTP error.
type EmissaoResponse struct {
	Sucesso bool            `json:"sucesso"`
	Motivo  string          `json:"motivo,omitempty"`
	Boleto  *BoletoResponse `json:"boleto,omitempty"`
}

func FromResultadoEmissao(r usecase.ResultadoEmissao) EmissaoResponse {
	out := EmissaoResponse{Sucesso: r.Sucesso, Motivo: r.Motivo}
	if r.Boleto.ID != "" {
		b := FromBoleto(r.Boleto)
		out.Boleto = &b
	}
	return out
}

func FromResultadosEmissao(rs []usecase.ResultadoEmissao) []EmissaoResponse {
	out := make([]EmissaoResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromResultadoEmissao(r))
	}
	return out
}

type HistoricoResponse struct {
	ID             string    `json:"id"`
	BoletoID       string    `json:"boleto_id"`
	StatusAnterior string    `json:"status_anterior"`
	StatusNovo     string    `json:"status_novo"`
	TipoMovimento  string    `json:"tipo_movimento"`
	ValorAnterior  *float64  `json:"valor_anterior,omitempty"`
	ValorNovo      *float64  `json:"valor_novo,omitempty"`
	Origem         string    `json:"origem"`
	Autor          string    `json:"autor"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromHistorico(h entities.HistoricoBoleto) HistoricoResponse {
	return HistoricoResponse{
		ID:             h.ID,
		BoletoID:       h.BoletoID,
		StatusAnterior: string(h.StatusAnterior),
		StatusNovo:     string(h.StatusNovo),
		TipoMovimento:  string(h.TipoMovimento),
		ValorAnterior:  h.ValorAnterior,
		ValorNovo:      h.ValorNovo,
		Origem:         string(h.Origem),
		Autor:          h.Autor,
		CreatedAt:      h.CreatedAt,
	}
}

func FromHistoricos(hs []entities.HistoricoBoleto) []HistoricoResponse {
	out := make([]HistoricoResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, FromHistorico(h))
	}
	return out
}

// WebhookAckResponse is the body sent back to the bank. The HTTP status is
// 200 even when internal handling failed; Erro carries the detail.
type WebhookAckResponse struct {
	Recebido bool   `json:"recebido"`
	EventoID string `json:"evento_id,omitempty"`
	Erro     string `json:"erro,omitempty"`
}
