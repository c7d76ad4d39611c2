package entities

import (
	"encoding/json"
	"time"
)

// BoletoStatus carries the bank's situation code for a registered boleto.
//
// "00" also appears in some bank payloads as a legacy alias for an open
// title; NormalizeSituacao folds it into the canonical "01".

type BoletoStatus string

const (
	StatusPendenteRegistro   BoletoStatus = "00"
	StatusAberto             BoletoStatus = "01"
	StatusProtestoSolicitado BoletoStatus = "04"
	StatusCancelado          BoletoStatus = "05"
	StatusBaixado            BoletoStatus = "57"
	StatusLiquidado          BoletoStatus = "61"
	StatusLiquidadoParcial   BoletoStatus = "62"
)

// Terminal reports whether no further transitions are accepted from s,
// webhook-driven or manual.
func (s BoletoStatus) Terminal() bool {
	switch s {
	case StatusLiquidado, StatusBaixado, StatusCancelado:
		return true
	}
	return false
}

// NormalizeSituacao maps a bank situation code to the local status, folding
// the legacy open alias "00" into "01".
func NormalizeSituacao(code string) BoletoStatus {
	if code == "00" {
		return StatusAberto
	}
	return BoletoStatus(code)
}

// EspecieDocumento is the FEBRABAN document species code.

type EspecieDocumento string

const (
	EspecieDM            EspecieDocumento = "02" // duplicata mercantil
	EspecieDS            EspecieDocumento = "04" // duplicata de serviço
	EspecieLC            EspecieDocumento = "07" // letra de câmbio
	EspecieNP            EspecieDocumento = "12" // nota promissória
	EspecieNS            EspecieDocumento = "16" // nota de seguro
	EspecieRC            EspecieDocumento = "17" // recibo
	EspecieCartaoCredito EspecieDocumento = "31"
)

func (e EspecieDocumento) Valida() bool {
	switch e {
	case EspecieDM, EspecieDS, EspecieLC, EspecieNP, EspecieNS, EspecieRC, EspecieCartaoCredito:
		return true
	}
	return false
}

// Desconto is one tiered early-payment discount window.
type Desconto struct {
	DataLimite time.Time `json:"data_limite"`
	Percentual float64   `json:"percentual"`
}

// RateioCredito is one credit-split entry. The sum of Valor across the table
// must equal the boleto's nominal value.
type RateioCredito struct {
	Documento  string  `json:"documento"`
	Percentual float64 `json:"percentual"`
	Valor      float64 `json:"valor"`
}

// Boleto is the central billing entity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (nosso_numero-index): nosso_numero
//   - GSI2 (status-index): status
//
// RequestPayload/ResponsePayload keep the raw bank exchange for audit; they
// are never reparsed by the core.

type Boleto struct {
	ID          string `json:"id"`
	ConfigID    string `json:"config_id"`
	PagadorID   string `json:"pagador_id"`
	NossoNumero string `json:"nosso_numero"`
	SeuNumero   string `json:"seu_numero"`

	Status BoletoStatus `json:"status"`

	ValorNominal    float64  `json:"valor_nominal"`
	ValorAbatimento float64  `json:"valor_abatimento"`
	ValorJuros      float64  `json:"valor_juros"`
	ValorMulta      float64  `json:"valor_multa"`
	ValorDesconto   float64  `json:"valor_desconto"`
	ValorPago       *float64 `json:"valor_pago,omitempty"`

	DataEmissao    time.Time  `json:"data_emissao"`
	DataVencimento time.Time  `json:"data_vencimento"`
	DataPagamento  *time.Time `json:"data_pagamento,omitempty"`

	EspecieDocumento EspecieDocumento `json:"especie_documento"`
	Aceite           bool             `json:"aceite"`
	Instrucoes       []string         `json:"instrucoes,omitempty"`

	JurosPercentualDia float64    `json:"juros_percentual_dia"`
	MultaPercentual    float64    `json:"multa_percentual"`
	Descontos          []Desconto `json:"descontos,omitempty"`

	ProtestoAutomatico      bool            `json:"protesto_automatico"`
	ProtestoDias            int             `json:"protesto_dias"`
	BaixaAutomatica         bool            `json:"baixa_automatica"`
	BaixaDias               int             `json:"baixa_dias"`
	PermitePagamentoParcial bool            `json:"permite_pagamento_parcial"`
	Rateio                  []RateioCredito `json:"rateio,omitempty"`

	CodigoBarras   string `json:"codigo_barras"`
	LinhaDigitavel string `json:"linha_digitavel"`

	RequestPayload  json.RawMessage `json:"request_payload,omitempty"`
	ResponsePayload json.RawMessage `json:"response_payload,omitempty"`

	Registrado             bool `json:"registrado"`
	AvisoVencimentoEnviado bool `json:"aviso_vencimento_enviado"`
	AvisoAtrasoEnviado     bool `json:"aviso_atraso_enviado"`
	ProtestoSolicitado     bool `json:"protesto_solicitado"`
	Baixado                bool `json:"baixado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
