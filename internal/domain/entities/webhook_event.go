package entities

import (
	"encoding/json"
	"time"
)

// TipoEvento is the bank's push-notification event type.

type TipoEvento string

const (
	EventoLiquidacao        TipoEvento = "LIQUIDACAO"
	EventoLiquidacaoParcial TipoEvento = "LIQUIDACAO_PARCIAL"
	EventoBaixa             TipoEvento = "BAIXA"
	EventoProtesto          TipoEvento = "PROTESTO"
	EventoAlteracao         TipoEvento = "ALTERACAO"
	EventoRejeicao          TipoEvento = "REJEICAO"
)

// WebhookEvent is one inbound bank notification. The row is inserted
// synchronously before the HTTP 200 ack and updated once async processing
// finishes, so every delivery is durably recorded even if processing crashes.
type WebhookEvent struct {
	ID          string     `json:"id"`
	TipoEvento  TipoEvento `json:"tipo_evento"`
	NossoNumero string     `json:"nosso_numero"`
	SeuNumero   string     `json:"seu_numero,omitempty"`

	Payload       json.RawMessage `json:"payload"`
	ValorPago     *float64        `json:"valor_pago,omitempty"`
	DataPagamento *time.Time      `json:"data_pagamento,omitempty"`
	DataCredito   *time.Time      `json:"data_credito,omitempty"`

	Processado        bool       `json:"processado"`
	ProcessadoEm      *time.Time `json:"processado_em,omitempty"`
	ErroProcessamento string     `json:"erro_processamento,omitempty"`

	HTTPStatus int               `json:"http_status"`
	OrigemIP   string            `json:"origem_ip,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`

	RecebidoEm time.Time `json:"recebido_em"`
}
