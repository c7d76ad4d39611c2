package entities

import (
	"encoding/json"
	"time"
)

// TipoMovimento classifies one observed state transition.

type TipoMovimento string

const (
	MovimentoRegistro    TipoMovimento = "REGISTRO"
	MovimentoLiquidacao  TipoMovimento = "LIQUIDACAO"
	MovimentoBaixa       TipoMovimento = "BAIXA"
	MovimentoProtesto    TipoMovimento = "PROTESTO"
	MovimentoAlteracao   TipoMovimento = "ALTERACAO"
	MovimentoReprocessa  TipoMovimento = "REPROCESSAMENTO"
	MovimentoNotificacao TipoMovimento = "NOTIFICACAO"
)

// OrigemMovimento identifies which surface produced the transition.

type OrigemMovimento string

const (
	OrigemAPI     OrigemMovimento = "API"
	OrigemWebhook OrigemMovimento = "WEBHOOK"
	OrigemJob     OrigemMovimento = "JOB"
	OrigemManual  OrigemMovimento = "MANUAL"
	OrigemSistema OrigemMovimento = "SYSTEM"
)

// MovimentoPorStatus maps a target status to the history kind recorded for
// the transition that reached it.
func MovimentoPorStatus(s BoletoStatus) TipoMovimento {
	switch s {
	case StatusLiquidado, StatusLiquidadoParcial:
		return MovimentoLiquidacao
	case StatusBaixado:
		return MovimentoBaixa
	case StatusProtestoSolicitado:
		return MovimentoProtesto
	default:
		return MovimentoAlteracao
	}
}

// HistoricoBoleto is one append-only audit row per state transition. Rows are
// never updated or deleted after insertion.
type HistoricoBoleto struct {
	ID             string          `json:"id"`
	BoletoID       string          `json:"boleto_id"`
	StatusAnterior BoletoStatus    `json:"status_anterior"`
	StatusNovo     BoletoStatus    `json:"status_novo"`
	TipoMovimento  TipoMovimento   `json:"tipo_movimento"`
	Detalhes       json.RawMessage `json:"detalhes,omitempty"`
	ValorAnterior  *float64        `json:"valor_anterior,omitempty"`
	ValorNovo      *float64        `json:"valor_novo,omitempty"`
	Origem         OrigemMovimento `json:"origem"`
	Autor          string          `json:"autor"`
	IP             string          `json:"ip,omitempty"`
	UserAgent      string          `json:"user_agent,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
