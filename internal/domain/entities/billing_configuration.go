package entities

import "time"

// Ambiente selects the bank environment a configuration talks to.

type Ambiente string

const (
	AmbienteProducao Ambiente = "producao"
	AmbienteSandbox  Ambiente = "sandbox"
)

// DescontoPadrao is a default early-payment discount tier applied to new
// boletos: Percentual off when paid DiasAntes days or more before due.
type DescontoPadrao struct {
	DiasAntes  int     `json:"dias_antes"`
	Percentual float64 `json:"percentual"`
}

// BillingConfiguration is one beneficiary/bank-account contract.
//
// AccessToken/TokenExpiraEm are mutated by the bank gateway on every refresh.
// Configurations are never hard-deleted; Ativo gates usage.

type BillingConfiguration struct {
	ID                    string `json:"id"`
	BeneficiarioDocumento string `json:"beneficiario_documento"`
	BeneficiarioNome      string `json:"beneficiario_nome"`

	CodigoBanco      string `json:"codigo_banco"`
	Agencia          string `json:"agencia"`
	Conta            string `json:"conta"`
	Carteira         string `json:"carteira"`
	CodigoNegociacao string `json:"codigo_negociacao"`

	ClientID      string    `json:"client_id"`
	ClientSecret  string    `json:"-"`
	AccessToken   string    `json:"-"`
	TokenExpiraEm time.Time `json:"-"`

	JurosPercentualDia float64          `json:"juros_percentual_dia"`
	MultaPercentual    float64          `json:"multa_percentual"`
	Descontos          []DescontoPadrao `json:"descontos,omitempty"` // up to 3 tiers

	DiasProtesto int      `json:"dias_protesto"` // business days, minimum 3
	Ambiente     Ambiente `json:"ambiente"`
	Ativo        bool     `json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
