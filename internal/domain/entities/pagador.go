package entities

import "time"

// TipoPessoa distinguishes individual payers from legal entities.

type TipoPessoa string

const (
	PessoaFisica   TipoPessoa = "FISICA"
	PessoaJuridica TipoPessoa = "JURIDICA"
)

// Endereco is the payer's postal address. Every field except Complemento is
// mandatory for bank submission.
type Endereco struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	CEP         string `json:"cep"`
}

// Pagador is owned by the surrounding system; the billing core only reads it.
type Pagador struct {
	ID            string     `json:"id"`
	Documento     string     `json:"documento"`
	Nome          string     `json:"nome"`
	TipoPessoa    TipoPessoa `json:"tipo_pessoa"`
	Endereco      Endereco   `json:"endereco"`
	Telefone      string     `json:"telefone,omitempty"`
	Email         string     `json:"email,omitempty"`
	CodigoInterno string     `json:"codigo_interno,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
