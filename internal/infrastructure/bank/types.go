package bank

import "encoding/json"

// Wire types for the bank's cobrança API. Dates travel as "2006-01-02".

type beneficiarioPayload struct {
	Documento        string `json:"documento"`
	Nome             string `json:"nome"`
	Agencia          string `json:"agencia"`
	Conta            string `json:"conta"`
	Carteira         string `json:"carteira"`
	CodigoNegociacao string `json:"codigoNegociacao"`
}

type pagadorPayload struct {
	Documento   string `json:"documento"`
	Nome        string `json:"nome"`
	TipoPessoa  string `json:"tipoPessoa"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	CEP         string `json:"cep"`
	Telefone    string `json:"telefone,omitempty"`
	Email       string `json:"email,omitempty"`
}

type descontoPayload struct {
	DataLimite string  `json:"dataLimite"`
	Percentual float64 `json:"percentual"`
}

type rateioPayload struct {
	Documento  string  `json:"documento"`
	Percentual float64 `json:"percentual"`
	Valor      float64 `json:"valor"`
}

type registroPayload struct {
	Beneficiario            beneficiarioPayload `json:"beneficiario"`
	Pagador                 pagadorPayload      `json:"pagador"`
	SeuNumero               string              `json:"seuNumero"`
	EspecieDocumento        string              `json:"especieDocumento"`
	Aceite                  string              `json:"aceite"`
	DataVencimento          string              `json:"dataVencimento"`
	ValorNominal            float64             `json:"valorNominal"`
	ValorAbatimento         float64             `json:"valorAbatimento,omitempty"`
	Instrucoes              []string            `json:"instrucoes,omitempty"`
	JurosPercentualDia      float64             `json:"jurosPercentualDia"`
	MultaPercentual         float64             `json:"multaPercentual"`
	Descontos               []descontoPayload   `json:"descontos,omitempty"`
	ProtestoAutomatico      bool                `json:"protestoAutomatico"`
	ProtestoDias            int                 `json:"protestoDias,omitempty"`
	BaixaAutomatica         bool                `json:"baixaAutomatica"`
	BaixaDias               int                 `json:"baixaDias,omitempty"`
	PermitePagamentoParcial bool                `json:"permitePagamentoParcial"`
	Rateio                  []rateioPayload     `json:"rateio,omitempty"`
}

type registroResponse struct {
	NossoNumero    string `json:"nossoNumero"`
	CodigoBarras   string `json:"codigoBarras"`
	LinhaDigitavel string `json:"linhaDigitavel"`
	Situacao       string `json:"situacao"`
}

type consultaRequest struct {
	NossoNumero string `json:"nossoNumero"`
}

type consultaResponse struct {
	NossoNumero   string  `json:"nossoNumero"`
	Situacao      string  `json:"situacao"`
	ValorNominal  float64 `json:"valorNominal"`
	ValorPago     float64 `json:"valorPago,omitempty"`
	DataPagamento string  `json:"dataPagamento,omitempty"`
}

type liquidadosRequest struct {
	DataInicio         string `json:"dataInicio"`
	DataFim            string `json:"dataFim"`
	UltimoNossoNumero  string `json:"ultimoNossoNumero,omitempty"`
	QuantidadeRegistro int    `json:"quantidadeRegistro,omitempty"`
}

type liquidadoItemPayload struct {
	NossoNumero   string  `json:"nossoNumero"`
	SeuNumero     string  `json:"seuNumero"`
	ValorPago     float64 `json:"valorPago"`
	DataPagamento string  `json:"dataPagamento"`
	DataCredito   string  `json:"dataCredito"`
}

type liquidadosResponse struct {
	Items            []liquidadoItemPayload `json:"items"`
	TemMaisRegistros bool                   `json:"temMaisRegistros"`
}

type baixaRequest struct {
	NossoNumero string `json:"nossoNumero"`
	Motivo      int    `json:"motivo"`
}

type protestoRequest struct {
	NossoNumero  string `json:"nossoNumero"`
	CodigoFuncao int    `json:"codigoFuncao"`
}

type alteracaoRequest struct {
	NossoNumero    string   `json:"nossoNumero"`
	ValorNominal   *float64 `json:"valorNominal,omitempty"`
	DataVencimento string   `json:"dataVencimento,omitempty"`
}

type rateioConfigRequest struct {
	NossoNumero string          `json:"nossoNumero"`
	Rateio      []rateioPayload `json:"rateio"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// erroEnvelope matches the two shapes the bank returns business rejections
// in: a single code/message pair or a list under "erros".
type erroEnvelope struct {
	Codigo   string `json:"codigo"`
	Mensagem string `json:"mensagem"`
	Erros    []struct {
		Codigo   string `json:"codigo"`
		Mensagem string `json:"mensagem"`
	} `json:"erros"`
}

func parseErro(body []byte) (codigo, mensagem string) {
	var env erroEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", ""
	}
	if env.Codigo != "" || env.Mensagem != "" {
		return env.Codigo, env.Mensagem
	}
	if len(env.Erros) > 0 {
		return env.Erros[0].Codigo, env.Erros[0].Mensagem
	}
	return "", ""
}

// mensagensConhecidas translates recurring bank rejection codes into messages
// operators can act on. Unknown codes fall back to the bank's own text.
var mensagensConhecidas = map[string]string{
	"A04": "boleto ja liquidado",
	"A08": "boleto ja baixado",
	"A16": "nosso numero inexistente para o beneficiario",
	"A24": "boleto com protesto ja solicitado",
	"A33": "valor de abatimento maior que o valor do titulo",
	"A45": "dados do pagador incompletos ou invalidos",
	"A52": "carteira nao permitida para a operacao",
	"B07": "boleto vencido ha mais de 30 dias nao admite alteracao",
}
