package entities

import (
	"errors"
	"strings"
	"time"

	"cobranca_service/pkg/documento"
)

var (
	ErrDocumentoInvalido    = errors.New("documento do pagador invalido")
	ErrEnderecoIncompleto   = errors.New("endereco do pagador incompleto")
	ErrVencimentoPassado    = errors.New("data de vencimento deve ser futura")
	ErrValorNominalInvalido = errors.New("valor nominal deve ser maior que zero")
	ErrEspecieInvalida      = errors.New("especie de documento invalida")
	ErrCartaoComEncargos    = errors.New("especie cartao de credito nao admite juros ou multa")
	ErrProtestoPrematuro    = errors.New("protesto exige ao menos 3 dias corridos apos o vencimento")
	ErrTransicaoInvalida    = errors.New("transicao de status nao permitida")
	ErrStatusTerminal       = errors.New("boleto em status terminal nao aceita transicoes")
	ErrParcialNaoPermitido  = errors.New("pagamento parcial nao habilitado para este boleto")
	ErrRateioNaoFechaValor  = errors.New("rateio de credito nao soma o valor nominal")
	ErrInstrucoesExcedem    = errors.New("maximo de 9 linhas de instrucoes")
	ErrMotivoBaixaInvalido  = errors.New("motivo de baixa invalido")
	ErrCodigoFuncaoInvalido = errors.New("codigo de funcao de protesto invalido")
)

// ProtestoMinDias is the minimum number of elapsed calendar days past the due
// date before a protest request is accepted.
const ProtestoMinDias = 3

// MaxLinhasInstrucao bounds the free-text instruction block sent to the bank.
const MaxLinhasInstrucao = 9

// MotivoBaixa is the bank write-off reason code (1..7).

type MotivoBaixa int

const (
	BaixaPagoDinheiro MotivoBaixa = 1
	BaixaPagoCheque   MotivoBaixa = 2
	BaixaProtestado   MotivoBaixa = 3
	BaixaDevolucao    MotivoBaixa = 4
	BaixaDesconto     MotivoBaixa = 5
	BaixaLiquidacao   MotivoBaixa = 6
	BaixaOutros       MotivoBaixa = 7
)

func (m MotivoBaixa) Valido() bool { return m >= BaixaPagoDinheiro && m <= BaixaOutros }

// CodigoFuncaoProtesto selects between formal protest and negative listing.

type CodigoFuncaoProtesto int

const (
	FuncaoProtestar CodigoFuncaoProtesto = 1
	FuncaoNegativar CodigoFuncaoProtesto = 3
)

func (c CodigoFuncaoProtesto) Valido() bool {
	return c == FuncaoProtestar || c == FuncaoNegativar
}

// PodeTransicionar reports whether the transition de → para is legal.
// Terminal states accept nothing; OPEN accepts the full event set, including
// the in-place OPEN → OPEN amendment.
func PodeTransicionar(de, para BoletoStatus) bool {
	if de.Terminal() {
		return false
	}
	switch de {
	case StatusPendenteRegistro:
		return para == StatusAberto || para == StatusCancelado
	case StatusAberto:
		switch para {
		case StatusAberto, StatusLiquidado, StatusLiquidadoParcial,
			StatusBaixado, StatusProtestoSolicitado, StatusCancelado:
			return true
		}
	case StatusProtestoSolicitado:
		switch para {
		case StatusLiquidado, StatusBaixado, StatusCancelado:
			return true
		}
	case StatusLiquidadoParcial:
		switch para {
		case StatusLiquidado, StatusLiquidadoParcial, StatusBaixado:
			return true
		}
	}
	return false
}

// DadosEmissao is the lifecycle-relevant slice of an emission request.
type DadosEmissao struct {
	Pagador            Pagador
	DataVencimento     time.Time
	ValorNominal       float64
	Especie            EspecieDocumento
	JurosPercentualDia float64
	MultaPercentual    float64
	Instrucoes         []string
	Rateio             []RateioCredito
}

// ValidarDadosEmissao applies every emission-time domain rule. It runs before
// any network call; a failure here must never reach the bank.
func ValidarDadosEmissao(d DadosEmissao, agora time.Time) error {
	if !documento.IsValid(d.Pagador.Documento) {
		return ErrDocumentoInvalido
	}
	if err := validarEndereco(d.Pagador.Endereco); err != nil {
		return err
	}
	if !d.DataVencimento.After(agora) {
		return ErrVencimentoPassado
	}
	if d.ValorNominal <= 0 {
		return ErrValorNominalInvalido
	}
	if !d.Especie.Valida() {
		return ErrEspecieInvalida
	}
	if d.Especie == EspecieCartaoCredito && (d.JurosPercentualDia != 0 || d.MultaPercentual != 0) {
		return ErrCartaoComEncargos
	}
	if len(d.Instrucoes) > MaxLinhasInstrucao {
		return ErrInstrucoesExcedem
	}
	if len(d.Rateio) > 0 {
		soma := 0.0
		for _, r := range d.Rateio {
			soma += r.Valor
		}
		// Cent-level tolerance: split rows come from UI input.
		if diff := soma - d.ValorNominal; diff > 0.009 || diff < -0.009 {
			return ErrRateioNaoFechaValor
		}
	}
	return nil
}

func validarEndereco(e Endereco) error {
	for _, campo := range []string{e.Logradouro, e.Numero, e.Bairro, e.Cidade, e.UF, e.CEP} {
		if strings.TrimSpace(campo) == "" {
			return ErrEnderecoIncompleto
		}
	}
	return nil
}

// ValidarProtesto enforces the elapsed-days precondition locally, before any
// bank call is attempted.
func ValidarProtesto(vencimento, agora time.Time) error {
	dias := int(agora.Sub(vencimento).Hours() / 24)
	if dias < ProtestoMinDias {
		return ErrProtestoPrematuro
	}
	return nil
}
