package interfaces

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cobranca_service/internal/domain/entities"
)

// BankError is a business-level rejection from the bank's API, already
// translated to a human-readable message (falling back to the bank's own
// message when no local translation exists). Transport failures are plain
// wrapped errors, not BankError.
type BankError struct {
	Codigo     string
	Mensagem   string
	HTTPStatus int
}

func (e *BankError) Error() string {
	return fmt.Sprintf("banco recusou a operacao [%s]: %s", e.Codigo, e.Mensagem)
}

// RegistroBoleto is the registration payload assembled by the use case from
// configuration + payer + caller input.
type RegistroBoleto struct {
	SeuNumero               string
	Pagador                 entities.Pagador
	ValorNominal            float64
	ValorAbatimento         float64
	DataVencimento          time.Time
	Especie                 entities.EspecieDocumento
	Aceite                  bool
	Instrucoes              []string
	JurosPercentualDia      float64
	MultaPercentual         float64
	Descontos               []entities.Desconto
	ProtestoAutomatico      bool
	ProtestoDias            int
	BaixaAutomatica         bool
	BaixaDias               int
	PermitePagamentoParcial bool
	Rateio                  []entities.RateioCredito
}

// RegistroResultado carries what the bank returned for a successful
// registration. Raw keeps the unparsed response body for audit.
type RegistroResultado struct {
	NossoNumero    string
	CodigoBarras   string
	LinhaDigitavel string
	Situacao       string
	Raw            json.RawMessage
}

// ConsultaResultado is the authoritative bank-side view of one boleto.
type ConsultaResultado struct {
	NossoNumero   string
	Situacao      string
	ValorNominal  float64
	ValorPago     *float64
	DataPagamento *time.Time
	Raw           json.RawMessage
}

// LiquidadoItem is one row of the settled-in-period listing.
type LiquidadoItem struct {
	NossoNumero   string
	SeuNumero     string
	ValorPago     float64
	DataPagamento time.Time
	DataCredito   time.Time
}

// AlteracaoBoleto carries the amendable fields (value and/or due date).
type AlteracaoBoleto struct {
	ValorNominal   *float64
	DataVencimento *time.Time
}

// ResultadoLote is the per-item outcome of a batch registration. Batches
// never abort on first failure.
type ResultadoLote struct {
	SeuNumero string
	Resultado RegistroResultado
	Err       error
}

// IBankGateway wraps the bank's cobrança REST API. Every call authenticates
// with the configuration's OAuth2 client credentials; a 401 is retried
// exactly once after forcing a token refresh.

type IBankGateway interface {
	Registrar(ctx context.Context, cfg *entities.BillingConfiguration, req RegistroBoleto) (RegistroResultado, error)
	Consultar(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string) (ConsultaResultado, error)
	ListarLiquidados(ctx context.Context, cfg *entities.BillingConfiguration, de, ate time.Time) ([]LiquidadoItem, error)
	Baixar(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string, motivo entities.MotivoBaixa) error
	Protestar(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string, funcao entities.CodigoFuncaoProtesto) error
	Alterar(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string, alt AlteracaoBoleto) error
	ConfigurarRateio(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string, rateio []entities.RateioCredito) error
	RegistrarLote(ctx context.Context, cfg *entities.BillingConfiguration, reqs []RegistroBoleto) []ResultadoLote
}
