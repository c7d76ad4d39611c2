package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
	"cobranca_service/pkg/febraban"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrBoletoIDInvalido     = errors.New("id do boleto invalido")
	ErrBoletoNaoEncontrado  = errors.New("boleto nao encontrado")
	ErrPagadorNaoEncontrado = errors.New("pagador nao encontrado")
	ErrConfigNaoEncontrada  = errors.New("configuracao de cobranca nao encontrada")
	ErrBoletoSemRegistro    = errors.New("boleto ainda nao registrado no banco")
	ErrAlteracaoVazia       = errors.New("alteracao sem nenhum campo para aplicar")
	ErrLoteConfigMista      = errors.New("lote com configuracoes de cobranca distintas")
)

// EmissaoInput is the caller-side emission request. Beneficiary data comes
// from the billing configuration, payer data from the payer repository.
type EmissaoInput struct {
	ConfigID  string
	PagadorID string
	SeuNumero string

	ValorNominal    float64
	ValorAbatimento float64
	DataVencimento  time.Time

	Especie    entities.EspecieDocumento
	Aceite     bool
	Instrucoes []string

	JurosPercentualDia float64
	MultaPercentual    float64
	Descontos          []entities.Desconto

	ProtestoAutomatico      bool
	ProtestoDias            int
	BaixaAutomatica         bool
	BaixaDias               int
	PermitePagamentoParcial bool
	Rateio                  []entities.RateioCredito

	Origem entities.OrigemMovimento
}

// AlteracaoInput carries the amendable fields of a registered boleto. Nil
// fields stay untouched; a non-empty Rateio replaces the split table.
type AlteracaoInput struct {
	ValorNominal   *float64
	DataVencimento *time.Time
	Rateio         []entities.RateioCredito
}

// ResultadoEmissao is the typed outcome of one emission. Business rejections
// (domain validation, bank refusal) come back with Sucesso=false and a
// human-readable Motivo; only infrastructure failures surface as errors.
type ResultadoEmissao struct {
	Sucesso bool
	Motivo  string
	Boleto  entities.Boleto
}

// IBoletoUseCase encapsulates the boleto lifecycle operations.
//
// Every state transition appends one history row; operations against
// terminal boletos are rejected before any bank call.

type IBoletoUseCase interface {
	EmitirBoleto(ctx context.Context, in EmissaoInput) (ResultadoEmissao, error)
	EmitirLote(ctx context.Context, ins []EmissaoInput) ([]ResultadoEmissao, error)
	ConsultarEAtualizar(ctx context.Context, boletoID string, origem entities.OrigemMovimento) (entities.Boleto, error)
	SincronizarLiquidados(ctx context.Context, de, ate time.Time) (int, error)
	AlterarBoleto(ctx context.Context, boletoID string, alt AlteracaoInput, origem entities.OrigemMovimento) (entities.Boleto, error)
	BaixarBoleto(ctx context.Context, boletoID string, motivo entities.MotivoBaixa, origem entities.OrigemMovimento) (entities.Boleto, error)
	ProtestarBoleto(ctx context.Context, boletoID string, funcao entities.CodigoFuncaoProtesto, origem entities.OrigemMovimento) (entities.Boleto, error)
	GetByID(ctx context.Context, id string) (entities.Boleto, error)
	ListarHistorico(ctx context.Context, boletoID string) ([]entities.HistoricoBoleto, error)
	ListarPorStatus(ctx context.Context, status entities.BoletoStatus) ([]entities.Boleto, error)
}

type BoletoUseCase struct {
	boletos   interfaces.IBoletoRepository
	historico interfaces.IHistoricoRepository
	pagadores interfaces.IPagadorRepository
	configs   interfaces.IBillingConfigRepository
	gateway   interfaces.IBankGateway
	logger    zerolog.Logger
}

var _ IBoletoUseCase = (*BoletoUseCase)(nil)

func NewBoletoUseCase(
	boletos interfaces.IBoletoRepository,
	historico interfaces.IHistoricoRepository,
	pagadores interfaces.IPagadorRepository,
	configs interfaces.IBillingConfigRepository,
	gateway interfaces.IBankGateway,
	logger zerolog.Logger,
) *BoletoUseCase {
	return &BoletoUseCase{
		boletos:   boletos,
		historico: historico,
		pagadores: pagadores,
		configs:   configs,
		gateway:   gateway,
		logger:    logger.With().Str("component", "boleto_usecase").Logger(),
	}
}

func (u *BoletoUseCase) EmitirBoleto(ctx context.Context, in EmissaoInput) (ResultadoEmissao, error) {
	cfg, err := u.loadConfig(ctx, in.ConfigID)
	if err != nil {
		return ResultadoEmissao{}, err
	}

	pag, err := u.pagadores.GetByID(ctx, in.PagadorID)
	if err != nil {
		return ResultadoEmissao{}, err
	}
	if pag.ID == "" {
		return ResultadoEmissao{}, ErrPagadorNaoEncontrado
	}

	if err := entities.ValidarDadosEmissao(dadosEmissao(pag, in), time.Now()); err != nil {
		u.logger.Info().
			Str("seu_numero", in.SeuNumero).
			Str("motivo", err.Error()).
			Msg("emissao recusada na validacao local")
		return ResultadoEmissao{Motivo: err.Error()}, nil
	}

	pendente, err := u.criarPendente(ctx, cfg, pag, in)
	if err != nil {
		return ResultadoEmissao{}, err
	}

	tokenAntes := cfg.AccessToken
	res, err := u.gateway.Registrar(ctx, &cfg, toRegistro(pag, in))
	u.persistToken(ctx, tokenAntes, &cfg)

	var bankErr *interfaces.BankError
	if errors.As(err, &bankErr) {
		u.logger.Warn().
			Str("boleto_id", pendente.ID).
			Str("codigo", bankErr.Codigo).
			Msg("registro recusado pelo banco")
		return ResultadoEmissao{Motivo: bankErr.Mensagem, Boleto: pendente}, nil
	}
	if err != nil {
		return ResultadoEmissao{}, err
	}

	emitido, err := u.finalizarRegistro(ctx, pendente, res, origemOuAPI(in.Origem))
	if err != nil {
		return ResultadoEmissao{}, err
	}
	return ResultadoEmissao{Sucesso: true, Boleto: emitido}, nil
}

// EmitirLote validates and stages every item locally, then registers the
// valid ones through the gateway's paced batch call. One rejected item never
// aborts the rest; each input gets its own result, in order. Every item must
// name the same billing configuration; mixed batches are rejected up front.
func (u *BoletoUseCase) EmitirLote(ctx context.Context, ins []EmissaoInput) ([]ResultadoEmissao, error) {
	if len(ins) == 0 {
		return nil, nil
	}

	for _, in := range ins[1:] {
		if in.ConfigID != ins[0].ConfigID {
			return nil, ErrLoteConfigMista
		}
	}

	cfg, err := u.loadConfig(ctx, ins[0].ConfigID)
	if err != nil {
		return nil, err
	}

	results := make([]ResultadoEmissao, len(ins))
	var (
		regs     []interfaces.RegistroBoleto
		staged   []entities.Boleto
		posicoes []int
	)

	for i, in := range ins {
		pag, err := u.pagadores.GetByID(ctx, in.PagadorID)
		if err != nil {
			return nil, err
		}
		if pag.ID == "" {
			results[i] = ResultadoEmissao{Motivo: ErrPagadorNaoEncontrado.Error()}
			continue
		}
		if err := entities.ValidarDadosEmissao(dadosEmissao(pag, in), time.Now()); err != nil {
			results[i] = ResultadoEmissao{Motivo: err.Error()}
			continue
		}

		pendente, err := u.criarPendente(ctx, cfg, pag, in)
		if err != nil {
			return nil, err
		}
		regs = append(regs, toRegistro(pag, in))
		staged = append(staged, pendente)
		posicoes = append(posicoes, i)
	}

	if len(regs) == 0 {
		return results, nil
	}

	tokenAntes := cfg.AccessToken
	lote := u.gateway.RegistrarLote(ctx, &cfg, regs)
	u.persistToken(ctx, tokenAntes, &cfg)

	for j, out := range lote {
		i := posicoes[j]
		if out.Err != nil {
			var bankErr *interfaces.BankError
			motivo := out.Err.Error()
			if errors.As(out.Err, &bankErr) {
				motivo = bankErr.Mensagem
			}
			u.logger.Warn().
				Str("boleto_id", staged[j].ID).
				Str("seu_numero", out.SeuNumero).
				Str("motivo", motivo).
				Msg("item do lote recusado")
			results[i] = ResultadoEmissao{Motivo: motivo, Boleto: staged[j]}
			continue
		}

		emitido, err := u.finalizarRegistro(ctx, staged[j], out.Resultado, origemOuAPI(ins[i].Origem))
		if err != nil {
			return nil, err
		}
		results[i] = ResultadoEmissao{Sucesso: true, Boleto: emitido}
	}
	return results, nil
}

// ConsultarEAtualizar fetches the bank's authoritative view and reconciles
// the local row. Nothing is written when the bank reports no change.
func (u *BoletoUseCase) ConsultarEAtualizar(ctx context.Context, boletoID string, origem entities.OrigemMovimento) (entities.Boleto, error) {
	b, err := u.GetByID(ctx, boletoID)
	if err != nil {
		return entities.Boleto{}, err
	}
	if b.NossoNumero == "" {
		return entities.Boleto{}, ErrBoletoSemRegistro
	}

	cfg, err := u.loadConfig(ctx, b.ConfigID)
	if err != nil {
		return entities.Boleto{}, err
	}

	tokenAntes := cfg.AccessToken
	res, err := u.gateway.Consultar(ctx, &cfg, b.NossoNumero)
	u.persistToken(ctx, tokenAntes, &cfg)
	if err != nil {
		return entities.Boleto{}, err
	}

	novo := entities.NormalizeSituacao(res.Situacao)
	pagoMudou := res.ValorPago != nil && (b.ValorPago == nil || *b.ValorPago != *res.ValorPago)
	if novo == b.Status && !pagoMudou {
		return b, nil
	}

	if b.Status.Terminal() {
		u.apontarReprocessamento(ctx, b, novo, origem, res.Raw)
		return b, nil
	}
	if novo != b.Status && !entities.PodeTransicionar(b.Status, novo) {
		return entities.Boleto{}, entities.ErrTransicaoInvalida
	}

	anterior := b.Status
	valorAnterior := b.ValorPago
	b.Status = novo
	if res.ValorPago != nil {
		b.ValorPago = res.ValorPago
	}
	if res.DataPagamento != nil {
		b.DataPagamento = res.DataPagamento
	}
	switch novo {
	case entities.StatusBaixado:
		b.Baixado = true
	case entities.StatusProtestoSolicitado:
		b.ProtestoSolicitado = true
	}
	b.UpdatedAt = time.Now().UTC()

	atualizado, err := u.boletos.Update(ctx, b)
	if err != nil {
		return entities.Boleto{}, err
	}

	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: anterior,
		StatusNovo:     novo,
		TipoMovimento:  entities.MovimentoPorStatus(novo),
		Detalhes:       res.Raw,
		ValorAnterior:  valorAnterior,
		ValorNovo:      b.ValorPago,
		Origem:         origem,
		Autor:          "sync",
	})

	u.logger.Info().
		Str("boleto_id", b.ID).
		Str("de", string(anterior)).
		Str("para", string(novo)).
		Msg("boleto sincronizado com o banco")
	return atualizado, nil
}

// SincronizarLiquidados walks the bank's settled-in-period listing and
// settles the matching local rows. Unknown nosso números are logged and
// skipped; the return value counts the boletos actually settled here.
func (u *BoletoUseCase) SincronizarLiquidados(ctx context.Context, de, ate time.Time) (int, error) {
	cfg, err := u.loadConfig(ctx, "")
	if err != nil {
		return 0, err
	}

	tokenAntes := cfg.AccessToken
	items, err := u.gateway.ListarLiquidados(ctx, &cfg, de, ate)
	u.persistToken(ctx, tokenAntes, &cfg)
	if err != nil {
		return 0, err
	}

	aplicados := 0
	for _, it := range items {
		b, err := u.boletos.GetByNossoNumero(ctx, it.NossoNumero)
		if err != nil {
			u.logger.Warn().Err(err).Str("nosso_numero", it.NossoNumero).Msg("falha ao buscar boleto liquidado")
			continue
		}
		if b.ID == "" {
			u.logger.Warn().Str("nosso_numero", it.NossoNumero).Msg("liquidado do banco sem boleto local")
			continue
		}
		if b.Status == entities.StatusLiquidado {
			continue
		}

		detalhes, _ := json.Marshal(it)
		if b.Status.Terminal() {
			u.apontarReprocessamento(ctx, b, entities.StatusLiquidado, entities.OrigemJob, detalhes)
			continue
		}
		if !entities.PodeTransicionar(b.Status, entities.StatusLiquidado) {
			u.logger.Warn().
				Str("boleto_id", b.ID).
				Str("status", string(b.Status)).
				Msg("liquidacao listada mas transicao invalida")
			continue
		}

		anterior := b.Status
		valorAnterior := b.ValorPago
		pago := it.ValorPago
		b.Status = entities.StatusLiquidado
		b.ValorPago = &pago
		if !it.DataPagamento.IsZero() {
			dt := it.DataPagamento
			b.DataPagamento = &dt
		}
		b.UpdatedAt = time.Now().UTC()

		if _, err := u.boletos.Update(ctx, b); err != nil {
			u.logger.Error().Err(err).Str("boleto_id", b.ID).Msg("falha ao aplicar liquidacao listada")
			continue
		}
		u.apontarHistorico(ctx, entities.HistoricoBoleto{
			BoletoID:       b.ID,
			StatusAnterior: anterior,
			StatusNovo:     entities.StatusLiquidado,
			TipoMovimento:  entities.MovimentoLiquidacao,
			Detalhes:       detalhes,
			ValorAnterior:  valorAnterior,
			ValorNovo:      b.ValorPago,
			Origem:         entities.OrigemJob,
			Autor:          "sync",
		})
		aplicados++
	}

	u.logger.Info().Int("listados", len(items)).Int("aplicados", aplicados).Msg("liquidados do periodo sincronizados")
	return aplicados, nil
}

// AlterarBoleto amends value, due date or the credit split of a registered
// boleto at the bank, then mirrors the change locally.
func (u *BoletoUseCase) AlterarBoleto(ctx context.Context, boletoID string, alt AlteracaoInput, origem entities.OrigemMovimento) (entities.Boleto, error) {
	if alt.ValorNominal == nil && alt.DataVencimento == nil && len(alt.Rateio) == 0 {
		return entities.Boleto{}, ErrAlteracaoVazia
	}
	if alt.ValorNominal != nil && *alt.ValorNominal <= 0 {
		return entities.Boleto{}, entities.ErrValorNominalInvalido
	}
	if alt.DataVencimento != nil && !alt.DataVencimento.After(time.Now()) {
		return entities.Boleto{}, entities.ErrVencimentoPassado
	}

	b, err := u.GetByID(ctx, boletoID)
	if err != nil {
		return entities.Boleto{}, err
	}
	if b.NossoNumero == "" {
		return entities.Boleto{}, ErrBoletoSemRegistro
	}
	if b.Status.Terminal() {
		return entities.Boleto{}, entities.ErrStatusTerminal
	}

	if len(alt.Rateio) > 0 {
		valor := b.ValorNominal
		if alt.ValorNominal != nil {
			valor = *alt.ValorNominal
		}
		soma := 0.0
		for _, r := range alt.Rateio {
			soma += r.Valor
		}
		if diff := soma - valor; diff > 0.009 || diff < -0.009 {
			return entities.Boleto{}, entities.ErrRateioNaoFechaValor
		}
	}

	cfg, err := u.loadConfig(ctx, b.ConfigID)
	if err != nil {
		return entities.Boleto{}, err
	}

	tokenAntes := cfg.AccessToken
	if alt.ValorNominal != nil || alt.DataVencimento != nil {
		err = u.gateway.Alterar(ctx, &cfg, b.NossoNumero, interfaces.AlteracaoBoleto{
			ValorNominal:   alt.ValorNominal,
			DataVencimento: alt.DataVencimento,
		})
	}
	if err == nil && len(alt.Rateio) > 0 {
		err = u.gateway.ConfigurarRateio(ctx, &cfg, b.NossoNumero, alt.Rateio)
	}
	u.persistToken(ctx, tokenAntes, &cfg)
	if err != nil {
		return entities.Boleto{}, err
	}

	var valorAnterior, valorNovo *float64
	if alt.ValorNominal != nil {
		va := b.ValorNominal
		valorAnterior = &va
		valorNovo = alt.ValorNominal
		b.ValorNominal = *alt.ValorNominal
	}
	if alt.DataVencimento != nil {
		b.DataVencimento = *alt.DataVencimento
	}
	if len(alt.Rateio) > 0 {
		b.Rateio = alt.Rateio
	}
	b.UpdatedAt = time.Now().UTC()

	atualizado, err := u.boletos.Update(ctx, b)
	if err != nil {
		return entities.Boleto{}, err
	}

	detalhes, _ := json.Marshal(alt)
	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: b.Status,
		StatusNovo:     b.Status,
		TipoMovimento:  entities.MovimentoAlteracao,
		Detalhes:       detalhes,
		ValorAnterior:  valorAnterior,
		ValorNovo:      valorNovo,
		Origem:         origem,
		Autor:          "alteracao",
	})

	u.logger.Info().Str("boleto_id", b.ID).Msg("boleto alterado no banco")
	return atualizado, nil
}

func (u *BoletoUseCase) BaixarBoleto(ctx context.Context, boletoID string, motivo entities.MotivoBaixa, origem entities.OrigemMovimento) (entities.Boleto, error) {
	if !motivo.Valido() {
		return entities.Boleto{}, entities.ErrMotivoBaixaInvalido
	}

	b, err := u.GetByID(ctx, boletoID)
	if err != nil {
		return entities.Boleto{}, err
	}
	if b.Status.Terminal() {
		return entities.Boleto{}, entities.ErrStatusTerminal
	}
	if !entities.PodeTransicionar(b.Status, entities.StatusBaixado) {
		return entities.Boleto{}, entities.ErrTransicaoInvalida
	}

	cfg, err := u.loadConfig(ctx, b.ConfigID)
	if err != nil {
		return entities.Boleto{}, err
	}

	tokenAntes := cfg.AccessToken
	err = u.gateway.Baixar(ctx, &cfg, b.NossoNumero, motivo)
	u.persistToken(ctx, tokenAntes, &cfg)
	if err != nil {
		return entities.Boleto{}, err
	}

	anterior := b.Status
	b.Status = entities.StatusBaixado
	b.Baixado = true
	b.UpdatedAt = time.Now().UTC()

	atualizado, err := u.boletos.Update(ctx, b)
	if err != nil {
		return entities.Boleto{}, err
	}

	detalhes, _ := json.Marshal(map[string]int{"motivo": int(motivo)})
	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: anterior,
		StatusNovo:     entities.StatusBaixado,
		TipoMovimento:  entities.MovimentoBaixa,
		Detalhes:       detalhes,
		Origem:         origem,
		Autor:          "baixa",
	})

	u.logger.Info().Str("boleto_id", b.ID).Int("motivo", int(motivo)).Msg("boleto baixado")
	return atualizado, nil
}

func (u *BoletoUseCase) ProtestarBoleto(ctx context.Context, boletoID string, funcao entities.CodigoFuncaoProtesto, origem entities.OrigemMovimento) (entities.Boleto, error) {
	if !funcao.Valido() {
		return entities.Boleto{}, entities.ErrCodigoFuncaoInvalido
	}

	b, err := u.GetByID(ctx, boletoID)
	if err != nil {
		return entities.Boleto{}, err
	}
	if b.Status.Terminal() {
		return entities.Boleto{}, entities.ErrStatusTerminal
	}
	if !entities.PodeTransicionar(b.Status, entities.StatusProtestoSolicitado) {
		return entities.Boleto{}, entities.ErrTransicaoInvalida
	}
	if err := entities.ValidarProtesto(b.DataVencimento, time.Now()); err != nil {
		return entities.Boleto{}, err
	}

	cfg, err := u.loadConfig(ctx, b.ConfigID)
	if err != nil {
		return entities.Boleto{}, err
	}

	tokenAntes := cfg.AccessToken
	err = u.gateway.Protestar(ctx, &cfg, b.NossoNumero, funcao)
	u.persistToken(ctx, tokenAntes, &cfg)
	if err != nil {
		return entities.Boleto{}, err
	}

	anterior := b.Status
	b.Status = entities.StatusProtestoSolicitado
	b.ProtestoSolicitado = true
	b.UpdatedAt = time.Now().UTC()

	atualizado, err := u.boletos.Update(ctx, b)
	if err != nil {
		return entities.Boleto{}, err
	}

	detalhes, _ := json.Marshal(map[string]int{"codigo_funcao": int(funcao)})
	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: anterior,
		StatusNovo:     entities.StatusProtestoSolicitado,
		TipoMovimento:  entities.MovimentoProtesto,
		Detalhes:       detalhes,
		Origem:         origem,
		Autor:          "protesto",
	})

	u.logger.Info().Str("boleto_id", b.ID).Int("codigo_funcao", int(funcao)).Msg("protesto solicitado")
	return atualizado, nil
}

func (u *BoletoUseCase) GetByID(ctx context.Context, id string) (entities.Boleto, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Boleto{}, ErrBoletoIDInvalido
	}

	b, err := u.boletos.GetByID(ctx, id)
	if err != nil {
		return entities.Boleto{}, err
	}
	if b.ID == "" {
		return entities.Boleto{}, ErrBoletoNaoEncontrado
	}
	return b, nil
}

func (u *BoletoUseCase) ListarHistorico(ctx context.Context, boletoID string) ([]entities.HistoricoBoleto, error) {
	if _, err := u.GetByID(ctx, boletoID); err != nil {
		return nil, err
	}
	return u.historico.ListByBoletoID(ctx, boletoID)
}

func (u *BoletoUseCase) ListarPorStatus(ctx context.Context, status entities.BoletoStatus) ([]entities.Boleto, error) {
	return u.boletos.ListByStatus(ctx, status)
}

func (u *BoletoUseCase) loadConfig(ctx context.Context, configID string) (entities.BillingConfiguration, error) {
	var (
		cfg entities.BillingConfiguration
		err error
	)
	if configID != "" {
		cfg, err = u.configs.GetByID(ctx, configID)
	} else {
		cfg, err = u.configs.GetAtiva(ctx)
	}
	if err != nil {
		return entities.BillingConfiguration{}, err
	}
	if cfg.ID == "" {
		return entities.BillingConfiguration{}, ErrConfigNaoEncontrada
	}
	return cfg, nil
}

func (u *BoletoUseCase) criarPendente(ctx context.Context, cfg entities.BillingConfiguration, pag entities.Pagador, in EmissaoInput) (entities.Boleto, error) {
	agora := time.Now().UTC()
	requestPayload, _ := json.Marshal(toRegistro(pag, in))

	b := entities.Boleto{
		ID:                      uuid.NewString(),
		ConfigID:                cfg.ID,
		PagadorID:               pag.ID,
		SeuNumero:               in.SeuNumero,
		Status:                  entities.StatusPendenteRegistro,
		ValorNominal:            in.ValorNominal,
		ValorAbatimento:         in.ValorAbatimento,
		DataEmissao:             agora,
		DataVencimento:          in.DataVencimento,
		EspecieDocumento:        in.Especie,
		Aceite:                  in.Aceite,
		Instrucoes:              in.Instrucoes,
		JurosPercentualDia:      in.JurosPercentualDia,
		MultaPercentual:         in.MultaPercentual,
		Descontos:               in.Descontos,
		ProtestoAutomatico:      in.ProtestoAutomatico,
		ProtestoDias:            in.ProtestoDias,
		BaixaAutomatica:         in.BaixaAutomatica,
		BaixaDias:               in.BaixaDias,
		PermitePagamentoParcial: in.PermitePagamentoParcial,
		Rateio:                  in.Rateio,
		RequestPayload:          requestPayload,
		CreatedAt:               agora,
		UpdatedAt:               agora,
	}
	return u.boletos.Create(ctx, b)
}

func (u *BoletoUseCase) finalizarRegistro(ctx context.Context, b entities.Boleto, res interfaces.RegistroResultado, origem entities.OrigemMovimento) (entities.Boleto, error) {
	anterior := b.Status

	b.NossoNumero = res.NossoNumero
	b.CodigoBarras = res.CodigoBarras
	b.LinhaDigitavel = res.LinhaDigitavel
	if b.LinhaDigitavel == "" && b.CodigoBarras != "" {
		linha, err := febraban.LinhaDigitavel(b.CodigoBarras)
		if err != nil {
			u.logger.Warn().Err(err).Str("boleto_id", b.ID).Msg("codigo de barras do banco invalido para linha digitavel")
		} else {
			b.LinhaDigitavel = linha
		}
	}

	b.Status = entities.StatusAberto
	if res.Situacao != "" {
		b.Status = entities.NormalizeSituacao(res.Situacao)
	}
	b.Registrado = true
	b.ResponsePayload = res.Raw
	b.UpdatedAt = time.Now().UTC()

	atualizado, err := u.boletos.Update(ctx, b)
	if err != nil {
		return entities.Boleto{}, err
	}

	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: anterior,
		StatusNovo:     b.Status,
		TipoMovimento:  entities.MovimentoRegistro,
		Detalhes:       res.Raw,
		Origem:         origem,
		Autor:          "emissao",
	})
	return atualizado, nil
}

// apontarHistorico appends one audit row, stamping the caller identity
// carried in the context. Failures are logged, never propagated: the state
// change already committed.
func (u *BoletoUseCase) apontarHistorico(ctx context.Context, h entities.HistoricoBoleto) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now().UTC()
	if a := autoriaDe(ctx); h.IP == "" {
		h.IP = a.IP
		h.UserAgent = a.UserAgent
	}
	if _, err := u.historico.Append(ctx, h); err != nil {
		u.logger.Error().Err(err).Str("boleto_id", h.BoletoID).Msg("falha ao gravar historico")
	}
}

func (u *BoletoUseCase) apontarReprocessamento(ctx context.Context, b entities.Boleto, tentado entities.BoletoStatus, origem entities.OrigemMovimento, detalhes json.RawMessage) {
	u.logger.Warn().
		Str("boleto_id", b.ID).
		Str("status", string(b.Status)).
		Str("tentado", string(tentado)).
		Msg("transicao ignorada: boleto em status terminal")
	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: b.Status,
		StatusNovo:     b.Status,
		TipoMovimento:  entities.MovimentoReprocessa,
		Detalhes:       detalhes,
		Origem:         origem,
		Autor:          "sync",
	})
}

func (u *BoletoUseCase) persistToken(ctx context.Context, antes string, cfg *entities.BillingConfiguration) {
	if cfg.AccessToken == "" || cfg.AccessToken == antes {
		return
	}
	if err := u.configs.UpdateToken(ctx, cfg.ID, cfg.AccessToken, cfg.TokenExpiraEm.Unix()); err != nil {
		u.logger.Warn().Err(err).Str("config_id", cfg.ID).Msg("falha ao persistir token renovado")
	}
}

func origemOuAPI(o entities.OrigemMovimento) entities.OrigemMovimento {
	if o == "" {
		return entities.OrigemAPI
	}
	return o
}

func dadosEmissao(pag entities.Pagador, in EmissaoInput) entities.DadosEmissao {
	return entities.DadosEmissao{
		Pagador:            pag,
		DataVencimento:     in.DataVencimento,
		ValorNominal:       in.ValorNominal,
		Especie:            in.Especie,
		JurosPercentualDia: in.JurosPercentualDia,
		MultaPercentual:    in.MultaPercentual,
		Instrucoes:         in.Instrucoes,
		Rateio:             in.Rateio,
	}
}

func toRegistro(pag entities.Pagador, in EmissaoInput) interfaces.RegistroBoleto {
	return interfaces.RegistroBoleto{
		SeuNumero:               in.SeuNumero,
		Pagador:                 pag,
		ValorNominal:            in.ValorNominal,
		ValorAbatimento:         in.ValorAbatimento,
		DataVencimento:          in.DataVencimento,
		Especie:                 in.Especie,
		Aceite:                  in.Aceite,
		Instrucoes:              in.Instrucoes,
		JurosPercentualDia:      in.JurosPercentualDia,
		MultaPercentual:         in.MultaPercentual,
		Descontos:               in.Descontos,
		ProtestoAutomatico:      in.ProtestoAutomatico,
		ProtestoDias:            in.ProtestoDias,
		BaixaAutomatica:         in.BaixaAutomatica,
		BaixaDias:               in.BaixaDias,
		PermitePagamentoParcial: in.PermitePagamentoParcial,
		Rateio:                  in.Rateio,
	}
}
