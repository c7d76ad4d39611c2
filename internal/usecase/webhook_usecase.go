package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrEventoNaoEncontrado = errors.New("evento de webhook nao encontrado")
	ErrNotificacaoInvalida = errors.New("payload de notificacao invalido")
)

const webhookDateLayout = "2006-01-02"

// notificacaoPayload is the bank's push-notification body.
type notificacaoPayload struct {
	TipoEvento     string   `json:"tipoEvento"`
	NossoNumero    string   `json:"nossoNumero"`
	SeuNumero      string   `json:"seuNumero"`
	ValorPago      *float64 `json:"valorPago"`
	ValorNominal   *float64 `json:"valorNominal"`
	DataPagamento  string   `json:"dataPagamento"`
	DataCredito    string   `json:"dataCredito"`
	DataVencimento string   `json:"dataVencimento"`
}

// IWebhookUseCase reconciles inbound bank notifications with local state.
//
// ReceberNotificacao must complete its insert before the HTTP ack is sent;
// processing then runs detached from the request. Processing is idempotent:
// a redelivered event that produces no delta writes no history row.

type IWebhookUseCase interface {
	ReceberNotificacao(ctx context.Context, payload json.RawMessage, origemIP string, headers map[string]string) (entities.WebhookEvent, error)
	ProcessarNotificacao(ctx context.Context, eventoID string) error
	ProcessarPendentes(ctx context.Context) error
	Reprocessar(ctx context.Context, eventoID string) error
}

type WebhookUseCase struct {
	eventos   interfaces.IWebhookEventRepository
	boletos   interfaces.IBoletoRepository
	historico interfaces.IHistoricoRepository
	logger    zerolog.Logger
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	eventos interfaces.IWebhookEventRepository,
	boletos interfaces.IBoletoRepository,
	historico interfaces.IHistoricoRepository,
	logger zerolog.Logger,
) *WebhookUseCase {
	return &WebhookUseCase{
		eventos:   eventos,
		boletos:   boletos,
		historico: historico,
		logger:    logger.With().Str("component", "webhook_usecase").Logger(),
	}
}

// ReceberNotificacao durably records one delivery. It never mutates boleto
// state; that happens in ProcessarNotificacao, after the caller has acked.
// Deliveries missing the correlation fields are still stored, already marked
// processed with an error note, so the raw body stays auditable without ever
// entering the pending backlog.
func (u *WebhookUseCase) ReceberNotificacao(ctx context.Context, payload json.RawMessage, origemIP string, headers map[string]string) (entities.WebhookEvent, error) {
	agora := time.Now().UTC()

	var p notificacaoPayload
	parseErr := json.Unmarshal(payload, &p)
	if parseErr != nil || p.TipoEvento == "" || p.NossoNumero == "" {
		e := entities.WebhookEvent{
			ID:                uuid.NewString(),
			TipoEvento:        entities.TipoEvento(p.TipoEvento),
			NossoNumero:       p.NossoNumero,
			SeuNumero:         p.SeuNumero,
			Payload:           payload,
			Processado:        true,
			ProcessadoEm:      &agora,
			ErroProcessamento: ErrNotificacaoInvalida.Error(),
			HTTPStatus:        200,
			OrigemIP:          origemIP,
			Headers:           headers,
			RecebidoEm:        agora,
		}
		created, err := u.eventos.Create(ctx, e)
		if err != nil {
			u.logger.Error().Err(err).Msg("falha ao persistir notificacao invalida")
			return entities.WebhookEvent{}, ErrNotificacaoInvalida
		}
		u.logger.Warn().Str("evento_id", created.ID).Msg("notificacao sem campos de correlacao")
		return created, ErrNotificacaoInvalida
	}

	e := entities.WebhookEvent{
		ID:            uuid.NewString(),
		TipoEvento:    entities.TipoEvento(p.TipoEvento),
		NossoNumero:   p.NossoNumero,
		SeuNumero:     p.SeuNumero,
		Payload:       payload,
		ValorPago:     p.ValorPago,
		DataPagamento: parseWebhookDate(p.DataPagamento),
		DataCredito:   parseWebhookDate(p.DataCredito),
		HTTPStatus:    200,
		OrigemIP:      origemIP,
		Headers:       headers,
		RecebidoEm:    agora,
	}

	created, err := u.eventos.Create(ctx, e)
	if err != nil {
		return entities.WebhookEvent{}, err
	}

	u.logger.Info().
		Str("evento_id", created.ID).
		Str("tipo", string(created.TipoEvento)).
		Str("nosso_numero", created.NossoNumero).
		Msg("notificacao recebida")
	return created, nil
}

func (u *WebhookUseCase) ProcessarNotificacao(ctx context.Context, eventoID string) error {
	e, err := u.eventos.GetByID(ctx, eventoID)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return ErrEventoNaoEncontrado
	}
	if e.Processado {
		return nil
	}
	return u.aplicar(ctx, e)
}

// ProcessarPendentes drains the unprocessed backlog, one event at a time.
// A failed event is logged and skipped; the rest still run.
func (u *WebhookUseCase) ProcessarPendentes(ctx context.Context) error {
	pendentes, err := u.eventos.ListUnprocessed(ctx)
	if err != nil {
		return err
	}
	for _, e := range pendentes {
		if err := u.aplicar(ctx, e); err != nil {
			u.logger.Error().Err(err).Str("evento_id", e.ID).Msg("falha ao processar evento pendente")
		}
	}
	return nil
}

// Reprocessar replays the stored payload, ignoring the processed flag. Replay
// after a successful apply is a no-op: the delta guard sees no change.
func (u *WebhookUseCase) Reprocessar(ctx context.Context, eventoID string) error {
	e, err := u.eventos.GetByID(ctx, eventoID)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return ErrEventoNaoEncontrado
	}
	u.logger.Info().Str("evento_id", e.ID).Msg("reprocessando notificacao")
	return u.aplicar(ctx, e)
}

func (u *WebhookUseCase) aplicar(ctx context.Context, e entities.WebhookEvent) error {
	b, err := u.boletos.GetByNossoNumero(ctx, e.NossoNumero)
	if err != nil {
		return err
	}
	if b.ID == "" {
		u.logger.Warn().
			Str("evento_id", e.ID).
			Str("nosso_numero", e.NossoNumero).
			Msg("notificacao para boleto desconhecido")
		return u.eventos.MarkProcessed(ctx, e.ID, "boleto nao encontrado para o nosso numero informado")
	}

	switch e.TipoEvento {
	case entities.EventoLiquidacao:
		return u.aplicarLiquidacao(ctx, e, b, entities.StatusLiquidado)
	case entities.EventoLiquidacaoParcial:
		if !b.PermitePagamentoParcial {
			u.logger.Warn().Str("evento_id", e.ID).Str("boleto_id", b.ID).Msg("liquidacao parcial nao habilitada")
			return u.eventos.MarkProcessed(ctx, e.ID, entities.ErrParcialNaoPermitido.Error())
		}
		return u.aplicarLiquidacao(ctx, e, b, entities.StatusLiquidadoParcial)
	case entities.EventoBaixa:
		return u.aplicarTransicao(ctx, e, b, entities.StatusBaixado)
	case entities.EventoProtesto:
		return u.aplicarTransicao(ctx, e, b, entities.StatusProtestoSolicitado)
	case entities.EventoAlteracao:
		return u.aplicarAlteracao(ctx, e, b)
	case entities.EventoRejeicao:
		u.logger.Warn().
			Str("evento_id", e.ID).
			Str("boleto_id", b.ID).
			RawJSON("payload", e.Payload).
			Msg("banco rejeitou instrucao sobre o boleto")
		return u.eventos.MarkProcessed(ctx, e.ID, "")
	default:
		u.logger.Warn().Str("evento_id", e.ID).Str("tipo", string(e.TipoEvento)).Msg("tipo de evento desconhecido")
		return u.eventos.MarkProcessed(ctx, e.ID, fmt.Sprintf("tipo de evento desconhecido: %s", e.TipoEvento))
	}
}

func (u *WebhookUseCase) aplicarLiquidacao(ctx context.Context, e entities.WebhookEvent, b entities.Boleto, alvo entities.BoletoStatus) error {
	pagoMudou := e.ValorPago != nil && (b.ValorPago == nil || *b.ValorPago != *e.ValorPago)
	if b.Status == alvo && !pagoMudou {
		// Redelivery of an already-applied event.
		return u.eventos.MarkProcessed(ctx, e.ID, "")
	}

	if b.Status.Terminal() {
		return u.apontarTerminal(ctx, e, b, alvo)
	}
	if b.Status != alvo && !entities.PodeTransicionar(b.Status, alvo) {
		return u.eventos.MarkProcessed(ctx, e.ID, entities.ErrTransicaoInvalida.Error())
	}

	anterior := b.Status
	valorAnterior := b.ValorPago
	b.Status = alvo
	if e.ValorPago != nil {
		b.ValorPago = e.ValorPago
	} else if alvo == entities.StatusLiquidado && b.ValorPago == nil {
		v := b.ValorNominal
		b.ValorPago = &v
	}
	if e.DataPagamento != nil {
		b.DataPagamento = e.DataPagamento
	}
	b.UpdatedAt = time.Now().UTC()

	if _, err := u.boletos.Update(ctx, b); err != nil {
		return err
	}

	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: anterior,
		StatusNovo:     alvo,
		TipoMovimento:  entities.MovimentoLiquidacao,
		Detalhes:       e.Payload,
		ValorAnterior:  valorAnterior,
		ValorNovo:      b.ValorPago,
		Origem:         entities.OrigemWebhook,
		Autor:          "webhook",
	})

	u.logger.Info().
		Str("evento_id", e.ID).
		Str("boleto_id", b.ID).
		Str("de", string(anterior)).
		Str("para", string(alvo)).
		Msg("liquidacao aplicada")
	return u.eventos.MarkProcessed(ctx, e.ID, "")
}

func (u *WebhookUseCase) aplicarTransicao(ctx context.Context, e entities.WebhookEvent, b entities.Boleto, alvo entities.BoletoStatus) error {
	if b.Status == alvo {
		return u.eventos.MarkProcessed(ctx, e.ID, "")
	}
	if b.Status.Terminal() {
		return u.apontarTerminal(ctx, e, b, alvo)
	}
	if !entities.PodeTransicionar(b.Status, alvo) {
		return u.eventos.MarkProcessed(ctx, e.ID, entities.ErrTransicaoInvalida.Error())
	}

	anterior := b.Status
	b.Status = alvo
	switch alvo {
	case entities.StatusBaixado:
		b.Baixado = true
	case entities.StatusProtestoSolicitado:
		b.ProtestoSolicitado = true
	}
	b.UpdatedAt = time.Now().UTC()

	if _, err := u.boletos.Update(ctx, b); err != nil {
		return err
	}

	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: anterior,
		StatusNovo:     alvo,
		TipoMovimento:  entities.MovimentoPorStatus(alvo),
		Detalhes:       e.Payload,
		Origem:         entities.OrigemWebhook,
		Autor:          "webhook",
	})

	u.logger.Info().
		Str("evento_id", e.ID).
		Str("boleto_id", b.ID).
		Str("de", string(anterior)).
		Str("para", string(alvo)).
		Msg("transicao de status aplicada")
	return u.eventos.MarkProcessed(ctx, e.ID, "")
}

// aplicarAlteracao amends value and/or due date in place; the status does not
// change. An event carrying no actual change writes no history row.
func (u *WebhookUseCase) aplicarAlteracao(ctx context.Context, e entities.WebhookEvent, b entities.Boleto) error {
	if b.Status.Terminal() {
		return u.apontarTerminal(ctx, e, b, b.Status)
	}
	if !entities.PodeTransicionar(b.Status, b.Status) {
		return u.eventos.MarkProcessed(ctx, e.ID, entities.ErrTransicaoInvalida.Error())
	}

	var p notificacaoPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return u.eventos.MarkProcessed(ctx, e.ID, ErrNotificacaoInvalida.Error())
	}

	valorAnterior := b.ValorNominal
	mudou := false
	if p.ValorNominal != nil && *p.ValorNominal != b.ValorNominal {
		b.ValorNominal = *p.ValorNominal
		mudou = true
	}
	if venc := parseWebhookDate(p.DataVencimento); venc != nil && !venc.Equal(b.DataVencimento) {
		b.DataVencimento = *venc
		mudou = true
	}
	if !mudou {
		return u.eventos.MarkProcessed(ctx, e.ID, "")
	}

	b.UpdatedAt = time.Now().UTC()
	if _, err := u.boletos.Update(ctx, b); err != nil {
		return err
	}

	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: b.Status,
		StatusNovo:     b.Status,
		TipoMovimento:  entities.MovimentoAlteracao,
		Detalhes:       e.Payload,
		ValorAnterior:  &valorAnterior,
		ValorNovo:      &b.ValorNominal,
		Origem:         entities.OrigemWebhook,
		Autor:          "webhook",
	})

	u.logger.Info().Str("evento_id", e.ID).Str("boleto_id", b.ID).Msg("alteracao aplicada")
	return u.eventos.MarkProcessed(ctx, e.ID, "")
}

// apontarTerminal records the ignored attempt against a terminal boleto.
// The event still counts as processed; the audit row is the trace.
func (u *WebhookUseCase) apontarTerminal(ctx context.Context, e entities.WebhookEvent, b entities.Boleto, tentado entities.BoletoStatus) error {
	u.logger.Warn().
		Str("evento_id", e.ID).
		Str("boleto_id", b.ID).
		Str("status", string(b.Status)).
		Str("tentado", string(tentado)).
		Msg("notificacao ignorada: boleto em status terminal")
	u.apontarHistorico(ctx, entities.HistoricoBoleto{
		BoletoID:       b.ID,
		StatusAnterior: b.Status,
		StatusNovo:     b.Status,
		TipoMovimento:  entities.MovimentoReprocessa,
		Detalhes:       e.Payload,
		Origem:         entities.OrigemWebhook,
		Autor:          "webhook",
	})
	return u.eventos.MarkProcessed(ctx, e.ID, entities.ErrStatusTerminal.Error())
}

func (u *WebhookUseCase) apontarHistorico(ctx context.Context, h entities.HistoricoBoleto) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now().UTC()
	if _, err := u.historico.Append(ctx, h); err != nil {
		u.logger.Error().Err(err).Str("boleto_id", h.BoletoID).Msg("falha ao gravar historico")
	}
}

func parseWebhookDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(webhookDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
