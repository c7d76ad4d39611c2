package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/usecase"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const processTimeout = 30 * time.Second

// WebhookHandler receives the bank's push notifications.
//
// Contract with the bank: the answer is HTTP 200 in every case, including a
// failed synchronous save; anything else triggers the bank's redelivery
// storm. Failures travel in the JSON body and stay inspectable through the
// stored WebhookEvent rows.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
	logger  zerolog.Logger

	// processar is invoked after the ack; replaced in tests.
	processar func(eventoID string)
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, logger zerolog.Logger) *WebhookHandler {
	h := &WebhookHandler{
		usecase: uc,
		logger:  logger.With().Str("component", "webhook_handler").Logger(),
	}
	h.processar = func(eventoID string) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
			defer cancel()
			if err := h.usecase.ProcessarNotificacao(ctx, eventoID); err != nil {
				h.logger.Error().Err(err).Str("evento_id", eventoID).Msg("processamento assincrono falhou")
			}
		}()
	}
	return h
}

func (h *WebhookHandler) Receber(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Error().Err(err).Msg("falha ao ler corpo da notificacao")
		c.JSON(http.StatusOK, response.WebhookAckResponse{Recebido: true, Erro: "falha ao ler corpo da notificacao"})
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.GetHeader(k)
	}

	e, err := h.usecase.ReceberNotificacao(c.Request.Context(), raw, c.ClientIP(), headers)
	if errors.Is(err, usecase.ErrNotificacaoInvalida) {
		// Stored (when possible) but never processable; still 200.
		c.JSON(http.StatusOK, response.WebhookAckResponse{Recebido: true, EventoID: e.ID, Erro: err.Error()})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("falha ao persistir notificacao")
		c.JSON(http.StatusOK, response.WebhookAckResponse{Recebido: true, Erro: "falha ao persistir notificacao"})
		return
	}

	h.processar(e.ID)
	c.JSON(http.StatusOK, response.WebhookAckResponse{Recebido: true, EventoID: e.ID})
}

func (h *WebhookHandler) Reprocessar(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Reprocessar(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrEventoNaoEncontrado) {
			appErr := pkg.NewDomainErrorSimple("EVENTO_NOT_FOUND", "evento de webhook nao encontrado", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.logger.Error().Err(err).Str("evento_id", id).Msg("falha no reprocessamento")
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "internal error", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.WebhookAckResponse{Recebido: true, EventoID: id})
}
