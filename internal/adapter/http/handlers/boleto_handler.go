package handlers

import (
	"context"
	"errors"
	"net/http"

	"cobranca_service/internal/adapter/http/dto/request"
	"cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
	"cobranca_service/internal/usecase/interfaces"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BoletoHandler handles the boleto lifecycle endpoints.

type BoletoHandler struct {
	usecase usecase.IBoletoUseCase
	logger  zerolog.Logger
}

func NewBoletoHandler(uc usecase.IBoletoUseCase, logger zerolog.Logger) *BoletoHandler {
	return &BoletoHandler{usecase: uc, logger: logger.With().Str("component", "boleto_handler").Logger()}
}

// EmitirBoleto registers a new boleto with the bank. Business rejections come
// back as 422 with the typed result; only infrastructure failures are 5xx.
func (h *BoletoHandler) EmitirBoleto(c *gin.Context) {
	var req request.EmitirBoletoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "invalid request body", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	in, err := req.ToInput()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.EmitirBoleto(autoria(c), in)
	if err != nil {
		h.logger.Error().Err(err).Str("seu_numero", req.SeuNumero).Msg("falha na emissao")
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !res.Sucesso {
		c.JSON(http.StatusUnprocessableEntity, response.FromResultadoEmissao(res))
		return
	}
	c.JSON(http.StatusCreated, response.FromResultadoEmissao(res))
}

// EmitirLote registers a batch. The response always has one entry per input
// item, successes and failures side by side.
func (h *BoletoHandler) EmitirLote(c *gin.Context) {
	var req request.EmitirLoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "invalid request body", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ins := make([]usecase.EmissaoInput, 0, len(req.Boletos))
	for _, b := range req.Boletos {
		in, err := b.ToInput()
		if err != nil {
			appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		ins = append(ins, in)
	}

	results, err := h.usecase.EmitirLote(autoria(c), ins)
	if err != nil {
		h.logger.Error().Err(err).Int("itens", len(ins)).Msg("falha na emissao em lote")
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResultadosEmissao(results))
}

func (h *BoletoHandler) GetBoleto(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoleto(b))
}

func (h *BoletoHandler) ListarHistorico(c *gin.Context) {
	hs, err := h.usecase.ListarHistorico(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistoricos(hs))
}

// Consultar syncs the boleto with the bank's authoritative situation.
func (h *BoletoHandler) Consultar(c *gin.Context) {
	b, err := h.usecase.ConsultarEAtualizar(autoria(c), c.Param("id"), entities.OrigemAPI)
	if err != nil {
		h.logger.Error().Err(err).Str("boleto_id", c.Param("id")).Msg("falha na consulta")
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoleto(b))
}

func (h *BoletoHandler) Baixar(c *gin.Context) {
	var req request.BaixarBoletoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "invalid request body", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	b, err := h.usecase.BaixarBoleto(autoria(c), c.Param("id"), entities.MotivoBaixa(req.Motivo), entities.OrigemAPI)
	if err != nil {
		h.logger.Error().Err(err).Str("boleto_id", c.Param("id")).Msg("falha na baixa")
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoleto(b))
}

// Alterar amends value, due date or credit split of a registered boleto.
func (h *BoletoHandler) Alterar(c *gin.Context) {
	var req request.AlterarBoletoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "invalid request body", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	alt, err := req.ToInput()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	b, err := h.usecase.AlterarBoleto(autoria(c), c.Param("id"), alt, entities.OrigemAPI)
	if err != nil {
		h.logger.Error().Err(err).Str("boleto_id", c.Param("id")).Msg("falha na alteracao")
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoleto(b))
}

func (h *BoletoHandler) Protestar(c *gin.Context) {
	var req request.ProtestarBoletoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "invalid request body", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	b, err := h.usecase.ProtestarBoleto(autoria(c), c.Param("id"), entities.CodigoFuncaoProtesto(req.CodigoFuncao), entities.OrigemAPI)
	if err != nil {
		h.logger.Error().Err(err).Str("boleto_id", c.Param("id")).Msg("falha no protesto")
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoleto(b))
}

// autoria stamps the caller's network identity on the request context so
// history rows record who triggered the movement.
func autoria(c *gin.Context) context.Context {
	return usecase.ComAutoria(c.Request.Context(), c.ClientIP(), c.Request.UserAgent())
}

func mapBoletoError(err error) *pkg.AppError {
	var bankErr *interfaces.BankError
	switch {
	case errors.Is(err, usecase.ErrBoletoIDInvalido),
		errors.Is(err, usecase.ErrAlteracaoVazia),
		errors.Is(err, usecase.ErrLoteConfigMista),
		errors.Is(err, entities.ErrMotivoBaixaInvalido),
		errors.Is(err, entities.ErrCodigoFuncaoInvalido),
		errors.Is(err, entities.ErrValorNominalInvalido),
		errors.Is(err, entities.ErrVencimentoPassado),
		errors.Is(err, entities.ErrRateioNaoFechaValor):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBoletoNaoEncontrado):
		return pkg.NewDomainErrorSimple("BOLETO_NOT_FOUND", "boleto nao encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPagadorNaoEncontrado):
		return pkg.NewDomainErrorSimple("PAGADOR_NOT_FOUND", "pagador nao encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBoletoSemRegistro),
		errors.Is(err, entities.ErrStatusTerminal),
		errors.Is(err, entities.ErrTransicaoInvalida):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrProtestoPrematuro):
		return pkg.NewDomainError("PROTESTO_PREMATURO", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.As(err, &bankErr):
		status := bankErr.HTTPStatus
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		return pkg.NewDomainError("BANK_REJECTION", bankErr.Mensagem, err, status)
	case errors.Is(err, usecase.ErrConfigNaoEncontrada):
		return pkg.NewDomainErrorSimple("CONFIG_NOT_FOUND", "configuracao de cobranca nao encontrada", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "internal error", err, http.StatusInternalServerError)
	}
}
