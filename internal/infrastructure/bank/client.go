package bank

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second

	// refreshMargin triggers a proactive token refresh when the cached
	// bearer is within this window of expiry.
	refreshMargin = 5 * time.Minute
)

const dateLayout = "2006-01-02"

// Client implements interfaces.IBankGateway against the bank's cobrança REST
// API. Tokens are cached per billing configuration; refreshes go through a
// singleflight group so concurrent requests share one token call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokenURL   string
	logger     zerolog.Logger
	limiter    *rate.Limiter

	mu     sync.Mutex
	tokens map[string]cachedToken
	flight singleflight.Group
}

type cachedToken struct {
	accessToken string
	expiresAt   time.Time
}

var _ interfaces.IBankGateway = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLimiter sets the pacing used between batch-registration calls.
// The default honors the bank's 1 request/second batch guidance.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

func NewClient(baseURL, tokenURL string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 50,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		tokenURL: tokenURL,
		logger:   logger.With().Str("component", "bank_gateway").Logger(),
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		tokens:   make(map[string]cachedToken),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Registrar(ctx context.Context, cfg *entities.BillingConfiguration, req interfaces.RegistroBoleto) (interfaces.RegistroResultado, error) {
	payload := toRegistroPayload(cfg, req)

	body, err := c.doRequest(ctx, cfg, http.MethodPost, "/cobranca/boletos", payload)
	if err != nil {
		return interfaces.RegistroResultado{}, err
	}

	var resp registroResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return interfaces.RegistroResultado{}, fmt.Errorf("resposta de registro invalida: %w", err)
	}

	c.logger.Info().
		Str("seu_numero", req.SeuNumero).
		Str("nosso_numero", resp.NossoNumero).
		Msg("boleto registrado no banco")

	return interfaces.RegistroResultado{
		NossoNumero:    resp.NossoNumero,
		CodigoBarras:   resp.CodigoBarras,
		LinhaDigitavel: resp.LinhaDigitavel,
		Situacao:       resp.Situacao,
		Raw:            body,
	}, nil
}

func (c *Client) Consultar(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string) (interfaces.ConsultaResultado, error) {
	body, err := c.doRequest(ctx, cfg, http.MethodPost, "/cobranca/boletos/consulta", consultaRequest{NossoNumero: nossoNumero})
	if err != nil {
		return interfaces.ConsultaResultado{}, err
	}

	var resp consultaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return interfaces.ConsultaResultado{}, fmt.Errorf("resposta de consulta invalida: %w", err)
	}

	out := interfaces.ConsultaResultado{
		NossoNumero:  resp.NossoNumero,
		Situacao:     resp.Situacao,
		ValorNominal: resp.ValorNominal,
		Raw:          body,
	}
	if resp.ValorPago > 0 {
		v := resp.ValorPago
		out.ValorPago = &v
	}
	if resp.DataPagamento != "" {
		if dt, err := time.Parse(dateLayout, resp.DataPagamento); err == nil {
			out.DataPagamento = &dt
		}
	}
	return out, nil
}

// ListarLiquidados pages through the settled-in-period listing, carrying the
// last record's nosso número as the cursor while the bank signals more pages.
func (c *Client) ListarLiquidados(ctx context.Context, cfg *entities.BillingConfiguration, de, ate time.Time) ([]interfaces.LiquidadoItem, error) {
	var (
		items  []interfaces.LiquidadoItem
		cursor string
	)
	for {
		req := liquidadosRequest{
			DataInicio:        de.Format(dateLayout),
			DataFim:           ate.Format(dateLayout),
			UltimoNossoNumero: cursor,
		}
		body, err := c.doRequest(ctx, cfg, http.MethodPost, "/cobranca/boletos/liquidados", req)
		if err != nil {
			return nil, err
		}

		var page liquidadosResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("resposta de liquidados invalida: %w", err)
		}

		for _, it := range page.Items {
			item := interfaces.LiquidadoItem{
				NossoNumero: it.NossoNumero,
				SeuNumero:   it.SeuNumero,
				ValorPago:   it.ValorPago,
			}
			if dt, err := time.Parse(dateLayout, it.DataPagamento); err == nil {
				item.DataPagamento = dt
			}
			if dt, err := time.Parse(dateLayout, it.DataCredito); err == nil {
				item.DataCredito = dt
			}
			items = append(items, item)
			cursor = it.NossoNumero
		}

		if !page.TemMaisRegistros || len(page.Items) == 0 {
			return items, nil
		}
	}
}

func (c *Client) Baixar(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string, motivo entities.MotivoBaixa) error {
	_, err := c.doRequest(ctx, cfg, http.MethodPost, "/cobranca/boletos/"+url.PathEscape(nossoNumero)+"/baixa",
		baixaRequest{NossoNumero: nossoNumero, Motivo: int(motivo)})
	return err
}

func (c *Client) Protestar(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string, funcao entities.CodigoFuncaoProtesto) error {
	_, err := c.doRequest(ctx, cfg, http.MethodPost, "/cobranca/boletos/"+url.PathEscape(nossoNumero)+"/protesto",
		protestoRequest{NossoNumero: nossoNumero, CodigoFuncao: int(funcao)})
	return err
}

func (c *Client) Alterar(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string, alt interfaces.AlteracaoBoleto) error {
	req := alteracaoRequest{NossoNumero: nossoNumero, ValorNominal: alt.ValorNominal}
	if alt.DataVencimento != nil {
		req.DataVencimento = alt.DataVencimento.Format(dateLayout)
	}
	_, err := c.doRequest(ctx, cfg, http.MethodPut, "/cobranca/boletos/"+url.PathEscape(nossoNumero), req)
	return err
}

func (c *Client) ConfigurarRateio(ctx context.Context, cfg *entities.BillingConfiguration, nossoNumero string, rateio []entities.RateioCredito) error {
	req := rateioConfigRequest{NossoNumero: nossoNumero}
	for _, r := range rateio {
		req.Rateio = append(req.Rateio, rateioPayload{Documento: r.Documento, Percentual: r.Percentual, Valor: r.Valor})
	}
	_, err := c.doRequest(ctx, cfg, http.MethodPost, "/cobranca/boletos/"+url.PathEscape(nossoNumero)+"/rateio", req)
	return err
}

// RegistrarLote registers each payload sequentially, pacing calls through the
// limiter to respect the bank's rate limit. A failed item never aborts the
// batch; each entry carries its own outcome.
func (c *Client) RegistrarLote(ctx context.Context, cfg *entities.BillingConfiguration, reqs []interfaces.RegistroBoleto) []interfaces.ResultadoLote {
	results := make([]interfaces.ResultadoLote, 0, len(reqs))
	for i, req := range reqs {
		if i > 0 {
			if err := c.limiter.Wait(ctx); err != nil {
				results = append(results, interfaces.ResultadoLote{SeuNumero: req.SeuNumero, Err: err})
				continue
			}
		}
		res, err := c.Registrar(ctx, cfg, req)
		results = append(results, interfaces.ResultadoLote{SeuNumero: req.SeuNumero, Resultado: res, Err: err})
	}
	return results
}

// doRequest performs one authenticated call. On 401 it forces a token
// refresh and replays the request exactly once; business rejections
// (4xx/5xx with the bank's error envelope) become *interfaces.BankError.
func (c *Client) doRequest(ctx context.Context, cfg *entities.BillingConfiguration, method, path string, payload any) ([]byte, error) {
	body, status, err := c.attempt(ctx, cfg, method, path, payload, false)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		c.logger.Warn().Str("path", path).Msg("401 do banco, renovando token e repetindo a chamada")
		body, status, err = c.attempt(ctx, cfg, method, path, payload, true)
		if err != nil {
			return nil, err
		}
	}

	if status >= 400 {
		codigo, mensagem := parseErro(body)
		if traduzida, ok := mensagensConhecidas[codigo]; ok {
			mensagem = traduzida
		}
		if mensagem == "" {
			mensagem = fmt.Sprintf("erro %d do banco", status)
		}
		c.logger.Error().
			Int("status", status).
			Str("path", path).
			Str("codigo", codigo).
			Msg("banco recusou a operacao")
		return nil, &interfaces.BankError{Codigo: codigo, Mensagem: mensagem, HTTPStatus: status}
	}

	return body, nil
}

func (c *Client) attempt(ctx context.Context, cfg *entities.BillingConfiguration, method, path string, payload any, forceRefresh bool) ([]byte, int, error) {
	token, err := c.token(ctx, cfg, forceRefresh)
	if err != nil {
		return nil, 0, err
	}

	var reqBody io.Reader
	if payload != nil {
		jsonBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("falha ao serializar requisicao: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao montar requisicao: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Int64("duration_ms", duration).
			Msg("falha de transporte com o banco")
		return nil, 0, fmt.Errorf("chamada ao banco falhou (%s %s): %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao ler resposta do banco: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("path", path).
		Int64("duration_ms", duration).
		Msg("chamada ao banco concluida")

	return body, resp.StatusCode, nil
}

// token returns a valid bearer for cfg, refreshing when the cached value is
// within refreshMargin of expiry. Refreshes are deduplicated per
// configuration; a concurrent double-refresh would be wasteful but not
// unsafe, last writer wins.
func (c *Client) token(ctx context.Context, cfg *entities.BillingConfiguration, forceRefresh bool) (string, error) {
	if !forceRefresh {
		c.mu.Lock()
		cached, ok := c.tokens[cfg.ID]
		c.mu.Unlock()
		if ok && time.Until(cached.expiresAt) > refreshMargin {
			return cached.accessToken, nil
		}
	}

	v, err, _ := c.flight.Do(cfg.ID, func() (any, error) {
		return c.fetchToken(ctx, cfg)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) fetchToken(ctx context.Context, cfg *entities.BillingConfiguration) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("falha ao montar requisicao de token: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(cfg.ClientID + ":" + cfg.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("falha ao obter token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("falha ao ler resposta de token: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token recusado pelo banco: status=%d body=%s", resp.StatusCode, string(body))
	}

	var tk tokenResponse
	if err := json.Unmarshal(body, &tk); err != nil {
		return "", fmt.Errorf("resposta de token invalida: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(tk.ExpiresIn) * time.Second)
	c.mu.Lock()
	c.tokens[cfg.ID] = cachedToken{accessToken: tk.AccessToken, expiresAt: expiresAt}
	c.mu.Unlock()

	cfg.AccessToken = tk.AccessToken
	cfg.TokenExpiraEm = expiresAt

	c.logger.Info().Str("config_id", cfg.ID).Time("expira_em", expiresAt).Msg("token renovado")
	return tk.AccessToken, nil
}

func toRegistroPayload(cfg *entities.BillingConfiguration, req interfaces.RegistroBoleto) registroPayload {
	aceite := "N"
	if req.Aceite {
		aceite = "S"
	}

	p := registroPayload{
		Beneficiario: beneficiarioPayload{
			Documento:        cfg.BeneficiarioDocumento,
			Nome:             cfg.BeneficiarioNome,
			Agencia:          cfg.Agencia,
			Conta:            cfg.Conta,
			Carteira:         cfg.Carteira,
			CodigoNegociacao: cfg.CodigoNegociacao,
		},
		Pagador: pagadorPayload{
			Documento:   req.Pagador.Documento,
			Nome:        req.Pagador.Nome,
			TipoPessoa:  string(req.Pagador.TipoPessoa),
			Logradouro:  req.Pagador.Endereco.Logradouro,
			Numero:      req.Pagador.Endereco.Numero,
			Complemento: req.Pagador.Endereco.Complemento,
			Bairro:      req.Pagador.Endereco.Bairro,
			Cidade:      req.Pagador.Endereco.Cidade,
			UF:          req.Pagador.Endereco.UF,
			CEP:         req.Pagador.Endereco.CEP,
			Telefone:    req.Pagador.Telefone,
			Email:       req.Pagador.Email,
		},
		SeuNumero:               req.SeuNumero,
		EspecieDocumento:        string(req.Especie),
		Aceite:                  aceite,
		DataVencimento:          req.DataVencimento.Format(dateLayout),
		ValorNominal:            req.ValorNominal,
		ValorAbatimento:         req.ValorAbatimento,
		Instrucoes:              req.Instrucoes,
		JurosPercentualDia:      req.JurosPercentualDia,
		MultaPercentual:         req.MultaPercentual,
		ProtestoAutomatico:      req.ProtestoAutomatico,
		ProtestoDias:            req.ProtestoDias,
		BaixaAutomatica:         req.BaixaAutomatica,
		BaixaDias:               req.BaixaDias,
		PermitePagamentoParcial: req.PermitePagamentoParcial,
	}
	for _, d := range req.Descontos {
		p.Descontos = append(p.Descontos, descontoPayload{DataLimite: d.DataLimite.Format(dateLayout), Percentual: d.Percentual})
	}
	for _, r := range req.Rateio {
		p.Rateio = append(p.Rateio, rateioPayload{Documento: r.Documento, Percentual: r.Percentual, Valor: r.Valor})
	}
	return p
}
