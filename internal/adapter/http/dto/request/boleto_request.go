package request

import (
	"errors"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
)

var (
	ErrDataVencimentoInvalida = errors.New("invalid data_vencimento, expected YYYY-MM-DD")
	ErrDataLimiteInvalida     = errors.New("invalid desconto data_limite, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

type DescontoRequest struct {
	DataLimite string  `json:"data_limite" binding:"required,ymd"`
	Percentual float64 `json:"percentual" binding:"required,gt=0,lte=100"`
}

type RateioRequest struct {
	Documento  string  `json:"documento" binding:"required"`
	Percentual float64 `json:"percentual"`
	Valor      float64 `json:"valor" binding:"required,gt=0"`
}

// EmitirBoletoRequest is the emission payload. Beneficiary data is resolved
// server-side from the billing configuration; the caller only points at a
// registered payer.
type EmitirBoletoRequest struct {
	ConfigID  string `json:"config_id"`
	PagadorID string `json:"pagador_id" binding:"required"`
	SeuNumero string `json:"seu_numero" binding:"required"`

	ValorNominal    float64 `json:"valor_nominal" binding:"required,gt=0"`
	ValorAbatimento float64 `json:"valor_abatimento" binding:"gte=0"`
	DataVencimento  string  `json:"data_vencimento" binding:"required,ymd"`

	EspecieDocumento string   `json:"especie_documento" binding:"required"`
	Aceite           bool     `json:"aceite"`
	Instrucoes       []string `json:"instrucoes" binding:"max=9"`

	JurosPercentualDia float64           `json:"juros_percentual_dia" binding:"gte=0"`
	MultaPercentual    float64           `json:"multa_percentual" binding:"gte=0"`
	Descontos          []DescontoRequest `json:"descontos" binding:"max=3,dive"`

	ProtestoAutomatico      bool            `json:"protesto_automatico"`
	ProtestoDias            int             `json:"protesto_dias" binding:"gte=0"`
	BaixaAutomatica         bool            `json:"baixa_automatica"`
	BaixaDias               int             `json:"baixa_dias" binding:"gte=0"`
	PermitePagamentoParcial bool            `json:"permite_pagamento_parcial"`
	Rateio                  []RateioRequest `json:"rateio" binding:"dive"`
}

// ToInput converts the wire payload into the use-case input. Date parsing
// happens here; domain rules stay in the entities package.
func (r EmitirBoletoRequest) ToInput() (usecase.EmissaoInput, error) {
	venc, err := time.Parse(dateLayout, r.DataVencimento)
	if err != nil {
		return usecase.EmissaoInput{}, ErrDataVencimentoInvalida
	}
	// Due dates compare against "now"; anchor at end of day so a boleto due
	// today still counts as future.
	venc = venc.Add(24*time.Hour - time.Second)

	in := usecase.EmissaoInput{
		ConfigID:                r.ConfigID,
		PagadorID:               r.PagadorID,
		SeuNumero:               r.SeuNumero,
		ValorNominal:            r.ValorNominal,
		ValorAbatimento:         r.ValorAbatimento,
		DataVencimento:          venc,
		Especie:                 entities.EspecieDocumento(r.EspecieDocumento),
		Aceite:                  r.Aceite,
		Instrucoes:              r.Instrucoes,
		JurosPercentualDia:      r.JurosPercentualDia,
		MultaPercentual:         r.MultaPercentual,
		ProtestoAutomatico:      r.ProtestoAutomatico,
		ProtestoDias:            r.ProtestoDias,
		BaixaAutomatica:         r.BaixaAutomatica,
		BaixaDias:               r.BaixaDias,
		PermitePagamentoParcial: r.PermitePagamentoParcial,
	}

	for _, d := range r.Descontos {
		limite, err := time.Parse(dateLayout, d.DataLimite)
		if err != nil {
			return usecase.EmissaoInput{}, ErrDataLimiteInvalida
		}
		in.Descontos = append(in.Descontos, entities.Desconto{DataLimite: limite, Percentual: d.Percentual})
	}
	for _, rr := range r.Rateio {
		in.Rateio = append(in.Rateio, entities.RateioCredito{Documento: rr.Documento, Percentual: rr.Percentual, Valor: rr.Valor})
	}
	return in, nil
}

type EmitirLoteRequest struct {
	Boletos []EmitirBoletoRequest `json:"boletos" binding:"required,min=1,dive"`
}

// AlterarBoletoRequest amends a registered boleto. At least one field must
// be present; the use case rejects an empty amendment.
type AlterarBoletoRequest struct {
	ValorNominal   *float64        `json:"valor_nominal" binding:"omitempty,gt=0"`
	DataVencimento string          `json:"data_vencimento" binding:"omitempty,ymd"`
	Rateio         []RateioRequest `json:"rateio" binding:"dive"`
}

func (r AlterarBoletoRequest) ToInput() (usecase.AlteracaoInput, error) {
	alt := usecase.AlteracaoInput{ValorNominal: r.ValorNominal}
	if r.DataVencimento != "" {
		venc, err := time.Parse(dateLayout, r.DataVencimento)
		if err != nil {
			return usecase.AlteracaoInput{}, ErrDataVencimentoInvalida
		}
		venc = venc.Add(24*time.Hour - time.Second)
		alt.DataVencimento = &venc
	}
	for _, rr := range r.Rateio {
		alt.Rateio = append(alt.Rateio, entities.RateioCredito{Documento: rr.Documento, Percentual: rr.Percentual, Valor: rr.Valor})
	}
	return alt, nil
}

type BaixarBoletoRequest struct {
	Motivo int `json:"motivo" binding:"required,min=1,max=7"`
}

type ProtestarBoletoRequest struct {
	CodigoFuncao int `json:"codigo_funcao" binding:"required,oneof=1 3"`
}
