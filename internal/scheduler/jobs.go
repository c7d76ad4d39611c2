package scheduler

import (
	"context"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"

	"github.com/rs/zerolog"
)

// liquidadosJanela is the trailing window swept by the settled-in-period
// listing. Wide enough to absorb a few missed runs.
const liquidadosJanela = 7 * 24 * time.Hour

// SincronizarBoletos builds the overnight reconciliation task. The cheap
// settled-in-period listing runs first and batch-settles whatever the bank
// already reports paid; the per-boleto consult sweep then covers the rest
// (non-settlement transitions, partials). One failed boleto never stops the
// sweep.
func SincronizarBoletos(uc usecase.IBoletoUseCase, logger zerolog.Logger, intervalo time.Duration) Task {
	log := logger.With().Str("job", "sincronizar_boletos").Logger()
	return Task{
		Nome:      "sincronizar_boletos",
		Intervalo: intervalo,
		Executar: func(ctx context.Context) error {
			agora := time.Now()
			liquidados, err := uc.SincronizarLiquidados(ctx, agora.Add(-liquidadosJanela), agora)
			if err != nil {
				log.Warn().Err(err).Msg("listagem de liquidados falhou, seguindo com a consulta individual")
			} else if liquidados > 0 {
				log.Info().Int("liquidados", liquidados).Msg("boletos liquidados pela listagem do periodo")
			}

			for _, status := range []entities.BoletoStatus{entities.StatusAberto, entities.StatusLiquidadoParcial} {
				boletos, err := uc.ListarPorStatus(ctx, status)
				if err != nil {
					return err
				}
				for _, b := range boletos {
					if _, err := uc.ConsultarEAtualizar(ctx, b.ID, entities.OrigemJob); err != nil {
						log.Warn().Err(err).Str("boleto_id", b.ID).Msg("sincronizacao do boleto falhou")
					}
				}
			}
			return nil
		},
	}
}

// ProtestarVencidos requests protest for overdue boletos flagged for
// automatic protest, once the configured grace period has elapsed.
func ProtestarVencidos(uc usecase.IBoletoUseCase, logger zerolog.Logger, intervalo time.Duration) Task {
	log := logger.With().Str("job", "protestar_vencidos").Logger()
	return Task{
		Nome:      "protestar_vencidos",
		Intervalo: intervalo,
		Executar: func(ctx context.Context) error {
			boletos, err := uc.ListarPorStatus(ctx, entities.StatusAberto)
			if err != nil {
				return err
			}
			agora := time.Now()
			for _, b := range boletos {
				if !b.ProtestoAutomatico || b.ProtestoSolicitado {
					continue
				}
				carencia := b.ProtestoDias
				if carencia < entities.ProtestoMinDias {
					carencia = entities.ProtestoMinDias
				}
				if agora.Sub(b.DataVencimento) < time.Duration(carencia)*24*time.Hour {
					continue
				}
				if _, err := uc.ProtestarBoleto(ctx, b.ID, entities.FuncaoProtestar, entities.OrigemJob); err != nil {
					log.Warn().Err(err).Str("boleto_id", b.ID).Msg("protesto automatico falhou")
					continue
				}
				log.Info().Str("boleto_id", b.ID).Msg("protesto automatico solicitado")
			}
			return nil
		},
	}
}

// DrenarWebhooksPendentes retries events whose async processing never
// finished (crash between ack and apply).
func DrenarWebhooksPendentes(uc usecase.IWebhookUseCase, intervalo time.Duration) Task {
	return Task{
		Nome:      "drenar_webhooks_pendentes",
		Intervalo: intervalo,
		Executar:  uc.ProcessarPendentes,
	}
}
