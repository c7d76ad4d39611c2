package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
	mock_interfaces "cobranca_service/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type boletoMocks struct {
	boletos   *mock_interfaces.MockIBoletoRepository
	historico *mock_interfaces.MockIHistoricoRepository
	pagadores *mock_interfaces.MockIPagadorRepository
	configs   *mock_interfaces.MockIBillingConfigRepository
	gateway   *mock_interfaces.MockIBankGateway
}

func newBoletoUseCaseForTest(t *testing.T) (*BoletoUseCase, boletoMocks) {
	ctrl := gomock.NewController(t)
	m := boletoMocks{
		boletos:   mock_interfaces.NewMockIBoletoRepository(ctrl),
		historico: mock_interfaces.NewMockIHistoricoRepository(ctrl),
		pagadores: mock_interfaces.NewMockIPagadorRepository(ctrl),
		configs:   mock_interfaces.NewMockIBillingConfigRepository(ctrl),
		gateway:   mock_interfaces.NewMockIBankGateway(ctrl),
	}
	uc := NewBoletoUseCase(m.boletos, m.historico, m.pagadores, m.configs, m.gateway, zerolog.Nop())
	return uc, m
}

func pagadorValido() entities.Pagador {
	return entities.Pagador{
		ID:         "pag-1",
		Documento:  "52998224725",
		Nome:       "Jose da Silva",
		TipoPessoa: entities.PessoaFisica,
		Endereco: entities.Endereco{
			Logradouro: "Rua das Flores",
			Numero:     "100",
			Bairro:     "Centro",
			Cidade:     "Sao Paulo",
			UF:         "SP",
			CEP:        "01000-000",
		},
	}
}

func configAtiva() entities.BillingConfiguration {
	return entities.BillingConfiguration{
		ID:                    "cfg-1",
		BeneficiarioDocumento: "06990590000123",
		BeneficiarioNome:      "Empresa XPTO",
		CodigoBanco:           "001",
		Agencia:               "1234",
		Conta:                 "56789-0",
		Carteira:              "17",
		ClientID:              "client",
		ClientSecret:          "secret",
		Ativo:                 true,
	}
}

func emissaoValida() EmissaoInput {
	return EmissaoInput{
		PagadorID:      "pag-1",
		SeuNumero:      "FAT-0001",
		ValorNominal:   150.0,
		DataVencimento: time.Now().Add(30 * 24 * time.Hour),
		Especie:        entities.EspecieDM,
	}
}

func TestBoletoUseCase_EmitirBoleto_Validations(t *testing.T) {
	t.Run("config not found", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.configs.EXPECT().GetAtiva(gomock.Any()).Return(entities.BillingConfiguration{}, nil)

		_, err := uc.EmitirBoleto(context.Background(), emissaoValida())
		if !errors.Is(err, ErrConfigNaoEncontrada) {
			t.Fatalf("expected ErrConfigNaoEncontrada, got %v", err)
		}
	})

	t.Run("pagador not found", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
		m.pagadores.EXPECT().GetByID(gomock.Any(), "pag-1").Return(entities.Pagador{}, nil)

		_, err := uc.EmitirBoleto(context.Background(), emissaoValida())
		if !errors.Is(err, ErrPagadorNaoEncontrado) {
			t.Fatalf("expected ErrPagadorNaoEncontrado, got %v", err)
		}
	})

	t.Run("domain rejection is a typed failure, not an error", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
		m.pagadores.EXPECT().GetByID(gomock.Any(), "pag-1").Return(pagadorValido(), nil)

		in := emissaoValida()
		in.ValorNominal = 0

		res, err := uc.EmitirBoleto(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Sucesso {
			t.Fatal("expected failure result")
		}
		if res.Motivo != entities.ErrValorNominalInvalido.Error() {
			t.Fatalf("unexpected motivo: %q", res.Motivo)
		}
	})

	t.Run("past due date rejected before any bank call", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
		m.pagadores.EXPECT().GetByID(gomock.Any(), "pag-1").Return(pagadorValido(), nil)

		in := emissaoValida()
		in.DataVencimento = time.Now().Add(-24 * time.Hour)

		res, err := uc.EmitirBoleto(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Sucesso || res.Motivo != entities.ErrVencimentoPassado.Error() {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBoletoUseCase_EmitirBoleto_Success(t *testing.T) {
	uc, m := newBoletoUseCaseForTest(t)

	m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
	m.pagadores.EXPECT().GetByID(gomock.Any(), "pag-1").Return(pagadorValido(), nil)
	m.boletos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
			if b.Status != entities.StatusPendenteRegistro {
				t.Fatalf("expected pending status on create, got %s", b.Status)
			}
			if b.ID == "" {
				t.Fatal("expected generated id")
			}
			return b, nil
		})
	m.gateway.EXPECT().Registrar(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.RegistroResultado{
		NossoNumero:    "12345678901",
		CodigoBarras:   "00193373700000001000500940144816060680935031",
		LinhaDigitavel: "00190500954014481606906809350314337370000000100",
		Situacao:       "01",
		Raw:            []byte(`{"nossoNumero":"12345678901"}`),
	}, nil)
	m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
			if b.Status != entities.StatusAberto {
				t.Fatalf("expected open status after register, got %s", b.Status)
			}
			if !b.Registrado || b.NossoNumero != "12345678901" {
				t.Fatalf("registration data not applied: %+v", b)
			}
			return b, nil
		})
	m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
			if h.TipoMovimento != entities.MovimentoRegistro {
				t.Fatalf("expected REGISTRO history, got %s", h.TipoMovimento)
			}
			if h.StatusAnterior != entities.StatusPendenteRegistro || h.StatusNovo != entities.StatusAberto {
				t.Fatalf("unexpected transition %s -> %s", h.StatusAnterior, h.StatusNovo)
			}
			return h, nil
		})

	res, err := uc.EmitirBoleto(context.Background(), emissaoValida())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Sucesso {
		t.Fatalf("expected success, got motivo=%q", res.Motivo)
	}
	if res.Boleto.LinhaDigitavel == "" {
		t.Fatal("expected linha digitavel on emitted boleto")
	}
}

func TestBoletoUseCase_EmitirBoleto_ComputesLinhaWhenBankOmitsIt(t *testing.T) {
	uc, m := newBoletoUseCaseForTest(t)

	m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
	m.pagadores.EXPECT().GetByID(gomock.Any(), "pag-1").Return(pagadorValido(), nil)
	m.boletos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) { return b, nil })
	m.gateway.EXPECT().Registrar(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.RegistroResultado{
		NossoNumero:  "12345678901",
		CodigoBarras: "00193373700000001000500940144816060680935031",
		Situacao:     "01",
	}, nil)
	m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) { return b, nil })
	m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) { return h, nil })

	res, err := uc.EmitirBoleto(context.Background(), emissaoValida())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0019050095 40144816069 06809350314 3 37370000000100"
	if res.Boleto.LinhaDigitavel != want {
		t.Fatalf("linha digitavel = %q, want %q", res.Boleto.LinhaDigitavel, want)
	}
}

func TestBoletoUseCase_EmitirBoleto_BankRejection(t *testing.T) {
	uc, m := newBoletoUseCaseForTest(t)

	m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
	m.pagadores.EXPECT().GetByID(gomock.Any(), "pag-1").Return(pagadorValido(), nil)
	m.boletos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) { return b, nil })
	m.gateway.EXPECT().Registrar(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		interfaces.RegistroResultado{}, &interfaces.BankError{Codigo: "A24", Mensagem: "carteira invalida", HTTPStatus: 422})

	res, err := uc.EmitirBoleto(context.Background(), emissaoValida())
	if err != nil {
		t.Fatalf("bank rejection must not surface as error, got %v", err)
	}
	if res.Sucesso {
		t.Fatal("expected failure result")
	}
	if res.Motivo != "carteira invalida" {
		t.Fatalf("unexpected motivo: %q", res.Motivo)
	}
	if res.Boleto.Status != entities.StatusPendenteRegistro {
		t.Fatalf("rejected boleto should stay pending, got %s", res.Boleto.Status)
	}
}

func TestBoletoUseCase_EmitirBoleto_PersistsRefreshedToken(t *testing.T) {
	uc, m := newBoletoUseCaseForTest(t)

	expira := time.Now().Add(time.Hour).Truncate(time.Second)

	m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
	m.pagadores.EXPECT().GetByID(gomock.Any(), "pag-1").Return(pagadorValido(), nil)
	m.boletos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) { return b, nil })
	m.gateway.EXPECT().Registrar(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg *entities.BillingConfiguration, _ interfaces.RegistroBoleto) (interfaces.RegistroResultado, error) {
			cfg.AccessToken = "tok-novo"
			cfg.TokenExpiraEm = expira
			return interfaces.RegistroResultado{NossoNumero: "999", Situacao: "01"}, nil
		})
	m.configs.EXPECT().UpdateToken(gomock.Any(), "cfg-1", "tok-novo", expira.Unix()).Return(nil)
	m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) { return b, nil })
	m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) { return h, nil })

	if _, err := uc.EmitirBoleto(context.Background(), emissaoValida()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBoletoUseCase_EmitirLote(t *testing.T) {
	uc, m := newBoletoUseCaseForTest(t)

	valido := emissaoValida()
	invalido := emissaoValida()
	invalido.SeuNumero = "FAT-0002"
	invalido.ValorNominal = -10

	m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
	m.pagadores.EXPECT().GetByID(gomock.Any(), "pag-1").Return(pagadorValido(), nil).Times(2)
	m.boletos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) { return b, nil })
	m.gateway.EXPECT().RegistrarLote(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *entities.BillingConfiguration, reqs []interfaces.RegistroBoleto) []interfaces.ResultadoLote {
			if len(reqs) != 1 {
				t.Fatalf("expected only the valid item in the batch, got %d", len(reqs))
			}
			return []interfaces.ResultadoLote{{
				SeuNumero: reqs[0].SeuNumero,
				Resultado: interfaces.RegistroResultado{NossoNumero: "111", Situacao: "01"},
			}}
		})
	m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) { return b, nil })
	m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) { return h, nil })

	results, err := uc.EmitirLote(context.Background(), []EmissaoInput{valido, invalido})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Sucesso {
		t.Fatalf("first item should succeed: %+v", results[0])
	}
	if results[1].Sucesso || results[1].Motivo != entities.ErrValorNominalInvalido.Error() {
		t.Fatalf("second item should fail validation: %+v", results[1])
	}
}

func TestBoletoUseCase_EmitirLote_ConfiguracaoMista(t *testing.T) {
	a := emissaoValida()
	a.ConfigID = "cfg-1"
	b := emissaoValida()
	b.ConfigID = "cfg-2"

	uc, _ := newBoletoUseCaseForTest(t)
	_, err := uc.EmitirLote(context.Background(), []EmissaoInput{a, b})
	if !errors.Is(err, ErrLoteConfigMista) {
		t.Fatalf("expected ErrLoteConfigMista, got %v", err)
	}
}

func TestBoletoUseCase_AlterarBoleto(t *testing.T) {
	registrado := func() entities.Boleto {
		return entities.Boleto{
			ID:           "bol-1",
			ConfigID:     "cfg-1",
			NossoNumero:  "12345678901",
			Status:       entities.StatusAberto,
			ValorNominal: 150.0,
		}
	}

	t.Run("empty amendment", func(t *testing.T) {
		uc, _ := newBoletoUseCaseForTest(t)
		_, err := uc.AlterarBoleto(context.Background(), "bol-1", AlteracaoInput{}, entities.OrigemAPI)
		if !errors.Is(err, ErrAlteracaoVazia) {
			t.Fatalf("expected ErrAlteracaoVazia, got %v", err)
		}
	})

	t.Run("non-positive value rejected before any bank call", func(t *testing.T) {
		uc, _ := newBoletoUseCaseForTest(t)
		zero := 0.0
		_, err := uc.AlterarBoleto(context.Background(), "bol-1", AlteracaoInput{ValorNominal: &zero}, entities.OrigemAPI)
		if !errors.Is(err, entities.ErrValorNominalInvalido) {
			t.Fatalf("expected ErrValorNominalInvalido, got %v", err)
		}
	})

	t.Run("unregistered boleto", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		b := registrado()
		b.NossoNumero = ""
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(b, nil)

		valor := 200.0
		_, err := uc.AlterarBoleto(context.Background(), "bol-1", AlteracaoInput{ValorNominal: &valor}, entities.OrigemAPI)
		if !errors.Is(err, ErrBoletoSemRegistro) {
			t.Fatalf("expected ErrBoletoSemRegistro, got %v", err)
		}
	})

	t.Run("terminal boleto rejected", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		b := registrado()
		b.Status = entities.StatusLiquidado
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(b, nil)

		valor := 200.0
		_, err := uc.AlterarBoleto(context.Background(), "bol-1", AlteracaoInput{ValorNominal: &valor}, entities.OrigemAPI)
		if !errors.Is(err, entities.ErrStatusTerminal) {
			t.Fatalf("expected ErrStatusTerminal, got %v", err)
		}
	})

	t.Run("split must close against the amended value", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(registrado(), nil)

		valor := 200.0
		_, err := uc.AlterarBoleto(context.Background(), "bol-1", AlteracaoInput{
			ValorNominal: &valor,
			Rateio:       []entities.RateioCredito{{Documento: "52998224725", Valor: 150.0}},
		}, entities.OrigemAPI)
		if !errors.Is(err, entities.ErrRateioNaoFechaValor) {
			t.Fatalf("expected ErrRateioNaoFechaValor, got %v", err)
		}
	})

	t.Run("value and due date amended with history", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		valor := 200.0
		venc := time.Now().Add(60 * 24 * time.Hour)

		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(registrado(), nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().Alterar(gomock.Any(), gomock.Any(), "12345678901", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *entities.BillingConfiguration, _ string, alt interfaces.AlteracaoBoleto) error {
				if alt.ValorNominal == nil || *alt.ValorNominal != valor {
					t.Fatalf("value not forwarded: %+v", alt)
				}
				if alt.DataVencimento == nil || !alt.DataVencimento.Equal(venc) {
					t.Fatalf("due date not forwarded: %+v", alt)
				}
				return nil
			})
		m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
				if b.ValorNominal != valor || !b.DataVencimento.Equal(venc) {
					t.Fatalf("amendment not mirrored locally: %+v", b)
				}
				if b.Status != entities.StatusAberto {
					t.Fatalf("amendment must not change status, got %s", b.Status)
				}
				return b, nil
			})
		m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
				if h.TipoMovimento != entities.MovimentoAlteracao {
					t.Fatalf("expected ALTERACAO history, got %s", h.TipoMovimento)
				}
				if h.ValorAnterior == nil || *h.ValorAnterior != 150.0 || h.ValorNovo == nil || *h.ValorNovo != valor {
					t.Fatalf("value delta not recorded: %+v", h)
				}
				return h, nil
			})

		b, err := uc.AlterarBoleto(context.Background(), "bol-1",
			AlteracaoInput{ValorNominal: &valor, DataVencimento: &venc}, entities.OrigemAPI)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ValorNominal != valor {
			t.Fatalf("unexpected value: %v", b.ValorNominal)
		}
	})

	t.Run("split-only amendment configures the rateio endpoint", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		rateio := []entities.RateioCredito{
			{Documento: "52998224725", Valor: 90.0},
			{Documento: "11222333000181", Valor: 60.0},
		}

		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(registrado(), nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().ConfigurarRateio(gomock.Any(), gomock.Any(), "12345678901", rateio).Return(nil)
		m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
				if len(b.Rateio) != 2 {
					t.Fatalf("split not mirrored: %+v", b.Rateio)
				}
				return b, nil
			})
		m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) { return h, nil })

		if _, err := uc.AlterarBoleto(context.Background(), "bol-1", AlteracaoInput{Rateio: rateio}, entities.OrigemAPI); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bank rejection surfaces without local write", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		valor := 200.0

		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(registrado(), nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().Alterar(gomock.Any(), gomock.Any(), "12345678901", gomock.Any()).Return(
			&interfaces.BankError{Codigo: "A30", Mensagem: "alteracao nao permitida", HTTPStatus: 422})

		_, err := uc.AlterarBoleto(context.Background(), "bol-1", AlteracaoInput{ValorNominal: &valor}, entities.OrigemAPI)
		var bankErr *interfaces.BankError
		if !errors.As(err, &bankErr) {
			t.Fatalf("expected BankError, got %v", err)
		}
	})
}

func TestBoletoUseCase_SincronizarLiquidados(t *testing.T) {
	de := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	ate := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	uc, m := newBoletoUseCaseForTest(t)
	pagoEm := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	m.configs.EXPECT().GetAtiva(gomock.Any()).Return(configAtiva(), nil)
	m.gateway.EXPECT().ListarLiquidados(gomock.Any(), gomock.Any(), de, ate).Return([]interfaces.LiquidadoItem{
		{NossoNumero: "111", ValorPago: 150.0, DataPagamento: pagoEm},
		{NossoNumero: "222", ValorPago: 80.0, DataPagamento: pagoEm},
		{NossoNumero: "333", ValorPago: 50.0, DataPagamento: pagoEm},
	}, nil)

	// 111 is open and gets settled.
	m.boletos.EXPECT().GetByNossoNumero(gomock.Any(), "111").Return(entities.Boleto{
		ID: "bol-1", NossoNumero: "111", Status: entities.StatusAberto, ValorNominal: 150.0,
	}, nil)
	m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
			if b.Status != entities.StatusLiquidado || b.ValorPago == nil || *b.ValorPago != 150.0 {
				t.Fatalf("settlement not applied: %+v", b)
			}
			if b.DataPagamento == nil || !b.DataPagamento.Equal(pagoEm) {
				t.Fatalf("payment date not applied: %+v", b)
			}
			return b, nil
		})
	m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
			if h.TipoMovimento != entities.MovimentoLiquidacao || h.Origem != entities.OrigemJob {
				t.Fatalf("unexpected history row: %+v", h)
			}
			return h, nil
		})

	// 222 is already settled: no write, no history.
	pago := 80.0
	m.boletos.EXPECT().GetByNossoNumero(gomock.Any(), "222").Return(entities.Boleto{
		ID: "bol-2", NossoNumero: "222", Status: entities.StatusLiquidado, ValorPago: &pago,
	}, nil)

	// 333 has no local row: logged and skipped.
	m.boletos.EXPECT().GetByNossoNumero(gomock.Any(), "333").Return(entities.Boleto{}, nil)

	aplicados, err := uc.SincronizarLiquidados(context.Background(), de, ate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aplicados != 1 {
		t.Fatalf("expected 1 settlement applied, got %d", aplicados)
	}
}

func TestBoletoUseCase_HistoricoCarregaAutoria(t *testing.T) {
	uc, m := newBoletoUseCaseForTest(t)
	m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(
		entities.Boleto{ID: "bol-1", ConfigID: "cfg-1", NossoNumero: "111", Status: entities.StatusAberto}, nil)
	m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
	m.gateway.EXPECT().Baixar(gomock.Any(), gomock.Any(), "111", entities.BaixaPagoDinheiro).Return(nil)
	m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Boleto) (entities.Boleto, error) { return b, nil })
	m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
			if h.IP != "203.0.113.9" || h.UserAgent != "curl/8.5" {
				t.Fatalf("caller identity not recorded: ip=%q ua=%q", h.IP, h.UserAgent)
			}
			return h, nil
		})

	ctx := ComAutoria(context.Background(), "203.0.113.9", "curl/8.5")
	if _, err := uc.BaixarBoleto(ctx, "bol-1", entities.BaixaPagoDinheiro, entities.OrigemAPI); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBoletoUseCase_ConsultarEAtualizar(t *testing.T) {
	aberto := func() entities.Boleto {
		return entities.Boleto{
			ID:           "bol-1",
			ConfigID:     "cfg-1",
			NossoNumero:  "12345678901",
			Status:       entities.StatusAberto,
			ValorNominal: 150.0,
		}
	}

	t.Run("unregistered boleto", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		b := aberto()
		b.NossoNumero = ""
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(b, nil)

		_, err := uc.ConsultarEAtualizar(context.Background(), "bol-1", entities.OrigemAPI)
		if !errors.Is(err, ErrBoletoSemRegistro) {
			t.Fatalf("expected ErrBoletoSemRegistro, got %v", err)
		}
	})

	t.Run("no change is a no-op", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(aberto(), nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().Consultar(gomock.Any(), gomock.Any(), "12345678901").Return(
			interfaces.ConsultaResultado{NossoNumero: "12345678901", Situacao: "01"}, nil)

		b, err := uc.ConsultarEAtualizar(context.Background(), "bol-1", entities.OrigemAPI)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.StatusAberto {
			t.Fatalf("status should not change, got %s", b.Status)
		}
	})

	t.Run("legacy open alias does not produce a delta", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(aberto(), nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().Consultar(gomock.Any(), gomock.Any(), "12345678901").Return(
			interfaces.ConsultaResultado{NossoNumero: "12345678901", Situacao: "00"}, nil)

		if _, err := uc.ConsultarEAtualizar(context.Background(), "bol-1", entities.OrigemAPI); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settlement applied with history", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		pago := 150.0
		quando := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(aberto(), nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().Consultar(gomock.Any(), gomock.Any(), "12345678901").Return(
			interfaces.ConsultaResultado{Situacao: "61", ValorPago: &pago, DataPagamento: &quando}, nil)
		m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
				if b.Status != entities.StatusLiquidado || b.ValorPago == nil || *b.ValorPago != pago {
					t.Fatalf("settlement not applied: %+v", b)
				}
				return b, nil
			})
		m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
				if h.TipoMovimento != entities.MovimentoLiquidacao {
					t.Fatalf("expected LIQUIDACAO history, got %s", h.TipoMovimento)
				}
				return h, nil
			})

		b, err := uc.ConsultarEAtualizar(context.Background(), "bol-1", entities.OrigemJob)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.StatusLiquidado {
			t.Fatalf("expected settled status, got %s", b.Status)
		}
	})

	t.Run("terminal boleto records reprocessing row only", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		b := aberto()
		b.Status = entities.StatusLiquidado
		pago := 150.0

		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(b, nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().Consultar(gomock.Any(), gomock.Any(), "12345678901").Return(
			interfaces.ConsultaResultado{Situacao: "57", ValorPago: &pago}, nil)
		m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
				if h.TipoMovimento != entities.MovimentoReprocessa {
					t.Fatalf("expected REPROCESSAMENTO history, got %s", h.TipoMovimento)
				}
				return h, nil
			})

		out, err := uc.ConsultarEAtualizar(context.Background(), "bol-1", entities.OrigemJob)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusLiquidado {
			t.Fatalf("terminal status must not change, got %s", out.Status)
		}
	})
}

func TestBoletoUseCase_BaixarBoleto(t *testing.T) {
	t.Run("invalid motivo", func(t *testing.T) {
		uc, _ := newBoletoUseCaseForTest(t)
		_, err := uc.BaixarBoleto(context.Background(), "bol-1", 9, entities.OrigemAPI)
		if !errors.Is(err, entities.ErrMotivoBaixaInvalido) {
			t.Fatalf("expected ErrMotivoBaixaInvalido, got %v", err)
		}
	})

	t.Run("terminal boleto rejected", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(
			entities.Boleto{ID: "bol-1", Status: entities.StatusCancelado}, nil)

		_, err := uc.BaixarBoleto(context.Background(), "bol-1", entities.BaixaPagoDinheiro, entities.OrigemAPI)
		if !errors.Is(err, entities.ErrStatusTerminal) {
			t.Fatalf("expected ErrStatusTerminal, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(
			entities.Boleto{ID: "bol-1", ConfigID: "cfg-1", NossoNumero: "111", Status: entities.StatusAberto}, nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().Baixar(gomock.Any(), gomock.Any(), "111", entities.BaixaDesconto).Return(nil)
		m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
				if b.Status != entities.StatusBaixado || !b.Baixado {
					t.Fatalf("write-off not applied: %+v", b)
				}
				return b, nil
			})
		m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
				if h.TipoMovimento != entities.MovimentoBaixa {
					t.Fatalf("expected BAIXA history, got %s", h.TipoMovimento)
				}
				return h, nil
			})

		b, err := uc.BaixarBoleto(context.Background(), "bol-1", entities.BaixaDesconto, entities.OrigemAPI)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.StatusBaixado {
			t.Fatalf("expected baixado, got %s", b.Status)
		}
	})
}

func TestBoletoUseCase_ProtestarBoleto(t *testing.T) {
	t.Run("invalid codigo funcao", func(t *testing.T) {
		uc, _ := newBoletoUseCaseForTest(t)
		_, err := uc.ProtestarBoleto(context.Background(), "bol-1", 2, entities.OrigemAPI)
		if !errors.Is(err, entities.ErrCodigoFuncaoInvalido) {
			t.Fatalf("expected ErrCodigoFuncaoInvalido, got %v", err)
		}
	})

	t.Run("premature protest never reaches the bank", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(entities.Boleto{
			ID:             "bol-1",
			ConfigID:       "cfg-1",
			NossoNumero:    "111",
			Status:         entities.StatusAberto,
			DataVencimento: time.Now().Add(-24 * time.Hour),
		}, nil)

		_, err := uc.ProtestarBoleto(context.Background(), "bol-1", entities.FuncaoProtestar, entities.OrigemAPI)
		if !errors.Is(err, entities.ErrProtestoPrematuro) {
			t.Fatalf("expected ErrProtestoPrematuro, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.boletos.EXPECT().GetByID(gomock.Any(), "bol-1").Return(entities.Boleto{
			ID:             "bol-1",
			ConfigID:       "cfg-1",
			NossoNumero:    "111",
			Status:         entities.StatusAberto,
			DataVencimento: time.Now().Add(-10 * 24 * time.Hour),
		}, nil)
		m.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(configAtiva(), nil)
		m.gateway.EXPECT().Protestar(gomock.Any(), gomock.Any(), "111", entities.FuncaoNegativar).Return(nil)
		m.boletos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Boleto) (entities.Boleto, error) {
				if b.Status != entities.StatusProtestoSolicitado || !b.ProtestoSolicitado {
					t.Fatalf("protest not applied: %+v", b)
				}
				return b, nil
			})
		m.historico.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoricoBoleto) (entities.HistoricoBoleto, error) {
				if h.TipoMovimento != entities.MovimentoProtesto {
					t.Fatalf("expected PROTESTO history, got %s", h.TipoMovimento)
				}
				return h, nil
			})

		b, err := uc.ProtestarBoleto(context.Background(), "bol-1", entities.FuncaoNegativar, entities.OrigemAPI)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.StatusProtestoSolicitado {
			t.Fatalf("expected protesto solicitado, got %s", b.Status)
		}
	})
}

func TestBoletoUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _ := newBoletoUseCaseForTest(t)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrBoletoIDInvalido) {
			t.Fatalf("expected ErrBoletoIDInvalido, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newBoletoUseCaseForTest(t)
		m.boletos.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Boleto{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrBoletoNaoEncontrado) {
			t.Fatalf("expected ErrBoletoNaoEncontrado, got %v", err)
		}
	})
}
