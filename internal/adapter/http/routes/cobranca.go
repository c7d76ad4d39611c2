package routes

import (
	"net/http"

	"cobranca_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBoletos  = "/boletos"
	PathWebhooks = "/webhooks"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCobrancaRoutes(rg *gin.RouterGroup, boletoHandler *handlers.BoletoHandler, webhookHandler *handlers.WebhookHandler) {
	boletos := rg.Group(PathBoletos)
	{
		boletos.POST("", boletoHandler.EmitirBoleto)
		boletos.POST("/lote", boletoHandler.EmitirLote)
		boletos.GET("/:id", boletoHandler.GetBoleto)
		boletos.PATCH("/:id", boletoHandler.Alterar)
		boletos.GET("/:id/historico", boletoHandler.ListarHistorico)
		boletos.POST("/:id/consultar", boletoHandler.Consultar)
		boletos.POST("/:id/baixa", boletoHandler.Baixar)
		boletos.POST("/:id/protesto", boletoHandler.Protestar)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// O ack 200 depende apenas da persistencia do evento; ver WebhookHandler.
		webhooks.POST("/cobranca", webhookHandler.Receber)
		webhooks.POST("/eventos/:id/reprocessar", webhookHandler.Reprocessar)
	}
}
