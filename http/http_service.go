package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lumawallet/buyflow/buy"
	"github.com/lumawallet/buyflow/config"
	"github.com/lumawallet/buyflow/custodial"
	"github.com/lumawallet/buyflow/logger"
	"github.com/lumawallet/buyflow/pkg/version"
	"github.com/lumawallet/buyflow/service"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type infoResponse struct {
	Version      string `json:"version"`
	FiatCurrency string `json:"fiatCurrency"`
}

type HttpService struct {
	processor *buy.Processor
	cfg       config.Config
}

func NewHttpService(svc service.Service) *HttpService {
	return &HttpService{
		processor: svc.GetProcessor(),
		cfg:       svc.GetConfig(),
	}
}

func (httpSvc *HttpService) RegisterSharedRoutes(e *echo.Echo) {
	e.HideBanner = true

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "no-referrer",
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogHost:      true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			logger.HttpLogger.Info().
				Str("uri", values.URI).
				Int("status", values.Status).
				Str("remote_ip", values.RemoteIP).
				Str("user_agent", values.UserAgent).
				Str("host", values.Host).
				Str("request_id", values.RequestID).
				Msg("handled API request")
			return nil
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/api/info", httpSvc.infoHandler)
	e.GET("/api/health", httpSvc.healthHandler)

	buyGroup := e.Group("/api/buy")
	buyGroup.GET("/state", httpSvc.stateHandler)
	buyGroup.GET("/events", httpSvc.stateEventsSSEHandler)

	buyGroup.POST("/asset", httpSvc.selectAssetHandler)
	buyGroup.POST("/amount", httpSvc.updateAmountHandler)
	buyGroup.POST("/currency", httpSvc.updateCurrencyHandler)
	buyGroup.POST("/quote", httpSvc.fetchQuoteHandler)
	buyGroup.POST("/payment-methods", httpSvc.fetchPaymentMethodsHandler)
	buyGroup.POST("/payment-method", httpSvc.selectPaymentMethodHandler)
	buyGroup.POST("/kyc", httpSvc.fetchKycHandler)
	buyGroup.POST("/checkout", httpSvc.checkoutHandler)
	buyGroup.POST("/order", httpSvc.createOrderHandler)
	buyGroup.POST("/confirm", httpSvc.confirmOrderHandler)
	buyGroup.POST("/payment", httpSvc.makePaymentHandler)
	buyGroup.POST("/cancel", httpSvc.cancelOrderHandler)
	buyGroup.POST("/link-bank", httpSvc.linkBankHandler)
	buyGroup.POST("/link-bank/poll", httpSvc.pollLinkedBankHandler)
	buyGroup.POST("/error/clear", httpSvc.clearErrorHandler)
	buyGroup.POST("/clear", httpSvc.clearStateHandler)
}

func (httpSvc *HttpService) infoHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, infoResponse{
		Version:      version.Tag,
		FiatCurrency: httpSvc.cfg.GetCurrency(),
	})
}

func (httpSvc *HttpService) healthHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) stateHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, newStateResponse(httpSvc.processor.CurrentState()))
}

type selectAssetRequest struct {
	Asset string `json:"asset"`
}

func (httpSvc *HttpService) selectAssetHandler(c echo.Context) error {
	var requestData selectAssetRequest
	if err := c.Bind(&requestData); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}
	if requestData.Asset == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Asset is required",
		})
	}

	httpSvc.processor.Process(buy.NewAssetSelected{Asset: requestData.Asset})
	return c.NoContent(http.StatusNoContent)
}

type updateAmountRequest struct {
	AmountMinor int64 `json:"amountMinor"`
}

func (httpSvc *HttpService) updateAmountHandler(c echo.Context) error {
	var requestData updateAmountRequest
	if err := c.Bind(&requestData); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}
	if requestData.AmountMinor <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Amount must be positive",
		})
	}

	currency := httpSvc.processor.CurrentState().FiatCurrency
	httpSvc.processor.Process(buy.AmountUpdated{
		Amount: custodial.Money{Currency: currency, Minor: requestData.AmountMinor},
	})
	return c.NoContent(http.StatusNoContent)
}

type updateCurrencyRequest struct {
	Currency string `json:"currency"`
}

func (httpSvc *HttpService) updateCurrencyHandler(c echo.Context) error {
	var requestData updateCurrencyRequest
	if err := c.Bind(&requestData); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}
	if requestData.Currency == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Currency is required",
		})
	}

	if err := httpSvc.cfg.SetCurrency(requestData.Currency); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to store currency: %s", err.Error()),
		})
	}
	httpSvc.processor.Process(buy.FiatCurrencyUpdated{Currency: requestData.Currency})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) fetchQuoteHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.FetchQuote{})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) fetchPaymentMethodsHandler(c echo.Context) error {
	state := httpSvc.processor.CurrentState()
	httpSvc.processor.Process(buy.FetchPaymentMethods{
		Currency:      state.FiatCurrency,
		PreselectedID: httpSvc.cfg.GetPreferredPaymentMethodID(),
	})
	return c.NoContent(http.StatusNoContent)
}

type selectPaymentMethodRequest struct {
	ID string `json:"id"`
}

func (httpSvc *HttpService) selectPaymentMethodHandler(c echo.Context) error {
	var requestData selectPaymentMethodRequest
	if err := c.Bind(&requestData); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}

	state := httpSvc.processor.CurrentState()
	var method *custodial.PaymentMethod
	for i := range state.PaymentOptions.Available {
		if state.PaymentOptions.Available[i].ID == requestData.ID {
			method = &state.PaymentOptions.Available[i]
			break
		}
	}
	if method == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Payment method not found",
		})
	}

	if err := httpSvc.cfg.SetPreferredPaymentMethodID(method.ID); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to store payment method preference")
	}
	httpSvc.processor.Process(buy.PaymentMethodChangeRequested{Method: *method})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) fetchKycHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.FetchKycState{})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) checkoutHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.BuyButtonClicked{})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) createOrderHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.CancelOrderIfAnyAndCreatePendingOne{})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) confirmOrderHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.ConfirmOrder{})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) makePaymentHandler(c echo.Context) error {
	state := httpSvc.processor.CurrentState()
	if state.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "No order to pay for",
		})
	}
	httpSvc.processor.Process(buy.MakePayment{OrderID: state.ID})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) cancelOrderHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.CancelOrderAndResetAuthorisation{})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) linkBankHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.TryToLinkABankTransfer{})
	return c.NoContent(http.StatusNoContent)
}

type pollLinkedBankRequest struct {
	BankID string `json:"bankId"`
}

func (httpSvc *HttpService) pollLinkedBankHandler(c echo.Context) error {
	var requestData pollLinkedBankRequest
	if err := c.Bind(&requestData); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}
	if requestData.BankID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Bank id is required",
		})
	}

	httpSvc.processor.Process(buy.StartPollingLinkedBank{BankID: requestData.BankID})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) clearErrorHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.ClearError{})
	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) clearStateHandler(c echo.Context) error {
	httpSvc.processor.Process(buy.ClearState{})
	return c.NoContent(http.StatusNoContent)
}
