package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/mortgage-affordability/internal/config"
	"github.com/iwvelando/mortgage-affordability/internal/grid"
	"github.com/iwvelando/mortgage-affordability/pkg/constants"
	"github.com/iwvelando/mortgage-affordability/pkg/format"
	"github.com/iwvelando/mortgage-affordability/pkg/mortgage"
	"github.com/iwvelando/mortgage-affordability/pkg/output"
	"github.com/iwvelando/mortgage-affordability/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	defaults    *config.Configuration
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the affordability API.
// The defaults configuration supplies assumptions and grid axes for requests
// that do not override them.
func NewHandler(logger *zap.Logger, defaults *config.Configuration, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaults == nil {
		defaults = &config.Configuration{}
	}
	if cfg == nil {
		cfg = &Config{}
	}

	maxBodySize := cfg.BodySizeBytes()
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, defaults: defaults, maxBodySize: maxBodySize, version: trimmedVersion}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", h.handleHealth)

	// Version endpoint for UI metadata
	r.Get("/api/version", h.handleVersion)

	// Effective defaults for pre-filling request forms
	r.Get("/api/defaults", h.handleDefaults)

	// Single-point payment breakdown
	r.Post("/api/payment", h.handlePayment)

	// Full affordability grid for heatmap rendering
	r.Post("/api/grid", h.handleGrid)

	return r
}

// Run starts the HTTP server on the configured address and blocks until a
// shutdown signal arrives or the listener fails.
func Run(logger *zap.Logger, defaults *config.Configuration, cfg *Config, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = &Config{}
	}
	address := cfg.Address
	if address == "" {
		address = constants.DefaultServerAddress
	}

	httpSrv := &http.Server{
		Addr:         address,
		Handler:      NewHandler(logger, defaults, cfg, version),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "server.Run"),
			zap.String("address", address),
		)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}

	logger.Info("shutting down HTTP server", zap.String("op", "server.Run"))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// assumptionsPayload carries per-request overrides of the default loan
// assumptions. Only fields present in the request replace the defaults.
type assumptionsPayload struct {
	DownPaymentPct      *float64 `json:"downPaymentPct,omitempty"`
	TermYears           *int     `json:"termYears,omitempty"`
	PropertyTaxRate     *float64 `json:"propertyTaxRate,omitempty"`
	HomeownersInsurance *float64 `json:"homeownersInsurance,omitempty"`
	FloodInsurance      *float64 `json:"floodInsurance,omitempty"`
	PMIRate             *float64 `json:"pmiRate,omitempty"`
	PMICutoff           *float64 `json:"pmiCutoff,omitempty"`
	PMIAtCutoff         *bool    `json:"pmiAtCutoff,omitempty"`
	HOAMonthly          *float64 `json:"hoaMonthly,omitempty"`
}

func (p *assumptionsPayload) applyTo(a mortgage.Assumptions) mortgage.Assumptions {
	if p == nil {
		return a
	}
	if p.DownPaymentPct != nil {
		a.DownPaymentPct = *p.DownPaymentPct
	}
	if p.TermYears != nil {
		a.TermYears = *p.TermYears
	}
	if p.PropertyTaxRate != nil {
		a.PropertyTaxRate = *p.PropertyTaxRate
	}
	if p.HomeownersInsurance != nil {
		a.HomeownersInsurance = *p.HomeownersInsurance
	}
	if p.FloodInsurance != nil {
		a.FloodInsurance = *p.FloodInsurance
	}
	if p.PMIRate != nil {
		a.PMIRate = *p.PMIRate
	}
	if p.PMICutoff != nil {
		a.PMICutoff = *p.PMICutoff
	}
	if p.PMIAtCutoff != nil {
		a.PMIAtCutoff = *p.PMIAtCutoff
	}
	if p.HOAMonthly != nil {
		a.HOAMonthly = *p.HOAMonthly
	}
	return a
}

// rangePayload carries per-request overrides of one grid axis.
type rangePayload struct {
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`
}

func (p *rangePayload) applyTo(r mortgage.Range) mortgage.Range {
	if p == nil {
		return r
	}
	if p.Min != nil {
		r.Min = *p.Min
	}
	if p.Max != nil {
		r.Max = *p.Max
	}
	if p.Step != nil {
		r.Step = *p.Step
	}
	return r
}

type paymentRequest struct {
	Price       float64             `json:"price"`
	Rate        float64             `json:"rate"`
	Assumptions *assumptionsPayload `json:"assumptions,omitempty"`
}

type paymentResponse struct {
	Price      float64            `json:"price"`
	Rate       float64            `json:"rate"`
	LoanAmount float64            `json:"loanAmount"`
	Breakdown  mortgage.Breakdown `json:"breakdown"`
	Formatted  map[string]string  `json:"formatted"`
	Warnings   []string           `json:"warnings,omitempty"`
	Duration   string             `json:"duration"`
}

type gridRequest struct {
	Prices      *rangePayload       `json:"prices,omitempty"`
	Rates       *rangePayload       `json:"rates,omitempty"`
	Assumptions *assumptionsPayload `json:"assumptions,omitempty"`
}

type gridResponse struct {
	Prices      []float64   `json:"prices"`
	Rates       []float64   `json:"rates"`
	PriceLabels []string    `json:"priceLabels"`
	RateLabels  []string    `json:"rateLabels"`
	Cells       [][]float64 `json:"cells"`
	CSV         string      `json:"csv"`
	Warnings    []string    `json:"warnings,omitempty"`
	Duration    string      `json:"duration"`
}

type defaultsResponse struct {
	Assumptions mortgage.Assumptions `json:"assumptions"`
	Prices      mortgage.Range       `json:"prices"`
	Rates       mortgage.Range       `json:"rates"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, defaultsResponse{
		Assumptions: h.defaults.Assumptions.WithDefaults(),
		Prices:      h.defaults.Grid.Prices,
		Rates:       h.defaults.Grid.Rates,
	})
}

func (h *handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePayment"
	start := time.Now()

	var req paymentRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	assumptions := req.Assumptions.applyTo(h.defaults.Assumptions).WithDefaults()
	warnings := validation.ValidateAssumptions(assumptions)

	breakdown, err := mortgage.MonthlyPayment(req.Price, req.Rate, assumptions)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	elapsed := time.Since(start)

	response := paymentResponse{
		Price:      req.Price,
		Rate:       req.Rate,
		LoanAmount: mortgage.LoanAmount(req.Price, assumptions),
		Breakdown:  breakdown,
		Formatted: map[string]string{
			"principalAndInterest": format.Currency(breakdown.PrincipalAndInterest),
			"propertyTaxMonthly":   format.Currency(breakdown.PropertyTax),
			"insuranceMonthly":     format.Currency(breakdown.Insurance),
			"pmiMonthly":           format.Currency(breakdown.PMI),
			"hoaMonthly":           format.Currency(breakdown.HOA),
			"totalMonthly":         format.Currency(breakdown.Total),
		},
		Warnings: warnings,
		Duration: elapsed.String(),
	}

	h.logger.Info("payment computed",
		zap.String("op", op),
		zap.Float64("price", req.Price),
		zap.Float64("rate", req.Rate),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleGrid(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleGrid"
	start := time.Now()

	var req gridRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	conf := *h.defaults
	conf.Assumptions = req.Assumptions.applyTo(conf.Assumptions)
	conf.Grid.Prices = req.Prices.applyTo(conf.Grid.Prices)
	conf.Grid.Rates = req.Rates.applyTo(conf.Grid.Rates)

	warnings := conf.ValidateConfiguration()

	result, err := grid.Evaluate(h.logger, conf)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	priceLabels := make([]string, 0, len(result.Prices))
	for _, price := range result.Prices {
		priceLabels = append(priceLabels, format.WholeCurrency(price))
	}
	rateLabels := make([]string, 0, len(result.Rates))
	for _, rate := range result.Rates {
		rateLabels = append(rateLabels, format.Percent(rate))
	}

	elapsed := time.Since(start)

	response := gridResponse{
		Prices:      result.Prices,
		Rates:       result.Rates,
		PriceLabels: priceLabels,
		RateLabels:  rateLabels,
		Cells:       result.Cells,
		CSV:         output.CsvString(result),
		Warnings:    warnings,
		Duration:    elapsed.String(),
	}

	h.logger.Info("grid computed",
		zap.String("op", op),
		zap.Int("priceCount", len(result.Prices)),
		zap.Int("rateCount", len(result.Rates)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// decodeJSON reads a JSON request body subject to the configured size limit.
// An empty body decodes to the zero value so endpoints can run entirely on
// defaults. Returns false after writing an error response.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}, op string) bool {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
