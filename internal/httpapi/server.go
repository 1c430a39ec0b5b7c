package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rustyeddy/fxrisk/market"
	"github.com/rustyeddy/fxrisk/params"
	"github.com/rustyeddy/fxrisk/report"
	"github.com/rustyeddy/fxrisk/risk"
)

// Options configures the router.
type Options struct {
	Policy risk.Policy
	// Defaults fill fields missing from a request.
	Defaults params.Params
	// BaseURL is the page share links point at. Derived from the request when empty.
	BaseURL   string
	RateLimit float64 // requests per second, 0 disables
	Burst     int
	Logger    zerolog.Logger
}

type Handler struct {
	policy   risk.Policy
	defaults params.Params
	baseURL  string
	log      zerolog.Logger
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type pairResponse struct {
	Code            string `json:"code"`
	Base            string `json:"base"`
	Quote           string `json:"quote"`
	PipSize         string `json:"pip_size"`
	DisplayDecimals int    `json:"display_decimals"`
	NeedsRate       bool   `json:"needs_conversion_rate"`
}

func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	h := &Handler{
		policy:   opts.Policy,
		defaults: opts.Defaults,
		baseURL:  opts.BaseURL,
		log:      opts.Logger,
	}

	router.Use(gin.Recovery(), requestID(), accessLog(opts.Logger), rateLimit(opts.RateLimit, opts.Burst))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.health)
		v1.GET("/pairs", h.listPairs)
		v1.GET("/calculate", h.calculateQuery)
		v1.POST("/calculate", h.calculateJSON)
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listPairs(c *gin.Context) {
	pairs := market.Pairs()
	out := make([]pairResponse, 0, len(pairs))
	for _, m := range pairs {
		out = append(out, pairResponse{
			Code:            m.Name,
			Base:            m.BaseCurrency,
			Quote:           m.QuoteCurrency,
			PipSize:         market.PipSize(m.Name).String(),
			DisplayDecimals: m.DisplayDecimals,
			NeedsRate:       m.QuoteCurrency != market.JPY,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) calculateQuery(c *gin.Context) {
	h.calculate(c, params.Decode(c.Request.URL.Query()))
}

func (h *Handler) calculateJSON(c *gin.Context) {
	var p params.Params
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	h.calculate(c, p)
}

func (h *Handler) calculate(c *gin.Context, p params.Params) {
	in, err := params.Parse(params.Merge(h.defaults, p))
	if err != nil {
		resp := errorResponse{Error: err.Error()}
		var fe *params.FieldError
		if errors.As(err, &fe) {
			resp.Field = fe.Field
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	res, err := risk.Calculate(in)
	if err != nil {
		status := http.StatusInternalServerError
		if isInputProblem(err) {
			status = http.StatusUnprocessableEntity
		}
		h.log.Warn().Err(err).Str("request_id", c.GetString(requestIDKey)).Str("pair", in.Pair).Msg("calculation failed")
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}

	rep := report.New(h.policy, in, res)
	if rid := c.GetString(requestIDKey); rid != "" {
		rep.ID = rid
	}
	if link, err := params.ShareURL(h.shareBase(c), params.FromInput(in)); err == nil {
		rep.ShareURL = link
	}

	h.log.Debug().
		Str("request_id", rep.ID).
		Str("pair", in.Pair).
		Str("lot", res.RecommendedLot.StringFixed(2)).
		Int64("units", res.Units).
		Bool("allowed", rep.Decision.Allowed).
		Msg("sized position")

	c.JSON(http.StatusOK, rep)
}

func (h *Handler) shareBase(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/"
}

func isInputProblem(err error) bool {
	return errors.Is(err, market.ErrMissingConversionRate) ||
		errors.Is(err, risk.ErrInvalidRiskParameters) ||
		errors.Is(err, risk.ErrPositionTooLarge) ||
		errors.Is(err, market.ErrInvalidLeverage)
}
