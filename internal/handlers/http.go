package handlers

import (
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gitlab.com/TitanInd/deepmatch/internal/compare"
	"gitlab.com/TitanInd/deepmatch/internal/interfaces"
	"gitlab.com/TitanInd/deepmatch/internal/lib"
	"go.uber.org/atomic"
)

type HTTPHandler struct {
	comparator       *compare.Comparator
	history          *lib.BoundStackMap[CompareResponse]
	totalCompares    *atomic.Int64
	defaultPrecision int
	defaultStrict    bool
	publicUrl        *url.URL
	version          string
	log              interfaces.ILogger
}

func NewHTTPHandler(comparator *compare.Comparator, defaultPrecision int, defaultStrict bool, historySize int, publicUrl *url.URL, version string, log interfaces.ILogger) *HTTPHandler {
	return &HTTPHandler{
		comparator:       comparator,
		history:          lib.NewBoundStackMap[CompareResponse](historySize),
		totalCompares:    atomic.NewInt64(0),
		defaultPrecision: defaultPrecision,
		defaultStrict:    defaultStrict,
		publicUrl:        publicUrl,
		version:          version,
		log:              log,
	}
}

func NewRouter(h *HTTPHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())

	r.GET("/healthcheck", h.HealthCheck)
	r.POST("/compare", h.Compare)
	r.GET("/compare/:id", h.GetComparison)

	return r
}

func (h *HTTPHandler) Compare(ctx *gin.Context) {
	var req CompareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	precision := h.defaultPrecision
	if req.Precision != nil {
		precision = *req.Precision
	}
	if precision < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "precision must be non-negative"})
		return
	}

	strict := h.defaultStrict
	if req.Strict != nil {
		strict = *req.Strict
	}

	id := uuid.NewString()
	d := h.comparator.Compare(compare.FromAny(req.Received), compare.FromAny(req.Expected), precision, strict)
	d = sanitizeDiscrepancy(d)

	res := CompareResponse{
		ID:          id,
		URL:         h.comparisonUrl(id),
		Match:       d == nil,
		Precision:   precision,
		Strict:      strict,
		Discrepancy: d,
	}

	h.history.Push(id, res)
	h.totalCompares.Inc()

	if d == nil {
		h.log.Debugf("comparison %s: match", id)
	} else {
		h.log.Debugf("comparison %s: mismatch: %s", id, d.Reason)
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *HTTPHandler) GetComparison(ctx *gin.Context) {
	id := ctx.Param("id")

	res, ok := h.history.Get(id)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "comparison not found"})
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *HTTPHandler) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthCheckResponse{
		Status:        "healthy",
		Version:       h.version,
		TotalCompares: h.totalCompares.Load(),
	})
}

// sanitizeDiscrepancy drops a non-finite Diff (possible when the difference
// of two finite numbers overflows float64): encoding/json cannot represent
// Inf or NaN, and an unencodable value would abort the response mid-write.
// The reason and both operands still identify the mismatch.
func sanitizeDiscrepancy(d *compare.Discrepancy) *compare.Discrepancy {
	if d == nil {
		return nil
	}
	if math.IsInf(d.Diff, 0) || math.IsNaN(d.Diff) {
		clean := *d
		clean.Diff = 0
		return &clean
	}
	return d
}

func (h *HTTPHandler) comparisonUrl(id string) string {
	if h.publicUrl == nil {
		return ""
	}
	return fmt.Sprintf("%s/compare/%s", h.publicUrl, id)
}
