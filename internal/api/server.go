package api

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lmercier/dealdesk/internal/analytics"
	"github.com/lmercier/dealdesk/internal/config"
	"github.com/lmercier/dealdesk/internal/deal"
	"github.com/lmercier/dealdesk/internal/ingest"
	"github.com/lmercier/dealdesk/internal/session"
)

// Server wires the session store and the analytics engine into the
// HTTP API consumed by the dashboard front end.
type Server struct {
	Echo  *echo.Echo
	Store *session.Store
	Cfg   *config.Config

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewServer(store *session.Store, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{Echo: e, Store: store, Cfg: cfg, now: time.Now}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api/v1")
	api.POST("/deals/upload", s.handleUpload)
	api.GET("/deals", s.handleListDeals)
	api.DELETE("/deals", s.handleClearDeals)
	api.GET("/stats", s.handleGetStats)
	api.GET("/aggregations", s.handleGetAggregations)
	api.GET("/forecast", s.handleGetForecast)
	api.GET("/actions", s.handleGetActions)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// handleUpload ingests a CSV file and replaces the session collection
// wholesale. A rejected or unreadable file leaves the previous
// collection untouched.
func (s *Server) handleUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing file field"})
	}
	if err := ingest.CheckFilename(fh.Filename); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "only .csv files are accepted"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	deals, err := ingest.Normalize(f, s.now())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "couldn't read file"})
	}

	uploadID := s.Store.ReplaceAll(deals)
	log.Printf("Upload %s: %d deals loaded from %s", uploadID, len(deals), fh.Filename)
	return c.JSON(http.StatusOK, map[string]any{
		"uploadId": uploadID,
		"deals":    len(deals),
	})
}

func (s *Server) handleListDeals(c echo.Context) error {
	snap := s.Store.Snapshot()
	if snap.Deals == nil {
		snap.Deals = []deal.Deal{}
	}
	resp := map[string]any{
		"deals": snap.Deals,
		"total": len(snap.Deals),
	}
	if !snap.UploadedAt.IsZero() {
		resp["uploadedAt"] = snap.UploadedAt
		resp["uploadId"] = snap.UploadID
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleClearDeals(c echo.Context) error {
	s.Store.Clear()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetStats(c echo.Context) error {
	deals := s.Store.Deals()
	gross := analytics.GrossPipeline(deals)
	weighted := analytics.WeightedPipeline(deals)

	return c.JSON(http.StatusOK, map[string]any{
		"total":            len(deals),
		"open":             len(analytics.OpenDeals(deals)),
		"won":              len(analytics.WonDeals(deals)),
		"lost":             len(analytics.LostDeals(deals)),
		"grossPipeline":    gross,
		"weightedPipeline": weighted,
		"grossDisplay":     deal.FormatEUR(gross),
		"weightedDisplay":  deal.FormatEUR(weighted),
		"conversionRate":   analytics.ConversionRate(deals),
	})
}

func (s *Server) handleGetAggregations(c echo.Context) error {
	deals := s.Store.Deals()
	return c.JSON(http.StatusOK, map[string]any{
		"pipelineByStage": analytics.PipelineByStage(deals),
		"leadsBySource":   analytics.LeadsBySource(deals),
	})
}

func (s *Server) handleGetForecast(c echo.Context) error {
	deals := s.Store.Deals()
	now := s.now()

	if v := c.QueryParam("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid days"})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"days":  days,
			"value": analytics.Forecast(deals, now, days),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"series": analytics.ForecastSeries(deals, now, s.horizons()),
	})
}

func (s *Server) handleGetActions(c echo.Context) error {
	deals := s.Store.Deals()
	now := s.now()
	a := s.Cfg.Analytics

	return c.JSON(http.StatusOK, map[string]any{
		"coldDeals":      orEmpty(analytics.ColdDeals(deals, now, a.ColdDealAge())),
		"unhandledLeads": orEmpty(analytics.UnhandledLeads(deals, now, a.UnhandledLeadAge())),
		"quickWins":      orEmpty(analytics.QuickWins(deals)),
	})
}

func (s *Server) horizons() analytics.Horizons {
	return analytics.Horizons{
		Short: s.Cfg.Analytics.ForecastShortDays,
		Mid:   s.Cfg.Analytics.ForecastMidDays,
		Long:  s.Cfg.Analytics.ForecastLongDays,
	}
}

func orEmpty(deals []deal.Deal) []deal.Deal {
	if deals == nil {
		return []deal.Deal{}
	}
	return deals
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
