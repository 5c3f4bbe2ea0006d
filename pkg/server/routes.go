package server

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/jaky1206/renko-chart-demo/pkg/chart"
	"github.com/jaky1206/renko-chart-demo/pkg/metrics"
	"github.com/jaky1206/renko-chart-demo/pkg/navigator"
	"github.com/jaky1206/renko-chart-demo/pkg/renko"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

const (
	ChartKindRenko       = "renko"
	ChartKindCandlestick = "candlestick"
	ChartKindScatter     = "scatter"
)

func (s *Server) newEngine() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowMethods:     []string{"GET", "POST"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexTemplate)))

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/api/datasets", s.listDatasets)
	r.POST("/api/navigate/:action", s.navigate)
	r.GET("/api/chart.png", s.renderChart)
	r.GET("/api/chart.svg", s.renderChart)
	r.GET("/api/bricks", s.listBricks)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/", s.index)

	return r
}

func (s *Server) stateResponse() gin.H {
	state := s.State()
	current, _ := s.CurrentKey()
	datasets := state.Datasets
	if datasets == nil {
		datasets = []string{}
	}

	return gin.H{
		"datasets": datasets,
		"index":    state.Index,
		"week":     s.Week().Week,
		"current":  current,
	}
}

func (s *Server) listDatasets(c *gin.Context) {
	c.JSON(http.StatusOK, s.stateResponse())
}

func (s *Server) navigate(c *gin.Context) {
	action, err := navigator.ParseAction(c.Param("action"))
	if err != nil || action == navigator.ActionNone {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be next or prev"})
		return
	}

	s.Navigate(action)
	c.JSON(http.StatusOK, s.stateResponse())
}

// chartQuery is the query of the chart endpoints, missing values fall back to the config.
type chartQuery struct {
	Kind      string   `form:"kind"`
	Offset    *int     `form:"offset"`
	Size      *int     `form:"size"`
	Volume    *bool    `form:"volume"`
	Legend    *bool    `form:"legend"`
	Trend     bool     `form:"trend"`
	BrickSize *float64 `form:"brickSize"`
}

func (s *Server) chartOptions(q chartQuery, total int) chart.Options {
	opts := chart.DefaultOptions()
	opts.Width = s.Config.Chart.Width
	opts.Height = s.Config.Chart.Height
	opts.ShowLegend = s.Config.Chart.ShowLegend
	opts.ShowVolume = s.Config.Chart.ShowVolume
	opts.ShowTrendLine = q.Trend
	opts.Window = chart.Viewport{Size: s.Config.Chart.Window}

	if q.Size != nil {
		opts.Window.Size = *q.Size
	}

	if q.Offset != nil {
		opts.Window.Offset = *q.Offset
	}

	if q.Volume != nil {
		opts.ShowVolume = *q.Volume
	}

	if q.Legend != nil {
		opts.ShowLegend = *q.Legend
	}

	opts.Window = opts.Window.Clamp(total)
	return opts
}

func (s *Server) brickSize(q chartQuery) (float64, error) {
	if q.BrickSize == nil {
		return s.Config.BrickSize, nil
	}

	if _, err := renko.New(*q.BrickSize); err != nil {
		return 0, err
	}

	return *q.BrickSize, nil
}

func (s *Server) renderChart(c *gin.Context) {
	var q chartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brickSize, err := s.brickSize(q)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if len(q.Kind) == 0 {
		q.Kind = ChartKindRenko
	}

	format := chart.FormatPNG
	if c.FullPath() == "/api/chart.svg" {
		format = chart.FormatSVG
	}

	series, err := s.CurrentSeries(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	startTime := time.Now()
	opts := s.chartOptions(q, series.Len())
	opts.Title = series.Name
	opts.Format = format

	var ch *gochart.Chart
	switch q.Kind {
	case ChartKindRenko:
		ch, err = s.renkoChart(series, brickSize, opts)

	case ChartKindCandlestick:
		ch, err = chart.CandlestickChart(series, opts)

	case ChartKindScatter:
		ch, err = chart.ScatterChart(series, opts)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown chart kind " + strconv.Quote(q.Kind)})
		return
	}

	if err != nil {
		metrics.ObserveRender(q.Kind, startTime, err)
		s.respondError(c, err)
		return
	}

	var buf bytes.Buffer
	err = chart.Render(ch, &buf, format)
	metrics.ObserveRender(q.Kind, startTime, err)
	if err != nil {
		log.WithError(err).Errorf("can not render %s chart of %s", q.Kind, series.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (s *Server) renkoChart(series *types.Series, brickSize float64, opts chart.Options) (*gochart.Chart, error) {
	bricks, err := renko.Decompose(series.Rows, brickSize)
	if err != nil {
		return nil, err
	}

	metrics.BricksMetrics.WithLabelValues(series.Name).Set(float64(len(bricks)))
	return chart.RenkoChart(series, bricks, brickSize, opts)
}

func (s *Server) listBricks(c *gin.Context) {
	var q chartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brickSize, err := s.brickSize(q)
	if err != nil {
		s.respondError(c, err)
		return
	}

	series, err := s.CurrentSeries(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	bricks, err := renko.Decompose(series.Rows, brickSize)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dataset":   series.Name,
		"brickSize": brickSize,
		"bricks":    bricks,
	})
}

func (s *Server) index(c *gin.Context) {
	state := s.State()
	current, _ := s.CurrentKey()
	c.HTML(http.StatusOK, "index", gin.H{
		"Current": current,
		"Index":   state.Index + 1,
		"Total":   state.Len(),
		"Week":    s.Week().Week,
		"Window":  s.Config.Chart.Window,
		"Volume":  s.Config.Chart.ShowVolume,
	})
}

func (s *Server) respondError(c *gin.Context, err error) {
	var malformed *renko.MalformedInputError
	switch {
	case errors.Is(err, navigator.ErrNoDatasets):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.As(err, &malformed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "row": malformed.Row})

	case errors.Is(err, renko.ErrInvalidConfiguration), errors.Is(err, chart.ErrEmptySeries):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
