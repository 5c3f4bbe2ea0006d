package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jaky1206/renko-chart-demo/pkg/config"
	"github.com/jaky1206/renko-chart-demo/pkg/loader"
	"github.com/jaky1206/renko-chart-demo/pkg/metrics"
	"github.com/jaky1206/renko-chart-demo/pkg/navigator"
	"github.com/jaky1206/renko-chart-demo/pkg/service"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
)

var log = logrus.WithField("component", "server")

// Server serves the charts of the datasets of a source and the navigation between them.
type Server struct {
	Config *config.Config
	Source loader.SeriesSource

	// mu guards state and week
	mu    sync.Mutex
	state navigator.State

	// week is the current week number in week mode
	week navigator.WeekState

	// cache stores the loaded datasets by key
	cache service.PersistenceService

	srv *http.Server
}

func New(cfg *config.Config, source loader.SeriesSource) *Server {
	return &Server{
		Config: cfg,
		Source: source,
		cache:  service.NewPersistenceServiceFacade(cfg.Persistence).Get(),
	}
}

// Init lists the datasets of the source and starts from the first one.
func (s *Server) Init(ctx context.Context) error {
	keys, err := s.Source.List(ctx)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		log.Warn("the data source has no datasets")
	}

	s.mu.Lock()
	s.state = navigator.NewState(keys)
	if s.WeekMode() {
		s.week = navigator.WeekState{Week: s.Config.Server.Week}
		log.Infof("week mode, starting from week %d", s.week.Week)
	}
	s.mu.Unlock()
	return nil
}

// WeekMode reports whether the server navigates week numbers instead of the listed datasets.
func (s *Server) WeekMode() bool {
	return s.Config.Server.Week > 0
}

func (s *Server) State() navigator.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Server) Week() navigator.WeekState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.week
}

// Navigate applies the navigation action to the dataset list, or to the week number in
// week mode.
func (s *Server) Navigate(action navigator.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WeekMode() {
		s.week = navigator.ApplyWeek(s.week, action)
	} else {
		s.state = navigator.Apply(s.state, action)
	}

	metrics.NavigationMetrics.WithLabelValues(string(action)).Inc()
}

// CurrentKey returns the key of the current dataset, in week mode the week number.
func (s *Server) CurrentKey() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WeekMode() {
		return strconv.Itoa(s.week.Week), nil
	}

	return s.state.Current()
}

// CurrentSeries loads the series of the current dataset, loaded series are cached.
func (s *Server) CurrentSeries(ctx context.Context) (*types.Series, error) {
	key, err := s.CurrentKey()
	if err != nil {
		return nil, err
	}

	store := s.cache.NewStore("series", string(s.Config.Source), key)

	var cached types.Series
	if err := store.Load(&cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, service.ErrPersistenceNotExists) {
		log.WithError(err).Warnf("can not load the cached dataset %s", key)
	}

	series, err := s.Source.Load(ctx, key)
	metrics.ObserveLoad(string(s.Config.Source), err)
	if err != nil {
		return nil, err
	}

	if err := store.Save(*series); err != nil {
		log.WithError(err).Warnf("can not cache the dataset %s", key)
	}

	return series, nil
}

// Run serves until the context is canceled.
func (s *Server) Run(ctx context.Context, bind string) error {
	s.srv = &http.Server{
		Addr:    bind,
		Handler: s.newEngine(),
	}

	errC := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", bind)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err := <-errC:
		return err

	case <-ctx.Done():
		return s.Shutdown()
	}
}

func (s *Server) Shutdown() error {
	if s.srv == nil {
		return nil
	}

	log.Info("shutting down web server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		return err
	}

	log.Info("server shutdown completed")
	return nil
}
