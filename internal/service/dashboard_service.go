package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/internal/stats"
	"github.com/trinextgen/backoffice/pkg/crm"
)

// DashboardService builds the derived per-client view from upstream data.
type DashboardService interface {
	Load(ctx context.Context, token, clientID string) (*model.Dashboard, error)
}

type dashboardService struct {
	crm   crm.Client
	group singleflight.Group
}

// NewDashboardService creates a DashboardService backed by the CRM API.
func NewDashboardService(c crm.Client) DashboardService {
	return &dashboardService{crm: c}
}

// Load fetches the client profile, projects and payments concurrently and
// derives the chart series. All three fetches must succeed; a single failure
// fails the whole load so the view is never built from partial data.
// Concurrent loads for the same client and token share one upstream round
// trip; results are never cached beyond the in-flight call.
func (s *dashboardService) Load(ctx context.Context, token, clientID string) (*model.Dashboard, error) {
	v, err, _ := s.group.Do(token+"/"+clientID, func() (any, error) {
		return s.load(ctx, token, clientID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Dashboard), nil
}

func (s *dashboardService) load(ctx context.Context, token, clientID string) (*model.Dashboard, error) {
	var (
		client   *model.Client
		projects []*model.Project
		payments []*model.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.crm.GetClient(gctx, token, clientID)
		if err != nil {
			return fmt.Errorf("client: %w", err)
		}
		client = c
		return nil
	})
	g.Go(func() error {
		p, err := s.crm.ListProjects(gctx, token, clientID)
		if err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		projects = p
		return nil
	})
	g.Go(func() error {
		y, err := s.crm.ListPayments(gctx, token, clientID)
		if err != nil {
			return fmt.Errorf("payments: %w", err)
		}
		payments = y
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []*model.Project{}
	}
	if payments == nil {
		payments = []*model.Payment{}
	}

	totals := stats.ComputeTotals(projects, payments)
	return &model.Dashboard{
		Client:         client,
		Projects:       projects,
		Payments:       payments,
		Totals:         totals,
		BarSeries:      stats.BarSeries(projects),
		StatusCounts:   stats.StatusDistribution(projects),
		CollectionRate: stats.CollectionRate(totals),
	}, nil
}
