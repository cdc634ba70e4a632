package service

import (
	"fmt"
	"math"

	"salesdesk/store"
)

type DashboardStats struct {
	ActiveDeals    int    `json:"activeDeals"`
	ConversionRate string `json:"conversionRate"`
	NewLeads       int    `json:"newLeads"`
	TotalDeals     int    `json:"totalDeals"`
}

type StatsService struct {
	Store store.Store
}

// Dashboard recomputes the headline numbers from the deal table on every
// call; there is no cache to invalidate.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	deals, err := s.Store.ListDeals()
	if err != nil {
		return nil, err
	}

	var active, won, leads int
	for _, d := range deals {
		if d.Status != "closed_lost" {
			active++
		}
		if d.Status == "closed_won" {
			won++
		}
		if d.Stage == "lead" {
			leads++
		}
	}

	rate := 0
	if len(deals) > 0 {
		rate = int(math.Round(float64(won) / float64(len(deals)) * 100))
	}

	return &DashboardStats{
		ActiveDeals:    active,
		ConversionRate: fmt.Sprintf("%d%%", rate),
		NewLeads:       leads,
		TotalDeals:     len(deals),
	}, nil
}
