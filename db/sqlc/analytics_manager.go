package sqlc

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager records match counters for the host the game runs on.
type AnalyticsManager struct {
	queries Querier
	hostIp  pqtype.Inet
}

func NewAnalyticsManager(queries Querier, hostIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries: queries,
		hostIp:  pqtype.Inet{IPNet: hostIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) HostIp() pqtype.Inet {
	return a.hostIp
}

func (a *AnalyticsManager) IncrementMatchesCreatedCount(ctx context.Context) error {
	return a.queries.AnalyticsIncrementMatchesCreatedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) IncrementMatchesFinishedCount(ctx context.Context) error {
	return a.queries.AnalyticsIncrementMatchesFinishedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) IncrementShotsFiredCount(ctx context.Context, shots int) error {
	return a.queries.AnalyticsIncrementShotsFiredCount(ctx, AnalyticsIncrementShotsFiredCountParams{
		HostIp:     a.hostIp,
		ShotsFired: int64(shots),
	})
}

func (a *AnalyticsManager) GetMatchesCreatedCount(ctx context.Context) (int64, error) {
	return a.queries.AnalyticsGetMatchesCreatedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) GetMatchesFinishedCount(ctx context.Context) (int64, error) {
	return a.queries.AnalyticsGetMatchesFinishedCount(ctx, a.hostIp)
}
