package enterprise

import (
	"context"
	"net/http"
)

// ClusterInfo is the cluster object returned by GET /v1/cluster.
type ClusterInfo struct {
	UID            int    `json:"uid,omitempty"`
	Name           string `json:"name"`
	Created        string `json:"created,omitempty"`
	Version        string `json:"version,omitempty"`
	LicenseExpired bool   `json:"license_expired,omitempty"`
	Nodes          []int  `json:"nodes,omitempty"`
	Databases      []int  `json:"databases,omitempty"`
	Status         string `json:"status,omitempty"`
	EmailAlerts    bool   `json:"email_alerts,omitempty"`
	RackAware      bool   `json:"rack_aware,omitempty"`
	TotalMemory    uint64 `json:"total_memory,omitempty"`
	UsedMemory     uint64 `json:"used_memory,omitempty"`
	TotalShards    int    `json:"total_shards,omitempty"`
	CnmHTTPPort    int    `json:"cnm_http_port,omitempty"`
	CnmHTTPSPort   int    `json:"cnm_https_port,omitempty"`
}

// ClusterInfo fetches the cluster object.
func (c *Client) ClusterInfo(ctx context.Context) *Future[ClusterInfo] {
	return Call[ClusterInfo](ctx, c, Request{Name: "cluster.info", Method: http.MethodGet, Path: "/v1/cluster"})
}

// ClusterInfoSync is the blocking form of ClusterInfo.
func (c *Client) ClusterInfoSync(ctx context.Context) (ClusterInfo, error) {
	return c.ClusterInfo(ctx).Await()
}

// ClusterStats fetches cluster-wide statistics. The shape varies between
// cluster versions, so it is returned undecoded.
func (c *Client) ClusterStats(ctx context.Context) *Future[map[string]any] {
	return Call[map[string]any](ctx, c, Request{Name: "cluster.stats", Method: http.MethodGet, Path: "/v1/cluster/stats"})
}

// ClusterStatsSync is the blocking form of ClusterStats.
func (c *Client) ClusterStatsSync(ctx context.Context) (map[string]any, error) {
	return c.ClusterStats(ctx).Await()
}

// UpdateCluster applies a partial update to the cluster object.
func (c *Client) UpdateCluster(ctx context.Context, updates map[string]any) *Future[any] {
	return Call[any](ctx, c, Request{Name: "cluster.update", Method: http.MethodPut, Path: "/v1/cluster", Body: updates})
}

// UpdateClusterSync is the blocking form of UpdateCluster.
func (c *Client) UpdateClusterSync(ctx context.Context, updates map[string]any) (any, error) {
	return c.UpdateCluster(ctx, updates).Await()
}
