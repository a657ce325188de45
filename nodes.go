package enterprise

import (
	"context"
	"net/http"
	"strconv"
)

// Node is a cluster node.
type Node struct {
	UID             int      `json:"uid"`
	Addr            string   `json:"addr,omitempty"`
	Status          string   `json:"status"`
	AcceptServers   bool     `json:"accept_servers,omitempty"`
	Architecture    string   `json:"architecture,omitempty"`
	Cores           int      `json:"cores,omitempty"`
	ExternalAddr    []string `json:"external_addr,omitempty"`
	TotalMemory     uint64   `json:"total_memory,omitempty"`
	OSVersion       string   `json:"os_version,omitempty"`
	RackID          string   `json:"rack_id,omitempty"`
	ShardCount      int      `json:"shard_count,omitempty"`
	Uptime          uint64   `json:"uptime,omitempty"`
	SoftwareVersion string   `json:"software_version,omitempty"`
}

// NodeStats holds the sampled statistics of a node.
type NodeStats struct {
	UID       int              `json:"uid"`
	Intervals []map[string]any `json:"intervals"`
}

func nodePath(uid int) string {
	return "/v1/nodes/" + strconv.Itoa(uid)
}

func (c *Client) Nodes(ctx context.Context) *Future[[]Node] {
	return Call[[]Node](ctx, c, Request{Name: "nodes.list", Method: http.MethodGet, Path: "/v1/nodes"})
}

func (c *Client) NodesSync(ctx context.Context) ([]Node, error) {
	return c.Nodes(ctx).Await()
}

func (c *Client) Node(ctx context.Context, uid int) *Future[Node] {
	return Call[Node](ctx, c, Request{Name: "nodes.get", Method: http.MethodGet, Path: nodePath(uid)})
}

func (c *Client) NodeSync(ctx context.Context, uid int) (Node, error) {
	return c.Node(ctx, uid).Await()
}

func (c *Client) NodeStats(ctx context.Context, uid int) *Future[NodeStats] {
	return Call[NodeStats](ctx, c, Request{Name: "nodes.stats", Method: http.MethodGet, Path: nodePath(uid) + "/stats"})
}

func (c *Client) NodeStatsSync(ctx context.Context, uid int) (NodeStats, error) {
	return c.NodeStats(ctx, uid).Await()
}
