package enterprise

import (
	"context"
	"net/http"
)

// License describes the installed cluster license.
type License struct {
	Key            string   `json:"key,omitempty"`
	License        string   `json:"license,omitempty"`
	Type           string   `json:"type,omitempty"`
	Expired        bool     `json:"expired"`
	ActivationDate string   `json:"activation_date,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
	ClusterName    string   `json:"cluster_name,omitempty"`
	Owner          string   `json:"owner,omitempty"`
	ShardsLimit    int      `json:"shards_limit,omitempty"`
	NodeLimit      int      `json:"node_limit,omitempty"`
	Features       []string `json:"features,omitempty"`
}

// LicenseUsage reports consumption against the license limits.
type LicenseUsage struct {
	ShardsUsed  int    `json:"shards_used"`
	ShardsLimit int    `json:"shards_limit"`
	NodesUsed   int    `json:"nodes_used"`
	NodesLimit  int    `json:"nodes_limit"`
	RAMUsed     uint64 `json:"ram_used,omitempty"`
	RAMLimit    uint64 `json:"ram_limit,omitempty"`
}

func (c *Client) License(ctx context.Context) *Future[License] {
	return Call[License](ctx, c, Request{Name: "license.get", Method: http.MethodGet, Path: "/v1/license"})
}

func (c *Client) LicenseSync(ctx context.Context) (License, error) {
	return c.License(ctx).Await()
}

func (c *Client) LicenseUsage(ctx context.Context) *Future[LicenseUsage] {
	return Call[LicenseUsage](ctx, c, Request{Name: "license.usage", Method: http.MethodGet, Path: "/v1/license/usage"})
}

func (c *Client) LicenseUsageSync(ctx context.Context) (LicenseUsage, error) {
	return c.LicenseUsage(ctx).Await()
}
