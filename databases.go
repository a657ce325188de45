package enterprise

import (
	"context"
	"net/http"
	"strconv"
)

// DatabaseInfo is a database (bdb) as returned by /v1/bdbs.
type DatabaseInfo struct {
	UID             int            `json:"uid"`
	Name            string         `json:"name"`
	Port            int            `json:"port,omitempty"`
	Status          string         `json:"status,omitempty"`
	MemorySize      uint64         `json:"memory_size,omitempty"`
	MemoryUsed      uint64         `json:"memory_used,omitempty"`
	Type            string         `json:"type,omitempty"`
	Version         string         `json:"version,omitempty"`
	ShardsCount     int            `json:"shards_count,omitempty"`
	Sharding        bool           `json:"sharding,omitempty"`
	Replication     bool           `json:"replication,omitempty"`
	Persistence     string         `json:"persistence,omitempty"`
	DataPersistence string         `json:"data_persistence,omitempty"`
	EvictionPolicy  string         `json:"eviction_policy,omitempty"`
	Endpoints       []EndpointInfo `json:"endpoints,omitempty"`
	CreatedTime     string         `json:"created_time,omitempty"`
	LastChangedTime string         `json:"last_changed_time,omitempty"`
	TLSMode         string         `json:"tls_mode,omitempty"`
	ModuleList      []ModuleConfig `json:"module_list,omitempty"`
}

// EndpointInfo is one endpoint of a database.
type EndpointInfo struct {
	UID         string   `json:"uid,omitempty"`
	Addr        []string `json:"addr,omitempty"`
	Port        int      `json:"port,omitempty"`
	DNSName     string   `json:"dns_name,omitempty"`
	ProxyPolicy string   `json:"proxy_policy,omitempty"`
	AddrType    string   `json:"addr_type,omitempty"`
}

// ModuleConfig enables a Redis module on a database.
type ModuleConfig struct {
	ModuleName string `json:"module_name"`
	ModuleArgs string `json:"module_args,omitempty"`
}

// CreateDatabaseRequest is the body of POST /v1/bdbs. Only Name is required.
type CreateDatabaseRequest struct {
	Name                    string         `json:"name"`
	MemorySize              uint64         `json:"memory_size,omitempty"`
	Port                    int            `json:"port,omitempty"`
	Replication             *bool          `json:"replication,omitempty"`
	Persistence             string         `json:"persistence,omitempty"`
	EvictionPolicy          string         `json:"eviction_policy,omitempty"`
	Sharding                *bool          `json:"sharding,omitempty"`
	ShardsCount             int            `json:"shards_count,omitempty"`
	ProxyPolicy             string         `json:"proxy_policy,omitempty"`
	RackAware               *bool          `json:"rack_aware,omitempty"`
	ModuleList              []ModuleConfig `json:"module_list,omitempty"`
	Crdt                    *bool          `json:"crdt,omitempty"`
	AuthenticationRedisPass string         `json:"authentication_redis_pass,omitempty"`
}

func databasePath(uid int) string {
	return "/v1/bdbs/" + strconv.Itoa(uid)
}

// Databases lists all databases in the cluster.
func (c *Client) Databases(ctx context.Context) *Future[[]DatabaseInfo] {
	return Call[[]DatabaseInfo](ctx, c, Request{Name: "bdbs.list", Method: http.MethodGet, Path: "/v1/bdbs"})
}

// DatabasesSync is the blocking form of Databases.
func (c *Client) DatabasesSync(ctx context.Context) ([]DatabaseInfo, error) {
	return c.Databases(ctx).Await()
}

// Database fetches one database by uid.
func (c *Client) Database(ctx context.Context, uid int) *Future[DatabaseInfo] {
	return Call[DatabaseInfo](ctx, c, Request{Name: "bdbs.get", Method: http.MethodGet, Path: databasePath(uid)})
}

// DatabaseSync is the blocking form of Database.
func (c *Client) DatabaseSync(ctx context.Context, uid int) (DatabaseInfo, error) {
	return c.Database(ctx, uid).Await()
}

// CreateDatabase creates a database and returns it as stored by the cluster.
func (c *Client) CreateDatabase(ctx context.Context, req CreateDatabaseRequest) *Future[DatabaseInfo] {
	return Call[DatabaseInfo](ctx, c, Request{Name: "bdbs.create", Method: http.MethodPost, Path: "/v1/bdbs", Body: req})
}

// CreateDatabaseSync is the blocking form of CreateDatabase.
func (c *Client) CreateDatabaseSync(ctx context.Context, req CreateDatabaseRequest) (DatabaseInfo, error) {
	return c.CreateDatabase(ctx, req).Await()
}

// UpdateDatabase applies a partial update to a database.
func (c *Client) UpdateDatabase(ctx context.Context, uid int, updates map[string]any) *Future[DatabaseInfo] {
	return Call[DatabaseInfo](ctx, c, Request{Name: "bdbs.update", Method: http.MethodPut, Path: databasePath(uid), Body: updates})
}

// UpdateDatabaseSync is the blocking form of UpdateDatabase.
func (c *Client) UpdateDatabaseSync(ctx context.Context, uid int, updates map[string]any) (DatabaseInfo, error) {
	return c.UpdateDatabase(ctx, uid, updates).Await()
}

// DeleteDatabase deletes a database. The cluster removes it asynchronously.
func (c *Client) DeleteDatabase(ctx context.Context, uid int) *Future[Empty] {
	return Call[Empty](ctx, c, Request{Name: "bdbs.delete", Method: http.MethodDelete, Path: databasePath(uid)})
}

// DeleteDatabaseSync is the blocking form of DeleteDatabase.
func (c *Client) DeleteDatabaseSync(ctx context.Context, uid int) error {
	_, err := c.DeleteDatabase(ctx, uid).Await()
	return err
}

// DatabaseStats fetches statistics for one database.
func (c *Client) DatabaseStats(ctx context.Context, uid int) *Future[map[string]any] {
	return Call[map[string]any](ctx, c, Request{Name: "bdbs.stats", Method: http.MethodGet, Path: databasePath(uid) + "/stats"})
}

// DatabaseStatsSync is the blocking form of DatabaseStats.
func (c *Client) DatabaseStatsSync(ctx context.Context, uid int) (map[string]any, error) {
	return c.DatabaseStats(ctx, uid).Await()
}
