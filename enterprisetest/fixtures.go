package enterprisetest

import "maps"

// Fixture builders produce JSON documents shaped like real cluster
// responses. Each builder starts from sensible defaults.

// DatabaseFixture builds a /v1/bdbs document.
type DatabaseFixture struct {
	doc map[string]any
}

func Database(uid int, name string) *DatabaseFixture {
	return &DatabaseFixture{doc: map[string]any{
		"uid":          uid,
		"name":         name,
		"type":         "redis",
		"status":       "active",
		"memory_size":  uint64(1 << 30),
		"port":         12000 + uid,
		"shards_count": 1,
		"replication":  false,
		"persistence":  "disabled",
		"version":      "7.2.4",
	}}
}

func (f *DatabaseFixture) MemorySize(size uint64) *DatabaseFixture {
	f.doc["memory_size"] = size
	return f
}

func (f *DatabaseFixture) Port(port int) *DatabaseFixture {
	f.doc["port"] = port
	return f
}

func (f *DatabaseFixture) Status(status string) *DatabaseFixture {
	f.doc["status"] = status
	return f
}

func (f *DatabaseFixture) Type(dbType string) *DatabaseFixture {
	f.doc["type"] = dbType
	return f
}

func (f *DatabaseFixture) Replication(enabled bool) *DatabaseFixture {
	f.doc["replication"] = enabled
	return f
}

func (f *DatabaseFixture) Persistence(mode string) *DatabaseFixture {
	f.doc["persistence"] = mode
	return f
}

func (f *DatabaseFixture) ShardsCount(n int) *DatabaseFixture {
	f.doc["shards_count"] = n
	return f
}

func (f *DatabaseFixture) Build() map[string]any {
	return maps.Clone(f.doc)
}

// NodeFixture builds a /v1/nodes document.
type NodeFixture struct {
	doc map[string]any
}

func Node(uid int, addr string) *NodeFixture {
	return &NodeFixture{doc: map[string]any{
		"uid":              uid,
		"addr":             addr,
		"status":           "active",
		"accept_servers":   true,
		"architecture":     "x86_64",
		"cores":            4,
		"total_memory":     uint64(16 << 30),
		"os_version":       "Ubuntu 22.04",
		"shard_count":      0,
		"software_version": "7.4.2-54",
	}}
}

func (f *NodeFixture) Status(status string) *NodeFixture {
	f.doc["status"] = status
	return f
}

func (f *NodeFixture) TotalMemory(memory uint64) *NodeFixture {
	f.doc["total_memory"] = memory
	return f
}

func (f *NodeFixture) Cores(cores int) *NodeFixture {
	f.doc["cores"] = cores
	return f
}

func (f *NodeFixture) RackID(rackID string) *NodeFixture {
	f.doc["rack_id"] = rackID
	return f
}

func (f *NodeFixture) Build() map[string]any {
	return maps.Clone(f.doc)
}

// ClusterFixture builds a /v1/cluster document.
type ClusterFixture struct {
	doc map[string]any
}

func Cluster(name string) *ClusterFixture {
	return &ClusterFixture{doc: map[string]any{
		"name":            name,
		"status":          "active",
		"version":         "7.4.2-54",
		"license_expired": false,
		"nodes":           []int{1},
		"databases":       []int{},
		"rack_aware":      false,
		"cnm_https_port":  9443,
	}}
}

func (f *ClusterFixture) Nodes(uids ...int) *ClusterFixture {
	f.doc["nodes"] = uids
	return f
}

func (f *ClusterFixture) Databases(uids ...int) *ClusterFixture {
	f.doc["databases"] = uids
	return f
}

func (f *ClusterFixture) Build() map[string]any {
	return maps.Clone(f.doc)
}

// UserFixture builds a /v1/users document.
type UserFixture struct {
	doc map[string]any
}

func User(uid int, email string) *UserFixture {
	return &UserFixture{doc: map[string]any{
		"uid":         uid,
		"email":       email,
		"name":        "",
		"role":        "db_viewer",
		"status":      "active",
		"auth_method": "regular",
	}}
}

func (f *UserFixture) Name(name string) *UserFixture {
	f.doc["name"] = name
	return f
}

func (f *UserFixture) Role(role string) *UserFixture {
	f.doc["role"] = role
	return f
}

func (f *UserFixture) Build() map[string]any {
	return maps.Clone(f.doc)
}

// LicenseFixture builds a /v1/license document.
type LicenseFixture struct {
	doc map[string]any
}

func License() *LicenseFixture {
	return &LicenseFixture{doc: map[string]any{
		"license":         "----- LICENSE START -----",
		"type":            "trial",
		"expired":         false,
		"activation_date": "2024-01-01T00:00:00Z",
		"expiration_date": "2030-01-01T00:00:00Z",
		"cluster_name":    "test-cluster",
		"shards_limit":    4,
	}}
}

func ExpiredLicense() *LicenseFixture {
	f := License()
	f.doc["expired"] = true
	f.doc["expiration_date"] = "2020-01-01T00:00:00Z"
	return f
}

func (f *LicenseFixture) ShardsLimit(limit int) *LicenseFixture {
	f.doc["shards_limit"] = limit
	return f
}

func (f *LicenseFixture) Build() map[string]any {
	return maps.Clone(f.doc)
}

