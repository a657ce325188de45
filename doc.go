// Package enterprise is a client for the Redis Enterprise cluster REST API.
//
// Every operation comes in two forms sharing one implementation:
//
//   - X(ctx, ...) starts the call and returns a *Future
//   - XSync(ctx, ...) is X(ctx, ...).Await()
//
// All failures are reported as *Error, whose Kind tells transport, decode and
// API failures apart:
//
//	client, err := enterprise.New(enterprise.Config{
//	    BaseURL:  "https://cluster.example.com:9443",
//	    Username: "admin@redis.local",
//	    Password: "secret",
//	    Insecure: true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	dbs, err := client.DatabasesSync(ctx)
//
//	f := client.Node(ctx, 1)
//	// ... do other work ...
//	node, err := f.Await()
//
// The client never retries. Use IsRetryable to decide whether to try again.
// Connections are pooled per client and bounded by Config.MaxConnections.
package enterprise
