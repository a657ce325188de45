package enterprise

import (
	"context"
	"net/http"
)

// The raw methods reach endpoints without a typed wrapper. Responses are
// decoded into generic JSON values (map[string]any, []any, ...); an empty
// success body yields nil.

func (c *Client) Get(ctx context.Context, path string) *Future[any] {
	return Call[any](ctx, c, Request{Name: "raw.get", Method: http.MethodGet, Path: path})
}

func (c *Client) GetSync(ctx context.Context, path string) (any, error) {
	return c.Get(ctx, path).Await()
}

func (c *Client) Post(ctx context.Context, path string, body any) *Future[any] {
	return Call[any](ctx, c, Request{Name: "raw.post", Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) PostSync(ctx context.Context, path string, body any) (any, error) {
	return c.Post(ctx, path, body).Await()
}

func (c *Client) Put(ctx context.Context, path string, body any) *Future[any] {
	return Call[any](ctx, c, Request{Name: "raw.put", Method: http.MethodPut, Path: path, Body: body})
}

func (c *Client) PutSync(ctx context.Context, path string, body any) (any, error) {
	return c.Put(ctx, path, body).Await()
}

func (c *Client) Patch(ctx context.Context, path string, body any) *Future[any] {
	return Call[any](ctx, c, Request{Name: "raw.patch", Method: http.MethodPatch, Path: path, Body: body})
}

func (c *Client) PatchSync(ctx context.Context, path string, body any) (any, error) {
	return c.Patch(ctx, path, body).Await()
}

// Delete issues a DELETE. An empty success body is reported as
// {"status": "deleted"}.
func (c *Client) Delete(ctx context.Context, path string) *Future[any] {
	return mapFuture(Call[any](ctx, c, Request{Name: "raw.delete", Method: http.MethodDelete, Path: path}), func(v any) any {
		if v == nil {
			return map[string]any{"status": "deleted"}
		}
		return v
	})
}

func (c *Client) DeleteSync(ctx context.Context, path string) (any, error) {
	return c.Delete(ctx, path).Await()
}
