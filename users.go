package enterprise

import (
	"context"
	"net/http"
	"strconv"
)

// User is a cluster management user.
type User struct {
	UID         int    `json:"uid"`
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	Role        string `json:"role"`
	Status      string `json:"status,omitempty"`
	AuthMethod  string `json:"auth_method,omitempty"`
	EmailAlerts bool   `json:"email_alerts,omitempty"`
	RoleUIDs    []int  `json:"role_uids,omitempty"`
	Bdbs        []int  `json:"bdbs,omitempty"`
}

// CreateUserRequest is the body of POST /v1/users.
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	EmailAlerts *bool  `json:"email_alerts,omitempty"`
	RoleUIDs    []int  `json:"role_uids,omitempty"`
	AuthMethod  string `json:"auth_method,omitempty"`
}

func userPath(uid int) string {
	return "/v1/users/" + strconv.Itoa(uid)
}

func (c *Client) Users(ctx context.Context) *Future[[]User] {
	return Call[[]User](ctx, c, Request{Name: "users.list", Method: http.MethodGet, Path: "/v1/users"})
}

func (c *Client) UsersSync(ctx context.Context) ([]User, error) {
	return c.Users(ctx).Await()
}

func (c *Client) User(ctx context.Context, uid int) *Future[User] {
	return Call[User](ctx, c, Request{Name: "users.get", Method: http.MethodGet, Path: userPath(uid)})
}

func (c *Client) UserSync(ctx context.Context, uid int) (User, error) {
	return c.User(ctx, uid).Await()
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) *Future[User] {
	return Call[User](ctx, c, Request{Name: "users.create", Method: http.MethodPost, Path: "/v1/users", Body: req})
}

func (c *Client) CreateUserSync(ctx context.Context, req CreateUserRequest) (User, error) {
	return c.CreateUser(ctx, req).Await()
}

func (c *Client) DeleteUser(ctx context.Context, uid int) *Future[Empty] {
	return Call[Empty](ctx, c, Request{Name: "users.delete", Method: http.MethodDelete, Path: userPath(uid)})
}

func (c *Client) DeleteUserSync(ctx context.Context, uid int) error {
	_, err := c.DeleteUser(ctx, uid).Await()
	return err
}
