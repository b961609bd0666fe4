package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/client/auth/transport"
	"github.com/viant/storefront/schema"
	"golang.org/x/oauth2"
)

// Login exchanges a phone number and password for a credential pair and stores it.
// Any previous session is dropped first so that a stale credential never rides along.
func (c *Client) Login(ctx context.Context, phoneNumber, password string) (*oauth2.Token, error) {
	if err := c.store.Clear(); err != nil {
		return nil, err
	}
	credentials := &schema.Credentials{}
	request := &schema.LoginRequest{PhoneNumber: phoneNumber, Password: password}
	if err := c.send(transport.WithoutRefresh(ctx), http.MethodPost, "login/", request, credentials); err != nil {
		return nil, err
	}
	if credentials.Access == "" {
		return nil, fmt.Errorf("login response carried no access credential")
	}
	return c.storeCredentials(credentials)
}

// Signup registers an account. When the API issues credentials they are stored and
// returned; otherwise the returned token is nil and the caller should Login.
func (c *Client) Signup(ctx context.Context, request *schema.SignupRequest) (*oauth2.Token, error) {
	credentials := &schema.Credentials{}
	if err := c.send(transport.WithoutRefresh(ctx), http.MethodPost, "signup/", request, credentials); err != nil {
		return nil, err
	}
	if credentials.Access == "" {
		return nil, nil
	}
	return c.storeCredentials(credentials)
}

// Logout ends the local session.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// IsAuthenticated reports whether an access credential is stored.
func (c *Client) IsAuthenticated() bool {
	access, ok := c.store.Get(store.AccessKey)
	return ok && access != ""
}

// Session returns the stored credential pair, nil for an anonymous session.
func (c *Client) Session() *oauth2.Token {
	token := store.Credentials(c.store)
	if token == nil {
		return nil
	}
	if expiry, ok := transport.ExpiresAt(token.AccessToken); ok {
		token.Expiry = expiry
	}
	return token
}

func (c *Client) Profile(ctx context.Context) (*schema.Profile, error) {
	profile := &schema.Profile{}
	if err := c.get(ctx, "profile/", profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) storeCredentials(credentials *schema.Credentials) (*oauth2.Token, error) {
	token := &oauth2.Token{
		TokenType:    "Bearer",
		AccessToken:  credentials.Access,
		RefreshToken: credentials.Refresh,
	}
	if err := store.SetCredentials(c.store, token); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	if expiry, ok := transport.ExpiresAt(token.AccessToken); ok {
		token.Expiry = expiry
	}
	return token, nil
}
