package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/client/mock"
	"github.com/viant/storefront/schema"
)

type harness struct {
	server  *mock.HTTPTestServer
	session string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	server, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	t.Cleanup(server.Close)
	return &harness{
		server:  server,
		session: filepath.Join(t.TempDir(), "session.json"),
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	}
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()
	args = append([]string{"--url", h.server.URL, "--session", h.session, "--log-level", "disabled"}, args...)
	return New(h.stdout, h.stderr).Run(args)
}

func TestApp_Session(t *testing.T) {
	h := newHarness(t)

	err := h.run("profile")
	assert.ErrorIs(t, err, ErrLoginRequired)

	require.NoError(t, h.run("login", mock.DefaultPhoneNumber, mock.DefaultPassword))
	assert.FileExists(t, h.session)

	require.NoError(t, h.run("profile"))
	profile := &schema.Profile{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), profile))
	assert.Equal(t, "Jane Doe", profile.Name)

	h.server.ExpireAccessTokens()
	require.NoError(t, h.run("profile"))
	assert.Equal(t, 1, h.server.Hits(mock.RefreshPath))

	h.server.ExpireAccessTokens()
	h.server.RevokeRefreshTokens()
	assert.Error(t, h.run("cart"))
	assert.Contains(t, h.stderr.String(), "please login")
	assert.NoFileExists(t, h.session)

	require.NoError(t, h.run("session"))
	state := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &state))
	assert.Equal(t, false, state["authenticated"])
}

func TestApp_Shopping(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("login", mock.DefaultPhoneNumber, mock.DefaultPassword))

	require.NoError(t, h.run("products", "--search", "watch"))
	var products []schema.Product
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &products))
	require.Len(t, products, 1)

	require.NoError(t, h.run("cart-add", "--qty", "2", itoa(products[0].ID)))
	cart := &schema.Cart{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), cart))
	assert.Equal(t, schema.Decimal("9998.00"), cart.Total)

	require.NoError(t, h.run("order"))
	order := &schema.Order{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), order))
	assert.Equal(t, "pending", order.Status)

	require.NoError(t, h.run("voucher-purchase", "250"))
	require.NoError(t, h.run("notifications", "--unread"))
	var notifications []schema.Notification
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &notifications))
	assert.Len(t, notifications, 2)

	require.NoError(t, h.run("notification-read", itoa(notifications[0].ID)))
	require.NoError(t, h.run("notifications", "--unread"))
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &notifications))
	assert.Len(t, notifications, 1)

	require.NoError(t, h.run("request", "GET", "categories/"))
	var categories []schema.Category
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &categories))
	assert.Len(t, categories, 2)
}

func TestApp_Request(t *testing.T) {
	h := newHarness(t)

	err := h.run("login", mock.DefaultPhoneNumber, "wrong")
	assert.Error(t, err)
	assert.NotContains(t, h.stderr.String(), "please login")

	require.NoError(t, h.run("login", mock.DefaultPhoneNumber, mock.DefaultPassword))
	data := filepath.Join(t.TempDir(), "review.json")
	require.NoError(t, os.WriteFile(data, []byte(`{"rating":5,"comment":"great"}`), 0o644))
	require.NoError(t, h.run("request", "--data", "@"+data, "post", "products/smart-watch/reviews/"))
	review := &schema.Review{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), review))
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Jane Doe", review.User)

	assert.Error(t, h.run("request", "--data", "@"+filepath.Join(t.TempDir(), "missing.json"), "post", "products/smart-watch/reviews/"))
}

func TestApp_Seller(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("login", mock.DefaultPhoneNumber, mock.DefaultPassword))
	require.NoError(t, h.run("seller-register", "--shop", "Gadgets", "--pan", "ABCDE1234F", "--account", "0011"))
	require.NoError(t, h.server.ApproveSeller(mock.DefaultPhoneNumber))

	require.NoError(t, h.run("seller-create", "--title", "USB Cable", "--price", "199.00", "--stock", "3"))
	product := &schema.Product{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), product))
	assert.Equal(t, 3, product.Stock)

	require.NoError(t, h.run("seller-update", "--active", "false", itoa(product.ID)))
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), product))
	assert.False(t, product.IsActive)

	image := filepath.Join(t.TempDir(), "cable.png")
	require.NoError(t, os.WriteFile(image, []byte("png"), 0o644))
	require.NoError(t, h.run("seller-upload", itoa(product.ID), image))
	var images []schema.ProductImage
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Contains(t, images[0].Image, "cable.png")

	require.NoError(t, h.run("seller-delete", itoa(product.ID)))
}

func TestApp_Config(t *testing.T) {
	h := newHarness(t)
	config := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(config, []byte("url: "+h.server.URL+"\nlogLevel: disabled\n"), 0o644))

	stdout := &bytes.Buffer{}
	require.NoError(t, New(stdout, &bytes.Buffer{}).Run([]string{"-c", config, "--session", h.session, "categories"}))
	var categories []schema.Category
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &categories))
	assert.Len(t, categories, 2)

	t.Setenv("STOREFRONT_URL", h.server.URL)
	stdout.Reset()
	require.NoError(t, New(stdout, &bytes.Buffer{}).Run([]string{"--session", h.session, "--log-level", "disabled", "product", "smart-watch"}))
	product := &schema.Product{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), product))
	assert.Equal(t, "Smart Watch", product.Title)
}

func TestApp_Help(t *testing.T) {
	stdout := &bytes.Buffer{}
	require.NoError(t, New(stdout, &bytes.Buffer{}).Run([]string{"--help"}))
	assert.Contains(t, stdout.String(), "cart-add")

	assert.Error(t, New(stdout, &bytes.Buffer{}).Run([]string{"login"}))
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
