package transport

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// clone copies r so that its body can be replayed through GetBody. Without GetBody the
// original body is consumed and closed; r itself is left unmodified.
func clone(r *http.Request) (*http.Request, error) {
	cloned := r.Clone(r.Context())
	if r.Body == nil || r.Body == http.NoBody {
		return cloned, nil
	}
	if r.GetBody != nil {
		body, err := r.GetBody()
		if err != nil {
			return nil, err
		}
		cloned.Body = body
		return cloned, nil
	}
	// deep-copy body for POST replay
	buf, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()
	cloned.Body = io.NopCloser(bytes.NewReader(buf))
	cloned.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	return cloned, nil
}

func bearer(token string) string {
	return bearerPrefix + token
}

func bearerToken(header http.Header) string {
	value := header.Get("Authorization")
	if !strings.HasPrefix(value, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(value, bearerPrefix)
}

func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
