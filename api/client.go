package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Client is a thin credentialed wrapper around the shop REST API. It never
// stores session state itself; the caller passes the visitor's Cookie
// header on every credentialed request.
type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	return &Client{base: baseURL, http: &http.Client{}}
}

// newRequest builds a JSON request against the API base URL. An empty
// cookie means an uncredentialed call.
func (c *Client) newRequest(ctx context.Context, method, path, cookie string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return req, nil
}

// send executes the request and decodes a 2xx JSON body into out (out may
// be nil). Non-2xx responses come back as *Error.
func (c *Client) send(req *http.Request, out any) (*http.Response, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return res, decodeError(res)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return res, err
		}
	} else {
		io.Copy(io.Discard, res.Body)
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path, cookie string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, cookie, body)
	if err != nil {
		return err
	}
	_, err = c.send(req, out)
	return err
}
