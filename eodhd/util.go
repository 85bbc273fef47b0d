package eodhd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// the query holds the API key, never log it.
	zap.S().Debugw("eodhd request", "method", resp.Request.Method, "host", resp.Request.URL.Host, "path", resp.Request.URL.Path, "status", resp.Status)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}
