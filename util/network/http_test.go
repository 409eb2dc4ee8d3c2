package network

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewHttpClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(r.UserAgent()))
	})
	mux.HandleFunc("/timeout/", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second * 2)
	})
	httpSrv := httptest.NewServer(mux)
	defer httpSrv.Close()
	httpsSrv := httptest.NewTLSServer(mux)
	defer httpsSrv.Close()

	client := NewHttpClient(time.Second, "ds_helper test")

	resp, err := client.Get(httpSrv.URL + "/ok/1")
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, 200, resp.StatusCode, "should return OK status")
	body := new(bytes.Buffer)
	_, _ = body.ReadFrom(resp.Body)
	resp.Body.Close()
	assert.Exactly(t, "ds_helper test", body.String(), "should send user agent")

	resp, err = client.Get(httpsSrv.URL + "/ok/1")
	assert.NoError(t, err, "should accept self-signed certificate")
	assert.Exactly(t, 200, resp.StatusCode, "should return OK status")
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, httpSrv.URL+"/ok/1", nil)
	req.Header.Set("User-Agent", "custom")
	resp, err = client.Do(req)
	assert.NoError(t, err, "should not return error")
	body.Reset()
	_, _ = body.ReadFrom(resp.Body)
	resp.Body.Close()
	assert.Exactly(t, "custom", body.String(), "should not override user agent of request")

	resp, err = client.Get(strings.Replace(httpSrv.URL, "http://", "https://", 1) + "/ok/1")
	assert.Nil(t, resp, "should return empty response")
	assert.Exactly(t, HTTPSClientHTTPServer, GetErrType(err), "should return HTTP response to HTTPS client error")

	resp, err = client.Get(httpSrv.URL + "/timeout/1")
	assert.Nil(t, resp, "should return empty response")
	assert.Exactly(t, Timeout, GetErrType(err), "should return timeout error")

	deadSrv := httptest.NewServer(mux)
	deadURL := deadSrv.URL
	deadSrv.Close()
	resp, err = client.Get(deadURL + "/ok/1")
	assert.Nil(t, resp, "should return empty response")
	assert.Exactly(t, Refused, GetErrType(err), "should refuse connections to the closed port")
}
