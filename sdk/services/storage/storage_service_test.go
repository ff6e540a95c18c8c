// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package storage_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/config"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/errs"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/services/storage"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/utils"
)

type countingSource struct {
	calls atomic.Int32
	m     utils.Mapping
	err   error
}

func (c *countingSource) Parse(string) (utils.Mapping, error) {
	c.calls.Add(1)
	return c.m, c.err
}

type request struct {
	method  string
	token   string
	payload map[string]string
}

type captured struct {
	mu   sync.Mutex
	last request
}

func (c *captured) snapshot() request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func endpoint(t *testing.T, status int, response string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		req := request{method: r.Method, token: r.Header.Get("auth-token")}
		_ = json.Unmarshal(b, &req.payload)
		c.mu.Lock()
		c.last = req
		c.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func newService(t *testing.T, url, token string, src storage.ConfigSource) *storage.StorageService {
	t.Helper()
	log, _ := test.NewNullLogger()
	svc, err := storage.NewStorageService(context.Background(), config.Config{
		Store: config.StoreConfig{Endpoint: url, AuthToken: token, ConfigPath: "/etc/s3manager/authorizers.ini"},
	}, storage.WithConfigSource(src), storage.WithLogger(log))
	require.NoError(t, err)
	return svc
}

func tokenSource(token string) *countingSource {
	return &countingSource{m: utils.Mapping{"authorizers": {"auth-token": token}}}
}

func TestNewStorageServiceRequiresEndpoint(t *testing.T) {
	_, err := storage.NewStorageService(context.Background(), config.Config{})
	assert.Error(t, err)
}

func TestUploadSuccess(t *testing.T) {
	srv, got := endpoint(t, http.StatusOK, `{"statusCode": 200}`)
	svc := newService(t, srv.URL, "preset", tokenSource("unused"))

	res, err := svc.UploadFile(context.Background(), "cobiatestbucket", "upload_file.txt", "Hello")
	require.NoError(t, err)
	assert.Equal(t, storage.Success(""), res)
	assert.True(t, res.Ok())

	assert.Equal(t, http.MethodPost, got.snapshot().method)
	assert.Equal(t, "preset", got.snapshot().token)
	assert.Equal(t, map[string]string{"bucketName": "cobiatestbucket", "objectName": "upload_file.txt", "content": "Hello"}, got.snapshot().payload)
}

func TestDownloadSuccess(t *testing.T) {
	srv, got := endpoint(t, http.StatusOK, `{"Body": "hello"}`)
	svc := newService(t, srv.URL, "preset", tokenSource("unused"))

	res, err := svc.DownloadFile(context.Background(), "bucketA", "f.txt")
	require.NoError(t, err)
	assert.Equal(t, storage.Result{Result: storage.OutcomeSuccess, Data: "hello"}, res)

	assert.Equal(t, http.MethodGet, got.snapshot().method)
	assert.Equal(t, map[string]string{"bucketName": "bucketA", "objectName": "f.txt"}, got.snapshot().payload)

	out, err := utils.Render(res, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":"success","data":"hello"}`, out)
}

func TestDownloadNonStringBody(t *testing.T) {
	srv, _ := endpoint(t, http.StatusOK, `{"Body": {"a": 1}}`)
	svc := newService(t, srv.URL, "preset", tokenSource("unused"))

	res, err := svc.DownloadFile(context.Background(), "b", "f.txt")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, res.Data)
}

func TestDownloadWithoutBodyIsTransportError(t *testing.T) {
	srv, _ := endpoint(t, http.StatusOK, `{}`)
	svc := newService(t, srv.URL, "preset", tokenSource("unused"))

	_, err := svc.DownloadFile(context.Background(), "b", "f.txt")
	assert.True(t, errs.IsTransportError(err))
}

func TestEndpointErrorIsFailure(t *testing.T) {
	srv, _ := endpoint(t, http.StatusOK, `{"errorType": "X", "errorMessage": "Y"}`)
	svc := newService(t, srv.URL, "preset", tokenSource("unused"))

	res, err := svc.UploadFile(context.Background(), "b", "o.txt", "c")
	require.NoError(t, err)
	assert.Equal(t, storage.Failure("Y"), res)
	assert.False(t, res.Ok())

	res, err = svc.DownloadFile(context.Background(), "b", "o.txt")
	require.NoError(t, err)
	assert.Equal(t, storage.Result{Result: storage.OutcomeFail, Reason: "Y"}, res)
}

func TestNon200IsTransportError(t *testing.T) {
	srv, _ := endpoint(t, http.StatusInternalServerError, `{"message": "Internal server error"}`)
	svc := newService(t, srv.URL, "preset", tokenSource("unused"))

	_, err := svc.UploadFile(context.Background(), "b", "o.txt", "c")
	var terr *errs.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)

	_, err = svc.DownloadFile(context.Background(), "b", "o.txt")
	assert.True(t, errs.IsTransportError(err))
}

func TestUndecodableBodyIsTransportError(t *testing.T) {
	srv, _ := endpoint(t, http.StatusOK, `not json`)
	svc := newService(t, srv.URL, "preset", tokenSource("unused"))

	_, err := svc.UploadFile(context.Background(), "b", "o.txt", "c")
	assert.True(t, errs.IsTransportError(err))
}

func TestTokenResolvedOnce(t *testing.T) {
	srv, got := endpoint(t, http.StatusOK, `{"Body": "x"}`)
	src := tokenSource("from-file")
	svc := newService(t, srv.URL, "", src)

	_, err := svc.DownloadFile(context.Background(), "b", "o.txt")
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, "from-file", got.snapshot().token)

	_, err = svc.UploadFile(context.Background(), "b", "o.txt", "c")
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestTokenKeptAfterEndpointFailure(t *testing.T) {
	srv, _ := endpoint(t, http.StatusBadGateway, `{}`)
	src := tokenSource("from-file")
	svc := newService(t, srv.URL, "", src)

	_, err := svc.UploadFile(context.Background(), "b", "o.txt", "c")
	require.Error(t, err)
	_, err = svc.UploadFile(context.Background(), "b", "o.txt", "c")
	require.Error(t, err)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestPresetTokenSkipsConfig(t *testing.T) {
	srv, got := endpoint(t, http.StatusOK, `{}`)
	src := tokenSource("from-file")
	svc := newService(t, srv.URL, "", src)
	svc.SetAuthToken("explicit")

	_, err := svc.UploadFile(context.Background(), "b", "o.txt", "c")
	require.NoError(t, err)
	assert.Zero(t, src.calls.Load())
	assert.Equal(t, "explicit", got.snapshot().token)
}

func TestConcurrentCallsResolveOnce(t *testing.T) {
	srv, _ := endpoint(t, http.StatusOK, `{}`)
	src := tokenSource("from-file")
	svc := newService(t, srv.URL, "", src)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.UploadFile(context.Background(), "b", "o.txt", "c")
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestMissingConfigIsConfigNotFound(t *testing.T) {
	srv, _ := endpoint(t, http.StatusOK, `{}`)
	path := filepath.Join(t.TempDir(), "authorizers.ini")
	log, hook := test.NewNullLogger()
	svc, err := storage.NewStorageService(context.Background(), config.Config{
		Store: config.StoreConfig{Endpoint: srv.URL, ConfigPath: path},
	}, storage.WithLogger(log))
	require.NoError(t, err)

	_, err = svc.UploadFile(context.Background(), "b", "o.txt", "c")
	var cnf *errs.ConfigNotFoundError
	require.ErrorAs(t, err, &cnf)
	assert.Equal(t, path, cnf.Path)
	assert.Contains(t, err.Error(), path)
	assert.Empty(t, hook.AllEntries(), "no request is attempted without a token")
}

func TestMissingTokenKeyIsConfigError(t *testing.T) {
	srv, _ := endpoint(t, http.StatusOK, `{}`)
	src := &countingSource{m: utils.Mapping{"DEFAULT": {}, "authorizers": {"other": "x"}}}
	svc := newService(t, srv.URL, "", src)

	_, err := svc.DownloadFile(context.Background(), "b", "o.txt")
	assert.True(t, errs.IsConfigError(err))
}

func TestTokenFromRealConfigFile(t *testing.T) {
	srv, got := endpoint(t, http.StatusOK, `{"Body": "hi"}`)
	path := filepath.Join(t.TempDir(), "authorizers.ini")
	require.NoError(t, os.WriteFile(path, []byte("[authorizers]\nauth-token = secret-1\n"), 0o600))

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	svc, err := storage.NewStorageService(context.Background(), config.Config{
		Store: config.StoreConfig{Endpoint: srv.URL, ConfigPath: path},
	}, storage.WithLogger(log))
	require.NoError(t, err)

	res, err := svc.DownloadFile(context.Background(), "b", "o.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", res.Data)
	assert.Equal(t, "secret-1", got.snapshot().token)

	for _, e := range hook.AllEntries() {
		s, _ := e.String()
		assert.NotContains(t, s, "secret-1")
	}
}

func TestTokenWithCommentCharactersSentVerbatim(t *testing.T) {
	srv, got := endpoint(t, http.StatusOK, `{}`)
	path := filepath.Join(t.TempDir(), "authorizers.ini")
	require.NoError(t, os.WriteFile(path, []byte("[authorizers]\nauth-token = abc;def#ghi\n"), 0o600))

	log, _ := test.NewNullLogger()
	svc, err := storage.NewStorageService(context.Background(), config.Config{
		Store: config.StoreConfig{Endpoint: srv.URL, ConfigPath: path},
	}, storage.WithLogger(log))
	require.NoError(t, err)

	_, err = svc.UploadFile(context.Background(), "b", "o.txt", "c")
	require.NoError(t, err)
	assert.Equal(t, "abc;def#ghi", got.snapshot().token)
}

func TestMalformedConfigIsConfigError(t *testing.T) {
	srv, _ := endpoint(t, http.StatusOK, `{}`)
	path := filepath.Join(t.TempDir(), "authorizers.ini")
	require.NoError(t, os.WriteFile(path, []byte("[authorizers\nauth-token = abc\n"), 0o600))

	log, _ := test.NewNullLogger()
	svc, err := storage.NewStorageService(context.Background(), config.Config{
		Store: config.StoreConfig{Endpoint: srv.URL, ConfigPath: path},
	}, storage.WithLogger(log))
	require.NoError(t, err)

	_, err = svc.UploadFile(context.Background(), "b", "o.txt", "c")
	assert.True(t, errs.IsConfigError(err), "got %v", err)
	assert.False(t, errs.IsConfigNotFoundError(err))
}
