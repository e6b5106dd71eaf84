package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstat/internal/api"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient("test-service-key", 5*time.Second)
	client.SetBaseURL(server.URL)
	return client
}

func TestStatusSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("serviceKey")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"status_code": "OK",
			"request_cnt": 2,
			"match_cnt": 2,
			"data": [
				{"b_no": "1111111111", "b_stt": "계속사업자", "tax_type": "부가가치세 일반과세자"},
				{"b_no": "2222222222", "b_stt": "폐업자"}
			]
		}`))
	})

	records, err := client.Status(context.Background(), []string{"1111111111", "2222222222"})
	require.NoError(t, err)

	assert.Equal(t, "/status", gotPath)
	assert.Equal(t, "test-service-key", gotKey)
	assert.Equal(t, map[string][]string{"b_no": {"1111111111", "2222222222"}}, gotBody)

	require.Len(t, records, 2)
	assert.Equal(t, "1111111111", records[0]["b_no"])
	assert.Equal(t, "계속사업자", records[0]["b_stt"])
	assert.Equal(t, "폐업자", records[1]["b_stt"])
}

func TestStatusErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		contains string
	}{
		{name: "bad request", code: http.StatusBadRequest, contains: "잘못된 요청"},
		{name: "not found", code: http.StatusNotFound, contains: "찾을 수 없습니다"},
		{name: "missing parameter", code: http.StatusLengthRequired, contains: "필수 요청 파라미터"},
		{name: "over batch limit", code: http.StatusRequestEntityTooLarge, contains: "최대 100개"},
		{name: "server error", code: http.StatusInternalServerError, contains: "잠시 후 다시 시도"},
		{name: "unknown code carries the number", code: http.StatusServiceUnavailable, contains: "503"},
		{name: "teapot is unknown too", code: http.StatusTeapot, contains: "418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			})

			records, err := client.Status(context.Background(), []string{"1234567890"})
			assert.Nil(t, records)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)

			var apiErr *api.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.code, apiErr.StatusCode)
		})
	}
}

func TestStatusTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := api.NewClient("test-service-key", time.Second)
	client.SetBaseURL(server.URL)

	records, err := client.Status(context.Background(), []string{"1234567890"})
	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "네트워크 오류 발생")

	var apiErr *api.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestStatusMissingDataKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status_code": "OK"}`))
	})

	records, err := client.Status(context.Background(), []string{"1234567890"})
	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "유효한 데이터")
}

func TestStatusEmptyDataArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status_code": "OK", "match_cnt": 0, "data": []}`))
	})

	records, err := client.Status(context.Background(), []string{"1234567890"})
	require.NoError(t, err)
	assert.Empty(t, records)
}
