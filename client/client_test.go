package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mocks "github.com/quotefeed/dibbs/internal/mocks/client"
)

const testUA = "dibbs-test/1.0 test@example.com"

func newTestClient(m *mocks.MockHttpRequestDoer) *Client {
	return New(WithHttpClient(m)).WithUserAgent(testUA)
}

func textResponse(status int, body string) *http.Response {
	rec := httptest.NewRecorder()
	rec.WriteHeader(status)
	_, _ = rec.WriteString(body)
	return rec.Result()
}

func TestNew(t *testing.T) {
	c := New()
	require.NotNil(t, c)
	assert.NotNil(t, c.client)
	assert.NotNil(t, c.limiter)
	assert.Equal(t, dibbsBaseURL, c.BaseURL())

	c2 := New().WithBaseURL("http://127.0.0.1:8080")
	assert.Equal(t, "http://127.0.0.1:8080", c2.BaseURL())
}

func TestClient_Get_headers(t *testing.T) {
	m := mocks.NewMockHttpRequestDoer(t)
	m.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, testUA, req.Header.Get("User-Agent"))
			assert.Equal(t, consentCookie, req.Header.Get("Cookie"))
			return textResponse(http.StatusOK, "ok"), nil
		})

	c := newTestClient(m)
	resp, err := c.Get(context.Background(), c.BaseURL())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
}

func TestClient_Get_withoutConsent(t *testing.T) {
	m := mocks.NewMockHttpRequestDoer(t)
	m.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			assert.Empty(t, req.Header.Get("Cookie"))
			return textResponse(http.StatusOK, "ok"), nil
		})

	c := newTestClient(m).WithConsentCookie("")
	resp, err := c.Get(context.Background(), c.BaseURL())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
}

func TestClient_GetText(t *testing.T) {
	m := mocks.NewMockHttpRequestDoer(t)
	m.EXPECT().Do(mock.Anything).Return(
		textResponse(http.StatusOK, "page text"), nil)

	c := newTestClient(m)
	text, err := c.GetText(context.Background(), c.BaseURL())
	require.NoError(t, err)
	assert.Equal(t, "page text", text)
}

func TestClient_GetText_unexpectedStatus(t *testing.T) {
	m := mocks.NewMockHttpRequestDoer(t)
	m.EXPECT().Do(mock.Anything).Return(
		textResponse(http.StatusNotFound, "not found"), nil)

	c := newTestClient(m)
	_, err := c.GetText(context.Background(), c.BaseURL())
	require.ErrorIs(t, err, ErrUnexpectedStatus)

	var statusErr *UnexpectedStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode())
}

func TestClient_IndexFile(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	m := mocks.NewMockHttpRequestDoer(t)
	m.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/Downloads/RFQ/Archive/in240315.txt",
				req.URL.Path)
			return textResponse(http.StatusOK, "index body"), nil
		})

	text, err := newTestClient(m).IndexFile(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, "index body", text)
}

func TestClient_SolicitationPage(t *testing.T) {
	m := mocks.NewMockHttpRequestDoer(t)
	m.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/RFQ/RFQNsn.aspx", req.URL.Path)
			assert.Equal(t, "5331006185361", req.URL.Query().Get("value"))
			assert.Equal(t, "nsn", req.URL.Query().Get("category"))
			return textResponse(http.StatusOK, "<html></html>"), nil
		})

	page, err := newTestClient(m).SolicitationPage(context.Background(),
		"5331006185361")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", page)
}

func TestIndexFileName(t *testing.T) {
	day := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "in240315.txt", IndexFileName(day))

	day = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "in251201.txt", IndexFileName(day))
}
