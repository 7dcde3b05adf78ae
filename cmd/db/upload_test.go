package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quotefeed/dibbs/client"
	mocksClient "github.com/quotefeed/dibbs/internal/mocks/client"
	mocksDb "github.com/quotefeed/dibbs/internal/mocks/db"
	"github.com/quotefeed/dibbs/internal/repo"
)

const (
	indexRecordLine1 = "SPE4A625T29KC5331006185361       000001112503/15/24"
	indexRecordLine2 = " SPE4A6-25-T-29KC.PDF 0000123EAWIDGET ASSEMBLY,TYP" +
		"  PADDING-CODE-1"

	testIndexFile = "DIBBS Solicitation Index For 03/15/2024\n\n" +
		indexRecordLine1 + "\n" + indexRecordLine2 + "\n"

	testSolNumber = "SPE4A625T29KC"
	testNSN       = "5331006185361"
)

var testDay = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func newTestUpload(t *testing.T, doer *mocksClient.MockHttpRequestDoer,
	r *mocksDb.MockRepo,
) *Upload {
	dibbs := client.New(client.WithHttpClient(doer)).WithUserAgent("test")
	return NewUpload(dibbs, r)
}

func textResponse(status int, body string) *http.Response {
	rec := httptest.NewRecorder()
	rec.WriteHeader(status)
	_, _ = rec.WriteString(body)
	return rec.Result()
}

func TestNewUpload(t *testing.T) {
	u := newTestUpload(t, mocksClient.NewMockHttpRequestDoer(t),
		mocksDb.NewMockRepo(t))
	require.NotNil(t, u)
	assert.Same(t, u, u.WithProcsLimit(2))
	assert.Equal(t, 2, u.procs)
}

func TestUpload_upsert(t *testing.T) {
	doer := mocksClient.NewMockHttpRequestDoer(t)
	doer.EXPECT().Do(mock.Anything).RunAndReturn(
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/Downloads/RFQ/Archive/in240315.txt",
				req.URL.Path)
			return textResponse(http.StatusOK, testIndexFile), nil
		})

	r := mocksDb.NewMockRepo(t)
	r.EXPECT().RawHashes(mock.Anything).Return(
		map[string]uint64{"SPE7L324T0415": 42}, nil)
	r.EXPECT().UpsertSolicitation(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, sol repo.Solicitation) (bool, error) {
			assert.Equal(t, testSolNumber, sol.SolNumber)
			assert.Equal(t, testNSN, sol.NSN)
			assert.Equal(t, "0000011125", sol.PRN)
			assert.Equal(t, "2024-03-15", sol.ReturnBy)
			assert.Equal(t, int32(123), sol.Quantity)
			assert.Equal(t, "EACH", sol.UnitName)
			assert.Equal(t, "TYP", sol.Descr.String)
			assert.Equal(t, "PADDING-CODE-1", sol.SuppCode.String)
			assert.Equal(t,
				xxhash.Sum64String(indexRecordLine1+indexRecordLine2),
				sol.RawHash)
			return true, nil
		})

	u := newTestUpload(t, doer, r)
	require.NoError(t, u.Upload([]time.Time{testDay}))
}

func TestUpload_skipsUnchanged(t *testing.T) {
	doer := mocksClient.NewMockHttpRequestDoer(t)
	doer.EXPECT().Do(mock.Anything).Return(
		textResponse(http.StatusOK, testIndexFile), nil)

	r := mocksDb.NewMockRepo(t)
	r.EXPECT().RawHashes(mock.Anything).Return(map[string]uint64{
		testSolNumber: xxhash.Sum64String(indexRecordLine1 + indexRecordLine2),
	}, nil)

	u := newTestUpload(t, doer, r)
	require.NoError(t, u.Upload([]time.Time{testDay}))
}

func TestUpload_freshTable(t *testing.T) {
	doer := mocksClient.NewMockHttpRequestDoer(t)
	doer.EXPECT().Do(mock.Anything).Return(
		textResponse(http.StatusOK, testIndexFile), nil)

	r := mocksDb.NewMockRepo(t)
	r.EXPECT().RawHashes(mock.Anything).Return(map[string]uint64{}, nil)
	r.EXPECT().CopySolicitations(mock.Anything, 1, mock.Anything).RunAndReturn(
		func(ctx context.Context, length int,
			next func(int) (repo.Solicitation, error),
		) error {
			sol, err := next(0)
			require.NoError(t, err)
			assert.Equal(t, testSolNumber, sol.SolNumber)
			return nil
		})

	u := newTestUpload(t, doer, r)
	require.NoError(t, u.Upload([]time.Time{testDay}))
}

func TestUpload_noIndexFile(t *testing.T) {
	doer := mocksClient.NewMockHttpRequestDoer(t)
	doer.EXPECT().Do(mock.Anything).Return(
		textResponse(http.StatusNotFound, "not found"), nil)

	r := mocksDb.NewMockRepo(t)
	r.EXPECT().RawHashes(mock.Anything).Return(
		map[string]uint64{testSolNumber: 42}, nil)

	u := newTestUpload(t, doer, r)
	require.NoError(t, u.Upload([]time.Time{testDay}))
}

func TestUpload_fetchError(t *testing.T) {
	doer := mocksClient.NewMockHttpRequestDoer(t)
	doer.EXPECT().Do(mock.Anything).Return(
		textResponse(http.StatusInternalServerError, "boom"), nil)

	r := mocksDb.NewMockRepo(t)
	r.EXPECT().RawHashes(mock.Anything).Return(map[string]uint64{}, nil)

	u := newTestUpload(t, doer, r)
	require.ErrorIs(t, u.Upload([]time.Time{testDay}),
		client.ErrUnexpectedStatus)
}

func TestUpload_rawHashesError(t *testing.T) {
	wantErr := errors.New("test error")
	r := mocksDb.NewMockRepo(t)
	r.EXPECT().RawHashes(mock.Anything).Return(nil, wantErr)

	u := newTestUpload(t, mocksClient.NewMockHttpRequestDoer(t), r)
	require.ErrorIs(t, u.Upload([]time.Time{testDay}), wantErr)
}

func TestParseDays(t *testing.T) {
	days, err := parseDays(nil)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, time.Now().Format(time.DateOnly),
		days[0].Format(time.DateOnly))

	days, err = parseDays([]string{"2024-03-15", "2024-03-18"})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		testDay, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
	}, days)

	_, err = parseDays([]string{"03/15/2024"})
	require.ErrorContains(t, err, `parse day "03/15/2024"`)
}
