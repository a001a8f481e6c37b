package corpus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tfkhs/cosenote"
)

// editRecord captures one request to the fake edit endpoint.
type editRecord struct {
	path    string
	body    string
	session string
}

// newWriteServer fakes both the edit endpoint and the existence probe.
// existing controls which titles the probe reports as present.
func newWriteServer(existing map[string]bool, edits *[]editRecord) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/pages/myproject/", func(w http.ResponseWriter, r *http.Request) {
		title, _ := url.PathUnescape(r.URL.Path[len("/pages/myproject/"):])
		if existing[title] {
			w.Write([]byte("{}"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/myproject/", func(w http.ResponseWriter, r *http.Request) {
		session := ""
		if cookie, err := r.Cookie(sessionCookie); err == nil {
			session = cookie.Value
		}
		*edits = append(*edits, editRecord{
			path:    r.URL.Path,
			body:    r.URL.Query().Get("body"),
			session: session,
		})
	})
	return httptest.NewServer(mux)
}

func newTestWriter(serverURL string) *Writer {
	return NewWriter("myproject", "s:secret", &WriterConfig{
		SiteURL:    serverURL,
		APIBaseURL: serverURL,
	})
}

func TestWriterPost(t *testing.T) {
	var edits []editRecord
	server := newWriteServer(nil, &edits)
	defer server.Close()

	page := cosenote.NewPage("myproject", "2026/2/21 (Sat)", "[**** Wake-up Time]\n#daily")
	err := newTestWriter(server.URL).Post(context.Background(), page)
	require.NoError(t, err)

	require.Len(t, edits, 1)
	assert.Equal(t, "/myproject/2026/2/21 (Sat)", edits[0].path)
	assert.Equal(t, "[**** Wake-up Time]\n#daily", edits[0].body)
	assert.Equal(t, "s:secret", edits[0].session)
}

func TestWriterUpdateExisting(t *testing.T) {
	var edits []editRecord
	server := newWriteServer(map[string]bool{"known": true}, &edits)
	defer server.Close()

	page := cosenote.NewPage("myproject", "known", "\n#WIP")
	err := newTestWriter(server.URL).Update(context.Background(), page)
	require.NoError(t, err)
	assert.Len(t, edits, 1)
}

func TestWriterUpdateSkipsMissingTarget(t *testing.T) {
	var edits []editRecord
	server := newWriteServer(nil, &edits)
	defer server.Close()

	page := cosenote.NewPage("myproject", "vanished", "\n#WIP")
	err := newTestWriter(server.URL).Update(context.Background(), page)

	// A vanished target is a warning, not a failure, and no edit
	// request goes out.
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestWriterExists(t *testing.T) {
	var edits []editRecord
	server := newWriteServer(map[string]bool{"known": true}, &edits)
	defer server.Close()

	writer := newTestWriter(server.URL)

	exists, err := writer.Exists(context.Background(), "known")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = writer.Exists(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriterExistsRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestWriter(server.URL).Exists(context.Background(), "anything")

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.Status)
}
