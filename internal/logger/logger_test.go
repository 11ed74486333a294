package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{name: "info", level: "info", wantLevel: zerolog.InfoLevel},
		{name: "debug", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "warn", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "empty falls back to info", level: "", wantLevel: zerolog.InfoLevel},
		{name: "garbage falls back to info", level: "loud", wantLevel: zerolog.InfoLevel},
	}

	originalLogger := log.Logger
	defer func() {
		log.Logger = originalLogger
	}()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level)
			assert.Equal(t, tt.wantLevel, log.Logger.GetLevel())
		})
	}
}

func TestInitLoggerWritesJSONToStdout(t *testing.T) {
	originalLogger := log.Logger
	originalStdout := os.Stdout

	defer func() {
		log.Logger = originalLogger
		os.Stdout = originalStdout
	}()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	InitLogger("info")

	log.Info().Msg("test message")
	log.Debug().Msg("hidden message")

	w.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	logStr := buf.String()
	assert.Contains(t, logStr, "time")
	assert.Contains(t, logStr, "test message")
	assert.NotContains(t, logStr, "hidden message")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := log.Logger
	defer func() {
		log.Logger = originalLogger
	}()

	log.Logger = zerolog.New(&buf).Level(zerolog.InfoLevel)

	req := httptest.NewRequest(http.MethodGet, "/api/shorturl/3", nil)
	rr := httptest.NewRecorder()

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://example.com")
		w.WriteHeader(http.StatusFound)
	})

	handler := chimiddleware.RequestID(RequestLogger(testHandler))
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))

	assert.Equal(t, "Request processed", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/shorturl/3", entry["uri"])
	assert.Equal(t, float64(http.StatusFound), entry["status"])
	assert.Equal(t, float64(0), entry["size"])
	assert.NotEmpty(t, entry["request_id"])
	assert.Contains(t, entry, "duration")
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()

	rw := NewResponseWriter(rr)

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, 0, rw.Size())

	rw.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, rw.Status())

	n, err := rw.Write([]byte("Hello, "))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = rw.Write([]byte("World!"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 13, rw.Size())

	assert.Equal(t, "Hello, World!", rr.Body.String())
}
