package localfetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matforge/matforge/pkg/cache"
)

const rockExport = `[{"Type":"Texture2D","Name":"T_Rock","Outer":"/Game/Tex","Properties":{}}]`

func TestClientExports(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/api/v1/export" {
			t.Errorf("request path = %q, want /api/v1/export", r.URL.Path)
		}
		if r.URL.Query().Get("raw") != "true" {
			t.Error("export fetch must set raw=true")
		}
		if got := r.URL.Query().Get("path"); got != "/Game/Tex/T_Rock" {
			t.Errorf("path param = %q, want /Game/Tex/T_Rock", got)
		}
		w.Write([]byte(rockExport))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil, nil)
	records, err := c.Exports(context.Background(), "/Game/Tex/T_Rock")
	if err != nil {
		t.Fatalf("Exports() error = %v", err)
	}
	if len(records) != 1 || records[0].Kind != "Texture2D" {
		t.Errorf("records = %+v, want one Texture2D", records)
	}
	if hits.Load() != 1 {
		t.Errorf("requests = %d, want 1", hits.Load())
	}
}

func TestClientCachesResponses(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(rockExport))
	}))
	defer srv.Close()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer fc.Close()

	c := NewClient(srv.URL, fc, nil, nil)
	for range 3 {
		if _, err := c.Exports(context.Background(), "/Game/Tex/T_Rock"); err != nil {
			t.Fatalf("Exports() error = %v", err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("requests = %d, want 1; repeats must come from cache", hits.Load())
	}
}

func TestClientRaw(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("raw") {
			t.Error("payload fetch must not set raw")
		}
		w.Write(payload)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil, nil)
	data, err := c.Raw(context.Background(), "/Game/Tex/T_Rock")
	if err != nil {
		t.Fatalf("Raw() error = %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("payload = %v, want %v", data, payload)
	}
}

func TestClientNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil, nil)
	if _, err := c.Exports(context.Background(), "/Game/Tex/T_Gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(rockExport))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil, nil)
	ctx := context.Background()
	done := make(chan error, 1)
	go func() {
		_, err := c.Exports(ctx, "/Game/Tex/T_Rock")
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Exports() error = %v, want success on third attempt", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("retry did not complete")
	}
	if hits.Load() != 3 {
		t.Errorf("requests = %d, want 3", hits.Load())
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		code      int
		want      error
		retryable bool
	}{
		{http.StatusOK, nil, false},
		{http.StatusNotFound, ErrNotFound, false},
		{http.StatusBadRequest, ErrService, false},
		{http.StatusInternalServerError, ErrService, true},
		{http.StatusBadGateway, ErrService, true},
	}
	for _, tt := range tests {
		err := checkStatus(tt.code)
		if tt.want == nil {
			if err != nil {
				t.Errorf("checkStatus(%d) = %v, want nil", tt.code, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("checkStatus(%d) = %v, want %v", tt.code, err, tt.want)
		}
		if got := cache.IsRetryable(err); got != tt.retryable {
			t.Errorf("IsRetryable(checkStatus(%d)) = %v, want %v", tt.code, got, tt.retryable)
		}
	}
}
