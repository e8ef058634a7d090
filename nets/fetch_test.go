package nets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/fox/configs"
	"github.com/reusee/fox/foxconfigs"
	"github.com/reusee/fox/modes"
)

func newTestScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, foxconfigs.Schema)),
	)
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	})
	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusFound)
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	newTestScope(t).Call(func(
		fetch Fetch,
	) {
		ctx := context.Background()

		if err := fetch(ctx, server.URL+"/ok"); err != nil {
			t.Fatal(err)
		}
		if err := fetch(ctx, server.URL+"/redirect"); err != nil {
			t.Fatal(err)
		}

		err := fetch(ctx, server.URL+"/missing")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}

		err = fetch(ctx, server.URL+"/loop")
		if !errors.Is(err, ErrTooManyRedirects) {
			t.Fatalf("got %v", err)
		}

		if err := fetch(ctx, "://bad"); err == nil {
			t.Fatal("should error")
		}

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		if err := fetch(canceled, server.URL+"/ok"); !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
	})
}
