package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sdl-format/go-sdl/introspection"
)

func introspectionHandler(t *testing.T, respond func(w http.ResponseWriter)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatal(err)
		}
		var req struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("request body: %v", err)
		}
		if !strings.Contains(req.Query, "__schema") {
			t.Errorf("request query does not introspect: %q", req.Query)
		}
		respond(w)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(introspectionHandler(t, func(w http.ResponseWriter) {
		io.WriteString(w, `{"data": {"__schema": {
			"queryType": {"name": "Query"},
			"types": [{"kind": "OBJECT", "name": "Query", "fields": []}],
			"directives": []
		}}}`)
	}))
	defer srv.Close()

	schema, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if schema.QueryType == nil || schema.QueryType.Named() != "Query" {
		t.Errorf("queryType = %+v", schema.QueryType)
	}
	if len(schema.Types) != 1 || schema.Types[0].Name != "Query" {
		t.Errorf("types = %+v", schema.Types)
	}
}

func TestFetchHeaders(t *testing.T) {
	var auth, custom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		custom = r.Header.Get("X-Tenant")
		io.WriteString(w, `{"data": {"__schema": {"types": []}}}`)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL,
		WithBearerToken("tok123"),
		WithHeader("X-Tenant", "acme"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if auth != "Bearer tok123" {
		t.Errorf("Authorization = %q", auth)
	}
	if custom != "acme" {
		t.Errorf("X-Tenant = %q", custom)
	}
}

func TestFetchGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(introspectionHandler(t, func(w http.ResponseWriter) {
		io.WriteString(w, `{"errors": [{"message": "introspection is disabled"}]}`)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("err = %v, want ErrFetch", err)
	}
	if !strings.Contains(err.Error(), "introspection is disabled") {
		t.Errorf("err = %v, want the server message", err)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such path", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("err = %v, want ErrFetch", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("err = %v, want the status", err)
	}
}

func TestFetchNoSchema(t *testing.T) {
	srv := httptest.NewServer(introspectionHandler(t, func(w http.ResponseWriter) {
		io.WriteString(w, `{"data": {}}`)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL); !errors.Is(err, ErrFetch) {
		t.Fatalf("err = %v, want ErrFetch", err)
	}
}

func TestFetchContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fetch(ctx, srv.URL); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestFetchDecodesResponse(t *testing.T) {
	// the wire model round-trips through the introspection package
	srv := httptest.NewServer(introspectionHandler(t, func(w http.ResponseWriter) {
		json.NewEncoder(w).Encode(introspection.Response{
			Data: &introspection.Data{
				Schema: &introspection.Schema{
					Types: []introspection.Type{
						{Kind: introspection.EnumKind, Name: "Role"},
					},
				},
			},
		})
	}))
	defer srv.Close()

	schema, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(schema.Types) != 1 || schema.Types[0].Kind != introspection.EnumKind {
		t.Errorf("types = %+v", schema.Types)
	}
}
