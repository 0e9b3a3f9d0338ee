package gatewayhttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

type echoRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type echoResponse struct {
	Email string `json:"email" validate:"required,email"`
}

func TestPostRejectsInvalidRequest(t *testing.T) {
	client := NewClient("http://localhost:0", "")

	err := client.Post(context.Background(), "/api/v1/echo", echoRequest{Email: "not-an-email"}, nil)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Constraint != "email" {
		t.Fatalf("expected email constraint, got %q", verr.Constraint)
	}
}

func TestTransportFailureSurfacesAsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on

	client := NewClientWithHTTP(server.URL, "", &http.Client{Timeout: time.Second})
	err := client.Get(context.Background(), "/api/v1/echo", url.Values{}, &echoResponse{})

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
}

func TestNon2xxSurfacesAsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"gateway exploded"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.Get(context.Background(), "/api/v1/echo", url.Values{}, &echoResponse{})

	var aerr *APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if aerr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", aerr.StatusCode)
	}
	if aerr.Message != "gateway exploded" {
		t.Fatalf("expected decoded message, got %q", aerr.Message)
	}
}

func TestUndecodableBodySurfacesAsResponseParseError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "definitely not json"},
		{name: "unknown field", body: `{"email":"a@b.com","surprise":true}`},
		{name: "wrong type", body: `{"email":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "")
			err := client.Get(context.Background(), "/api/v1/echo", url.Values{}, &echoResponse{})

			var perr *ResponseParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ResponseParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestInvalidResponseFieldSurfacesAsValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"not-an-email"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.Get(context.Background(), "/api/v1/echo", url.Values{}, &echoResponse{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
}

func TestAPIKeyHeaderIsSent(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"a@b.com"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	if err := client.Get(context.Background(), "/api/v1/echo", url.Values{}, &echoResponse{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "secret-key" {
		t.Fatalf("expected api key header to be sent, got %q", gotKey)
	}
}
