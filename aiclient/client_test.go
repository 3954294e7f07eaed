package aiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/linskybing/gpu-reserve-go/config"
	"github.com/linskybing/gpu-reserve-go/models"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

func completionHandler(reply string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: reply}})
		json.NewEncoder(w).Encode(resp)
	}
}

func testClient(url string) *Client {
	return &Client{
		Endpoint: url,
		Model:    "test-model",
		Timeout:  2 * time.Second,
		HTTP:     &http.Client{},
	}
}

func TestInterpret(t *testing.T) {
	reply := `Here is the reservation:
{"purpose": "model training", "start_time": "2026-09-01T10:00:00Z", "end_time": "2026-09-01T14:00:00Z", "server_preference": "gpu-node-01", "priority_score": 70, "justification": "paper deadline"}`

	srv := httptest.NewServer(completionHandler(reply))
	defer srv.Close()

	cand, err := testClient(srv.URL).Interpret(context.Background(), "reserve a gpu tomorrow", models.User{Username: "alice"})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if cand.Purpose != "model training" || cand.PriorityScore != 70 {
		t.Fatalf("unexpected candidate: %+v", cand)
	}
	if cand.ServerPreference != "gpu-node-01" {
		t.Fatalf("server preference lost: %q", cand.ServerPreference)
	}
	if !cand.StartTime.Before(cand.EndTime) {
		t.Fatalf("bad window: %v - %v", cand.StartTime, cand.EndTime)
	}
	if !strings.Contains(string(cand.Raw), "model training") {
		t.Fatalf("raw payload not preserved: %s", cand.Raw)
	}
}

func TestInterpretTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can observe the client disconnect
		// and cancel the request context; otherwise srv.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.Timeout = 50 * time.Millisecond

	_, err := c.Interpret(context.Background(), "reserve a gpu", models.User{})
	if !errors.Is(err, ErrInterpretationFailed) {
		t.Fatalf("expected ErrInterpretationFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestInterpretUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Interpret(context.Background(), "reserve a gpu", models.User{})
	if !errors.Is(err, ErrInterpretationFailed) {
		t.Fatalf("expected ErrInterpretationFailed, got %v", err)
	}
}

func TestInterpretNoJSONInReply(t *testing.T) {
	srv := httptest.NewServer(completionHandler("sorry, I cannot help with that"))
	defer srv.Close()

	_, err := testClient(srv.URL).Interpret(context.Background(), "reserve a gpu", models.User{})
	if !errors.Is(err, ErrInterpretationFailed) {
		t.Fatalf("expected ErrInterpretationFailed, got %v", err)
	}
}

func TestParseCandidate(t *testing.T) {
	t.Run("clamps score above range", func(t *testing.T) {
		cand, err := parseCandidate(`{"start_time": "2026-09-01 10:00", "end_time": "2026-09-01 12:00", "priority_score": 250}`)
		if err != nil {
			t.Fatal(err)
		}
		if cand.PriorityScore != 100 {
			t.Fatalf("score not clamped: %d", cand.PriorityScore)
		}
	})

	t.Run("clamps negative score", func(t *testing.T) {
		cand, err := parseCandidate(`{"start_time": "2026-09-01 10:00", "end_time": "2026-09-01 12:00", "priority_score": -3}`)
		if err != nil {
			t.Fatal(err)
		}
		if cand.PriorityScore != 0 {
			t.Fatalf("score not clamped: %d", cand.PriorityScore)
		}
	})

	t.Run("missing score falls back to default", func(t *testing.T) {
		cand, err := parseCandidate(`{"start_time": "2026-09-01 10:00:00", "end_time": "2026-09-01 12:00:00"}`)
		if err != nil {
			t.Fatal(err)
		}
		if cand.PriorityScore != 50 {
			t.Fatalf("expected default score 50, got %d", cand.PriorityScore)
		}
	})

	t.Run("bad timestamp is an error", func(t *testing.T) {
		_, err := parseCandidate(`{"start_time": "next tuesday", "end_time": "2026-09-01 12:00", "priority_score": 50}`)
		if !errors.Is(err, ErrInterpretationFailed) {
			t.Fatalf("expected ErrInterpretationFailed, got %v", err)
		}
	})

	t.Run("extracts object from chatter", func(t *testing.T) {
		reply := fmt.Sprintf("Sure! %s Hope that helps.",
			`{"purpose": "demo", "start_time": "2026-09-01T10:00:00Z", "end_time": "2026-09-01T12:00:00Z", "priority_score": 10}`)
		cand, err := parseCandidate(reply)
		if err != nil {
			t.Fatal(err)
		}
		if cand.Purpose != "demo" {
			t.Fatalf("unexpected candidate: %+v", cand)
		}
	})
}

func TestParseTimeLayouts(t *testing.T) {
	for _, s := range []string{
		"2026-09-01T10:00:00Z",
		"2026-09-01 10:00:00",
		"2026-09-01 10:00",
	} {
		if _, err := parseTime(s); err != nil {
			t.Fatalf("parseTime(%q) failed: %v", s, err)
		}
	}
	if _, err := parseTime("tomorrow morning"); err == nil {
		t.Fatal("expected error for non-timestamp input")
	}
}
