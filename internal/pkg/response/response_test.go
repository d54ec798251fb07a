package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func exercise(t *testing.T, handler fiber.Handler) (*http.Response, Envelope) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp, env
}

func TestSuccessFillsDefaultMessage(t *testing.T) {
	resp, env := exercise(t, func(c fiber.Ctx) error {
		return Success(c, fiber.StatusOK, "", fiber.Map{"hello": "world"})
	})

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if env.Status != fiber.StatusOK || env.Message != MessageOK {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	data, ok := env.Data.(map[string]interface{})
	if !ok || data["hello"] != "world" {
		t.Fatalf("payload not carried through: %#v", env.Data)
	}
}

func TestErrorKeepsExplicitMessage(t *testing.T) {
	resp, env := exercise(t, func(c fiber.Ctx) error {
		return Error(c, fiber.StatusServiceUnavailable, "service degraded", nil)
	})

	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
	if env.Message != "service degraded" {
		t.Fatalf("explicit message lost: %+v", env)
	}
}

func TestOutOfRangeStatusBecomesInternalError(t *testing.T) {
	resp, env := exercise(t, func(c fiber.Ctx) error {
		return Success(c, 0, "", nil)
	})

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if env.Message != MessageInternalServerError {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestDefaultMessage(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{fiber.StatusOK, MessageOK},
		{fiber.StatusCreated, MessageOK},
		{fiber.StatusBadRequest, MessageBadRequest},
		{fiber.StatusNotFound, MessageNotFound},
		{fiber.StatusBadGateway, MessageInternalServerError},
		{fiber.StatusTeapot, MessageError},
	}
	for _, tc := range cases {
		if got := DefaultMessage(tc.status); got != tc.want {
			t.Fatalf("DefaultMessage(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
