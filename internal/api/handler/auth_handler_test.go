package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/martijn/inkwell/internal/api/dto"
)

func TestSignup(t *testing.T) {
	env := setupTestEnv(t)

	w := env.makeRequest(t, "POST", "/api/auth/signup", "", dto.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Message != "User registered successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "Alice", "alice@example.com", "s3cret-pass")

	w := env.makeRequest(t, "POST", "/api/auth/signup", "", dto.SignupRequest{
		Name:     "Mallory",
		Email:    "alice@example.com",
		Password: "another-pass",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseErrorResponse(t, w)
	if resp.Message != "Email is already taken" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestSignupInvalidBody(t *testing.T) {
	env := setupTestEnv(t)

	// password below the minimum length
	w := env.makeRequest(t, "POST", "/api/auth/signup", "", dto.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for short password, got %d", w.Code)
	}

	// email not an email
	w = env.makeRequest(t, "POST", "/api/auth/signup", "", dto.SignupRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "s3cret-pass",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for bad email, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "Alice", "alice@example.com", "s3cret-pass")

	w := env.makeRequest(t, "POST", "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("unexpected user email: %q", resp.User.Email)
	}

	// the returned token must be accepted by protected routes
	w = env.makeRequest(t, "GET", "/api/users/profile", resp.Token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected token to grant access, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "Alice", "alice@example.com", "s3cret-pass")

	w := env.makeRequest(t, "POST", "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseErrorResponse(t, w)
	if resp.Message != "Invalid email or password" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := setupTestEnv(t)

	w := env.makeRequest(t, "POST", "/api/auth/login", "", dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}

	// the body must not reveal whether the account exists
	resp := parseErrorResponse(t, w)
	if resp.Message != "Invalid email or password" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}
