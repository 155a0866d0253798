// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package utils

import (
	"testing"
	"time"
)

const (
	testIssuer  = "go-secure-vault-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty signed string")
	}
	if token.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", token.UserID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.signKey); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 77, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != 77 {
		t.Errorf("expected UserID=77, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer); err == nil {
		t.Fatal("expected error for wrong sign key, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, "someone-else"); err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 1, -time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}
