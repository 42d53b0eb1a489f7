package main

import (
	"strings"
	"testing"

	"wallet/internal/config"
)

func TestRun_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		args    []string
		wantErr string
	}{
		{"no command", "postgres", nil, "usage"},
		{"sqlite driver", "sqlite", []string{"up"}, "target postgres"},
		{"bad flag", "postgres", []string{"-nope"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(&config.Config{DBDriver: tt.driver}, tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
