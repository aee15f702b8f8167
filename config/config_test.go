/*
Copyright 2024 Dala Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"os"
	"testing"
)

func TestValidateAndAddDefaults(t *testing.T) {
	// Missing token is the only hard failure
	cnf := Configuration{}
	err := cnf.validateAndAddDefaults()
	if err == nil || err.Error() != "api token is required" {
		t.Errorf("Expected api token required error, got %v", err)
	}

	// Production base URL by default
	cnf = Configuration{APIToken: "token"}
	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.BaseURL != ProductionBaseURL {
		t.Errorf("Expected production base URL, got %s", cnf.BaseURL)
	}

	// Sandbox flag flips the base URL
	cnf = Configuration{APIToken: "token", Sandbox: true}
	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.BaseURL != SandboxBaseURL {
		t.Errorf("Expected sandbox base URL, got %s", cnf.BaseURL)
	}

	// Explicit base URL wins and gains a trailing slash
	cnf = Configuration{APIToken: "token", BaseURL: "http://localhost:8080/v2"}
	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.BaseURL != "http://localhost:8080/v2/" {
		t.Errorf("Expected trailing slash on base URL, got %s", cnf.BaseURL)
	}

	// Poller and HTTP defaults
	if cnf.HTTPTimeoutSeconds != DefaultHTTPTimeoutSeconds {
		t.Errorf("Expected default HTTP timeout %d, got %d", DefaultHTTPTimeoutSeconds, cnf.HTTPTimeoutSeconds)
	}
	if cnf.Poller.MaxAttempts != DefaultPollMaxAttempts {
		t.Errorf("Expected default max attempts %d, got %d", DefaultPollMaxAttempts, cnf.Poller.MaxAttempts)
	}
	if cnf.Poller.IntervalSeconds != DefaultPollIntervalSeconds {
		t.Errorf("Expected default interval %d, got %d", DefaultPollIntervalSeconds, cnf.Poller.IntervalSeconds)
	}
	if cnf.Poller.NotFoundGraceAttempts != DefaultPollNotFoundGrace {
		t.Errorf("Expected default grace window %d, got %d", DefaultPollNotFoundGrace, cnf.Poller.NotFoundGraceAttempts)
	}

	// Caller-supplied poller settings are kept
	cnf = Configuration{APIToken: "token", Poller: PollerConfig{MaxAttempts: 3, IntervalSeconds: 1, NotFoundGraceAttempts: 2}}
	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.Poller.MaxAttempts != 3 || cnf.Poller.IntervalSeconds != 1 || cnf.Poller.NotFoundGraceAttempts != 2 {
		t.Errorf("Expected caller poller settings to survive, got %+v", cnf.Poller)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "pawapay.json")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	sampleConfig := Configuration{
		APIToken: "file-token",
		Sandbox:  true,
	}
	data, err := json.Marshal(sampleConfig)
	if err != nil {
		t.Fatalf("Unable to marshal sample config: %v", err)
	}
	if _, err := tmpFile.Write(data); err != nil {
		t.Fatalf("Unable to write temporary file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("Unable to close temporary file: %v", err)
	}

	if err := loadConfigFromFile(tmpFile.Name()); err != nil {
		t.Fatalf("Expected config to load, got %v", err)
	}

	cnf, err := Fetch()
	if err != nil {
		t.Fatalf("Expected config to be fetchable, got %v", err)
	}
	if cnf.APIToken != "file-token" {
		t.Errorf("Expected token from file, got %s", cnf.APIToken)
	}
	if cnf.BaseURL != SandboxBaseURL {
		t.Errorf("Expected sandbox base URL, got %s", cnf.BaseURL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PAWAPAY_API_TOKEN", "env-token")

	if err := loadConfigFromFile("does-not-exist.json"); err != nil {
		t.Fatalf("Expected config to load from env, got %v", err)
	}

	cnf, err := Fetch()
	if err != nil {
		t.Fatalf("Expected config to be fetchable, got %v", err)
	}
	if cnf.APIToken != "env-token" {
		t.Errorf("Expected token from environment, got %s", cnf.APIToken)
	}
}
