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
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	ProductionBaseURL = "https://api.pawapay.io/"
	SandboxBaseURL    = "https://api.sandbox.pawapay.io/"

	DefaultHTTPTimeoutSeconds  = 30
	DefaultPollMaxAttempts     = 30
	DefaultPollIntervalSeconds = 4
	DefaultPollNotFoundGrace   = 5
)

var ConfigStore atomic.Value

type PollerConfig struct {
	MaxAttempts           int `json:"max_attempts" envconfig:"PAWAPAY_POLL_MAX_ATTEMPTS"`
	IntervalSeconds       int `json:"interval_seconds" envconfig:"PAWAPAY_POLL_INTERVAL_SECONDS"`
	NotFoundGraceAttempts int `json:"not_found_grace_attempts" envconfig:"PAWAPAY_POLL_NOT_FOUND_GRACE"`
}

type Configuration struct {
	APIToken           string       `json:"api_token" envconfig:"PAWAPAY_API_TOKEN"`
	Sandbox            bool         `json:"sandbox" envconfig:"PAWAPAY_SANDBOX"`
	BaseURL            string       `json:"base_url" envconfig:"PAWAPAY_BASE_URL"`
	HTTPTimeoutSeconds int          `json:"http_timeout_seconds" envconfig:"PAWAPAY_HTTP_TIMEOUT_SECONDS"`
	Poller             PollerConfig `json:"poller"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("pawapay", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called pawapay.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	cnf.APIToken = strings.TrimSpace(cnf.APIToken)
	cnf.BaseURL = strings.TrimSpace(cnf.BaseURL)

	if cnf.APIToken == "" {
		log.Println("Error: API token is empty. It's a required field.")
		return errors.New("api token is required")
	}

	if cnf.BaseURL == "" {
		if cnf.Sandbox {
			cnf.BaseURL = SandboxBaseURL
		} else {
			cnf.BaseURL = ProductionBaseURL
		}
	}
	if !strings.HasSuffix(cnf.BaseURL, "/") {
		cnf.BaseURL += "/"
	}

	if cnf.HTTPTimeoutSeconds <= 0 {
		cnf.HTTPTimeoutSeconds = DefaultHTTPTimeoutSeconds
	}
	if cnf.Poller.MaxAttempts <= 0 {
		cnf.Poller.MaxAttempts = DefaultPollMaxAttempts
	}
	if cnf.Poller.IntervalSeconds <= 0 {
		cnf.Poller.IntervalSeconds = DefaultPollIntervalSeconds
	}
	if cnf.Poller.NotFoundGraceAttempts <= 0 {
		cnf.Poller.NotFoundGraceAttempts = DefaultPollNotFoundGrace
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	_ = mockConfig.validateAndAddDefaults()
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
