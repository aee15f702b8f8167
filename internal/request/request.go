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

package request

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ToJsonReq converts a Go object to a JSON-encoded HTTP request payload.
// It serializes the provided payload to JSON format and wraps it in a buffer for sending in HTTP requests.
//
// Parameters:
// - payload interface{}: The data structure to be serialized into JSON.
//
// Returns:
// - *bytes.Buffer: The JSON-encoded payload wrapped in a bytes buffer, ready to be sent in a request.
// - error: An error if the JSON marshalling process fails.
func ToJsonReq(payload interface{}) (*bytes.Buffer, error) {
	c, e := json.Marshal(payload)
	if e != nil {
		return nil, e
	}
	return bytes.NewBuffer(c), nil
}

// DecodeJSON decodes a response body into out. Unknown fields are ignored,
// matching the provider's lenient content contract.
func DecodeJSON(body []byte, out interface{}) error {
	return json.Unmarshal(body, out)
}

// BearerAuth formats a token for the Authorization header.
func BearerAuth(token string) string {
	return "Bearer " + token
}

// Call sends the prepared request with the given client and returns the
// response together with the fully-read body. When response is non-nil and
// the body is non-empty JSON, the body is also decoded into it.
//
// Parameters:
// - client *http.Client: The HTTP client to send the request with.
// - req *http.Request: The prepared HTTP request to send.
// - response interface{}: The target structure to hold the decoded JSON response, or nil.
//
// Returns:
// - *http.Response: The raw HTTP response object.
// - []byte: The fully-read response body, so callers can surface provider error payloads verbatim.
// - error: An error if the HTTP request or JSON decoding fails.
func Call(client *http.Client, req *http.Request, response interface{}) (*http.Response, []byte, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return resp, nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.WithError(err).Error("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}

	if response != nil && len(body) > 0 && json.Valid(body) {
		if err := json.Unmarshal(body, response); err != nil {
			return resp, body, err
		}
	}
	return resp, body, nil
}
