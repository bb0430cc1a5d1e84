/*
 * Copyright (c) 2025, Sentra Project (https://github.com/sentra-id).
 *
 * Sentra Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package model defines the data structures used in the OAuth2 module.
package model

import "github.com/sentra-id/sentra/internal/oauth2/constants"

// TokenRequest represents the OAuth2 token request.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret,omitempty"`
	Scope        string `json:"scope,omitempty"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	CodeVerifier string `json:"code_verifier,omitempty"`
	Code         string `json:"code,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
}

// AuthorizationRequest represents the OAuth2/OIDC authorization request.
type AuthorizationRequest struct {
	ResponseTypes       []string          `json:"response_types"`
	Scopes              []string          `json:"scopes,omitempty"`
	RedirectURI         string            `json:"redirect_uri,omitempty"`
	Extensions          map[string]string `json:"extensions,omitempty"`
	CodeChallenge       string            `json:"code_challenge,omitempty"`
	CodeChallengeMethod string            `json:"code_challenge_method,omitempty"`
}

// HasScope checks whether the request contains the given scope.
func (r *AuthorizationRequest) HasScope(scope string) bool {
	for _, s := range r.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// Extension returns the value of the given extension key, or empty when absent.
func (r *AuthorizationRequest) Extension(key string) string {
	if r.Extensions == nil {
		return ""
	}
	return r.Extensions[key]
}

// ClientRegistrationRequest represents a dynamic client registration request.
type ClientRegistrationRequest struct {
	Name                  string   `json:"client_name"`
	ApplicationType       string   `json:"application_type"`
	Scopes                []string `json:"scope,omitempty"`
	GrantTypes            []string `json:"grant_types"`
	RedirectURIs          []string `json:"redirect_uris,omitempty"`
	AuthenticationMethods []string `json:"token_endpoint_auth_methods,omitempty"`
}

// RequestValidationError represents a protocol validation failure.
// A nil value means the request passed validation.
type RequestValidationError struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description,omitempty"`
	OffendingScopes  []string `json:"offending_scopes,omitempty"`
	ValidScopes      []string `json:"valid_scopes,omitempty"`
}

// NewInvalidRequestError creates a RequestValidationError with the invalid_request error code.
func NewInvalidRequestError(description string) *RequestValidationError {
	return &RequestValidationError{
		Error:            constants.ErrorInvalidRequest,
		ErrorDescription: description,
	}
}

// NewInvalidScopeError creates a RequestValidationError with the invalid_scope error code,
// carrying the offending scopes and the set of scopes valid for the client.
func NewInvalidScopeError(offendingScopes, validScopes []string) *RequestValidationError {
	return &RequestValidationError{
		Error:            constants.ErrorInvalidScope,
		ErrorDescription: "invalid scope requested",
		OffendingScopes:  offendingScopes,
		ValidScopes:      validScopes,
	}
}

// NewServerError creates a RequestValidationError with the server_error error code.
func NewServerError(description string) *RequestValidationError {
	return &RequestValidationError{
		Error:            constants.ErrorServerError,
		ErrorDescription: description,
	}
}
