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

// Package constants defines constants used across the OAuth2 module.
package constants

import "strings"

// GrantType represents an OAuth2 grant type.
type GrantType string

// OAuth2 grant types.
const (
	GrantTypeAuthorizationCode GrantType = "authorization_code"
	GrantTypeImplicit          GrantType = "implicit"
	GrantTypePassword          GrantType = "password"
	GrantTypeClientCredentials GrantType = "client_credentials"
	GrantTypeRefreshToken      GrantType = "refresh_token"
)

// ParseGrantType parses the given value into a known GrantType.
func ParseGrantType(value string) (GrantType, bool) {
	switch GrantType(value) {
	case GrantTypeAuthorizationCode, GrantTypeImplicit, GrantTypePassword,
		GrantTypeClientCredentials, GrantTypeRefreshToken:
		return GrantType(value), true
	default:
		return "", false
	}
}

// ResponseType represents an OAuth2/OIDC response type.
type ResponseType string

// OAuth2 response types.
const (
	ResponseTypeCode    ResponseType = "code"
	ResponseTypeToken   ResponseType = "token"
	ResponseTypeIDToken ResponseType = "id_token"
)

// ParseResponseType parses the given value into a known ResponseType.
func ParseResponseType(value string) (ResponseType, bool) {
	switch ResponseType(value) {
	case ResponseTypeCode, ResponseTypeToken, ResponseTypeIDToken:
		return ResponseType(value), true
	default:
		return "", false
	}
}

// OAuth2 request parameters.
const (
	RequestParamGrantType           = "grant_type"
	RequestParamClientID            = "client_id"
	RequestParamRedirectURI         = "redirect_uri"
	RequestParamUsername            = "username"
	RequestParamScope               = "scope"
	RequestParamCode                = "code"
	RequestParamRefreshToken        = "refresh_token"
	RequestParamResponseType        = "response_type"
	RequestParamCodeChallenge       = "code_challenge"
	RequestParamCodeChallengeMethod = "code_challenge_method"
)

// Authorization request extension keys.
const (
	ExtensionKeyResponseMode = "response_mode"
	ExtensionKeyNonce        = "nonce"
)

// Response mode values.
const (
	ResponseModeQuery = "query"
)

// ScopeOpenID is the OIDC scope literal that switches a request into an OpenID Connect flow.
const ScopeOpenID = "openid"

// PKCE code challenge methods.
const (
	CodeChallengeMethodPlain = "plain"
	CodeChallengeMethodS256  = "S256"
)

// IsSupportedCodeChallengeMethod checks the challenge method against the supported set,
// ignoring case.
func IsSupportedCodeChallengeMethod(method string) bool {
	return strings.EqualFold(method, CodeChallengeMethodPlain) ||
		strings.EqualFold(method, CodeChallengeMethodS256)
}

// OAuth2 error codes.
const (
	ErrorInvalidRequest          = "invalid_request"
	ErrorInvalidClient           = "invalid_client"
	ErrorInvalidGrant            = "invalid_grant"
	ErrorUnauthorizedClient      = "unauthorized_client"
	ErrorUnsupportedGrantType    = "unsupported_grant_type"
	ErrorInvalidScope            = "invalid_scope"
	ErrorServerError             = "server_error"
	ErrorUnsupportedResponseType = "unsupported_response_type"
	ErrorAccessDenied            = "access_denied"
)
