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

// Package model defines the read-only client application view consumed by the decision core.
package model

import "github.com/sentra-id/sentra/internal/oauth2/constants"

// ClientProfile is the read-only view of a registered client application.
type ClientProfile struct {
	ClientID              string                `json:"client_id"`
	Name                  string                `json:"client_name"`
	ApplicationType       string                `json:"application_type"`
	AuthorizedScopes      []string              `json:"authorized_scopes"`
	RedirectURIs          []string              `json:"redirect_uris"`
	GrantTypes            []constants.GrantType `json:"grant_types"`
	AuthenticationMethods []string              `json:"token_endpoint_auth_methods"`
}

// IsAllowedGrantType checks if the provided grant type is allowed for the client.
func (c *ClientProfile) IsAllowedGrantType(grantType constants.GrantType) bool {
	for _, allowed := range c.GrantTypes {
		if allowed == grantType {
			return true
		}
	}
	return false
}

// IsAuthorizedScope checks if the provided scope is authorized for the client.
func (c *ClientProfile) IsAuthorizedScope(scope string) bool {
	for _, authorized := range c.AuthorizedScopes {
		if authorized == scope {
			return true
		}
	}
	return false
}

// ResolveRedirectURI resolves the provided redirect URI against the registered set.
// Matching is byte-exact; no prefix, suffix or query tolerance is applied.
// Returns the matched URI, or empty when there is no match.
func (c *ClientProfile) ResolveRedirectURI(redirectURI string) string {
	if redirectURI == "" {
		return ""
	}
	for _, registered := range c.RedirectURIs {
		if registered == redirectURI {
			return registered
		}
	}
	return ""
}
