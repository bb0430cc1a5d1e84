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

package validator

import (
	appmodel "github.com/sentra-id/sentra/internal/application/model"
)

// RedirectResolverInterface defines the interface for resolving a redirect URI against
// a client's registered set. An empty result means no match.
type RedirectResolverInterface interface {
	Resolve(redirectURI string, client *appmodel.ClientProfile) string
}

// ExactRedirectResolver resolves redirect URIs by byte-exact set membership.
type ExactRedirectResolver struct{}

// NewExactRedirectResolver creates a new instance of ExactRedirectResolver.
func NewExactRedirectResolver() RedirectResolverInterface {
	return &ExactRedirectResolver{}
}

// Resolve returns the registered URI equal to the provided one, or empty when none matches.
func (r *ExactRedirectResolver) Resolve(redirectURI string, client *appmodel.ClientProfile) string {
	return client.ResolveRedirectURI(redirectURI)
}
