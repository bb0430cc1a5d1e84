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

// Package validator provides protocol validation for OAuth2 token, authorization
// and dynamic client registration requests. Validation is fail-fast: the first
// violated rule is returned and no partial results are produced.
package validator

import (
	"strings"

	appmodel "github.com/sentra-id/sentra/internal/application/model"
	"github.com/sentra-id/sentra/internal/oauth2/constants"
	"github.com/sentra-id/sentra/internal/oauth2/model"
	"github.com/sentra-id/sentra/internal/scope"
	"github.com/sentra-id/sentra/internal/system/log"
)

const loggerComponentName = "RequestValidator"

// RequestValidatorInterface defines the interface for validating OAuth2 requests.
type RequestValidatorInterface interface {
	ValidateTokenRequest(req *model.TokenRequest,
		client *appmodel.ClientProfile) *model.RequestValidationError
	ValidateAuthorizationRequest(req *model.AuthorizationRequest,
		client *appmodel.ClientProfile) *model.RequestValidationError
	ValidateScopes(requestedScopes []string, client *appmodel.ClientProfile,
		isClientActor bool) *model.RequestValidationError
	ValidateClientRegistration(req *model.ClientRegistrationRequest) *model.RequestValidationError
}

// RequestValidator implements the RequestValidatorInterface.
type RequestValidator struct {
	scopeRegistry    scope.RegistryInterface
	redirectResolver RedirectResolverInterface
}

// NewRequestValidator creates a new request validator using the provided scope registry
// and redirect resolver.
func NewRequestValidator(scopeRegistry scope.RegistryInterface,
	redirectResolver RedirectResolverInterface) RequestValidatorInterface {
	return &RequestValidator{
		scopeRegistry:    scopeRegistry,
		redirectResolver: redirectResolver,
	}
}

// ValidateTokenRequest validates the structural rules of a token request for its grant type.
func (v *RequestValidator) ValidateTokenRequest(req *model.TokenRequest,
	client *appmodel.ClientProfile) *model.RequestValidationError {
	grantType, ok := constants.ParseGrantType(req.GrantType)
	if !ok {
		return model.NewInvalidRequestError("unsupported grant_type")
	}

	switch grantType {
	case constants.GrantTypeAuthorizationCode:
		if strings.TrimSpace(req.Code) == "" {
			return model.NewInvalidRequestError("missing or empty code")
		}
		return v.validateRedirectURI(req.RedirectURI, client)
	case constants.GrantTypeImplicit:
		return v.validateRedirectURI(req.RedirectURI, client)
	case constants.GrantTypePassword:
		if strings.TrimSpace(req.Username) == "" {
			return model.NewInvalidRequestError("missing or empty username")
		}
	case constants.GrantTypeClientCredentials:
		// No additional structural checks.
	case constants.GrantTypeRefreshToken:
		// Scope narrowing against the previously granted set is left to the
		// token issuance layer.
		if strings.TrimSpace(req.RefreshToken) == "" {
			return model.NewInvalidRequestError("missing or empty refresh_token")
		}
	}

	return nil
}

// ValidateAuthorizationRequest validates the response type, response mode, OIDC,
// redirect URI and PKCE rules of an authorization request.
func (v *RequestValidator) ValidateAuthorizationRequest(req *model.AuthorizationRequest,
	client *appmodel.ClientProfile) *model.RequestValidationError {
	responseTypes := make(map[constants.ResponseType]struct{}, len(req.ResponseTypes))
	for _, value := range req.ResponseTypes {
		responseType, ok := constants.ParseResponseType(value)
		if !ok {
			return model.NewInvalidRequestError("invalid response_type")
		}
		responseTypes[responseType] = struct{}{}
	}
	if len(responseTypes) == 0 {
		return model.NewInvalidRequestError("response_type can not be null or empty")
	}

	if err := validateResponseMode(req, responseTypes); err != nil {
		return err
	}

	if _, ok := responseTypes[constants.ResponseTypeIDToken]; ok {
		if !req.HasScope(constants.ScopeOpenID) {
			return model.NewInvalidRequestError("missing openid scope")
		}
		if req.Extension(constants.ExtensionKeyNonce) == "" {
			return model.NewInvalidRequestError("missing nonce")
		}
	}

	// Any request entering an OpenID Connect flow must carry a redirect URI.
	if req.HasScope(constants.ScopeOpenID) && req.RedirectURI == "" {
		return model.NewInvalidRequestError("missing redirect_uri")
	}

	if err := v.validateRedirectURI(req.RedirectURI, client); err != nil {
		return err
	}

	if req.CodeChallengeMethod != "" &&
		!constants.IsSupportedCodeChallengeMethod(req.CodeChallengeMethod) {
		return model.NewInvalidRequestError("challenge method unsupported")
	}

	return nil
}

// validateResponseMode checks the response_mode extension against the requested response types.
func validateResponseMode(req *model.AuthorizationRequest,
	responseTypes map[constants.ResponseType]struct{}) *model.RequestValidationError {
	if req.Extension(constants.ExtensionKeyResponseMode) != constants.ResponseModeQuery {
		return nil
	}

	_, hasCode := responseTypes[constants.ResponseTypeCode]
	_, hasToken := responseTypes[constants.ResponseTypeToken]
	_, hasIDToken := responseTypes[constants.ResponseTypeIDToken]

	if hasCode && hasToken {
		return model.NewInvalidRequestError(
			"response_mode query is not allowed when requesting token with code")
	}
	if hasIDToken && len(responseTypes) > 1 {
		return model.NewInvalidRequestError(
			"response_mode query is not allowed for hybrid flows")
	}
	return nil
}

// validateRedirectURI resolves a supplied redirect URI against the client's registered set.
func (v *RequestValidator) validateRedirectURI(redirectURI string,
	client *appmodel.ClientProfile) *model.RequestValidationError {
	if redirectURI == "" {
		return nil
	}
	if v.redirectResolver.Resolve(redirectURI, client) == "" {
		return model.NewInvalidRequestError("invalid redirect_uri")
	}
	return nil
}

// ValidateScopes validates the requested scopes against the registry, the client's
// authorized scope set and the requesting actor kind. Violations are accumulated
// into a single invalid_scope error.
func (v *RequestValidator) ValidateScopes(requestedScopes []string,
	client *appmodel.ClientProfile, isClientActor bool) *model.RequestValidationError {
	if len(requestedScopes) == 0 {
		return nil
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var offendingScopes []string
	for _, requested := range requestedScopes {
		resolved, err := v.scopeRegistry.FindScope(requested)
		if err != nil {
			logger.Error("Failed to resolve scope", log.Error(err),
				log.String(log.LoggerKeyScope, requested))
			return model.NewServerError("failed to validate scopes")
		}
		if resolved == nil || !client.IsAuthorizedScope(requested) {
			offendingScopes = append(offendingScopes, requested)
			continue
		}
		if isClientActor && !resolved.Type.AllowsClientActor() {
			offendingScopes = append(offendingScopes, requested)
			continue
		}
		if !isClientActor && !resolved.Type.AllowsUserActor() {
			offendingScopes = append(offendingScopes, requested)
		}
	}

	if len(offendingScopes) > 0 {
		return model.NewInvalidScopeError(offendingScopes, client.AuthorizedScopes)
	}
	return nil
}

// ValidateClientRegistration validates a dynamic client registration request.
func (v *RequestValidator) ValidateClientRegistration(
	req *model.ClientRegistrationRequest) *model.RequestValidationError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var offendingScopes []string
	for _, declared := range req.Scopes {
		resolved, err := v.scopeRegistry.FindScope(declared)
		if err != nil {
			logger.Error("Failed to resolve scope", log.Error(err),
				log.String(log.LoggerKeyScope, declared))
			return model.NewServerError("failed to validate scopes")
		}
		if resolved == nil {
			offendingScopes = append(offendingScopes, declared)
		}
	}
	if len(offendingScopes) > 0 {
		return model.NewInvalidScopeError(offendingScopes, nil)
	}

	if len(req.GrantTypes) == 0 {
		return model.NewInvalidRequestError("missing grant_type")
	}
	requiresRedirectURI := false
	for _, declared := range req.GrantTypes {
		grantType, ok := constants.ParseGrantType(declared)
		if !ok {
			return model.NewInvalidRequestError("unsupported grant_type")
		}
		if grantType == constants.GrantTypeAuthorizationCode ||
			grantType == constants.GrantTypeImplicit {
			requiresRedirectURI = true
		}
	}
	if requiresRedirectURI && len(req.RedirectURIs) == 0 {
		return model.NewInvalidRequestError("missing redirect_uri")
	}

	if len(req.AuthenticationMethods) == 0 {
		return model.NewInvalidRequestError("missing authentication method")
	}
	if strings.TrimSpace(req.ApplicationType) == "" {
		return model.NewInvalidRequestError("missing application_type")
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.NewInvalidRequestError("missing client name")
	}

	return nil
}
