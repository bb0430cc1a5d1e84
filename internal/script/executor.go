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

// Package script provides the execution service for user-supplied policy functions.
// Functions are CEL expressions evaluated against a request context and must
// produce a map result. Expression length and evaluation cost are capped.
package script

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/sentra-id/sentra/internal/system/cache"
	"github.com/sentra-id/sentra/internal/system/config"
	"github.com/sentra-id/sentra/internal/system/log"
)

const (
	// defaultMaxExpressionLength caps the length of a policy function body.
	defaultMaxExpressionLength = 10000
	// defaultCostLimit caps the runtime cost of a single evaluation.
	defaultCostLimit = 1000000

	programCacheName     = "scriptPrograms"
	loggerComponentName  = "ScriptExecutor"
	contextKeyScopes     = "scopes"
	contextKeyUser       = "user"
	contextKeyClient     = "client"
	contextKeyExtensions = "extensions"
)

// ExecutorInterface defines the interface for executing policy functions.
type ExecutorInterface interface {
	// Execute evaluates the named function body against the provided context and
	// returns the resulting map.
	Execute(functionName, functionBody string, context map[string]any) (map[string]any, error)
}

// compiledFunction holds a compiled CEL program ready for evaluation.
type compiledFunction struct {
	program cel.Program
}

// CELExecutor implements the ExecutorInterface using CEL expressions.
// Safe for concurrent use; compiled programs are cached by function name and body hash.
type CELExecutor struct {
	maxExpressionLength int
	costLimit           uint64
	programCache        cache.CacheInterface[*compiledFunction]

	envOnce sync.Once
	env     *cel.Env
	envErr  error
}

// NewCELExecutor creates a new CEL-backed script executor configured from the runtime
// script configuration.
func NewCELExecutor() *CELExecutor {
	scriptConfig := config.GetSentraRuntime().Config.Script

	maxLength := scriptConfig.MaxExpressionLength
	if maxLength <= 0 {
		maxLength = defaultMaxExpressionLength
	}
	costLimit := scriptConfig.CostLimit
	if costLimit == 0 {
		costLimit = defaultCostLimit
	}

	return &CELExecutor{
		maxExpressionLength: maxLength,
		costLimit:           costLimit,
		programCache:        cache.NewCache[*compiledFunction](programCacheName),
	}
}

// getEnv returns the CEL environment, creating it lazily on first access.
func (e *CELExecutor) getEnv() (*cel.Env, error) {
	e.envOnce.Do(func() {
		e.env, e.envErr = cel.NewEnv(
			cel.Variable(contextKeyScopes, cel.ListType(cel.StringType)),
			cel.Variable(contextKeyUser, cel.MapType(cel.StringType, cel.DynType)),
			cel.Variable(contextKeyClient, cel.MapType(cel.StringType, cel.DynType)),
			cel.Variable(contextKeyExtensions, cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return e.env, e.envErr
}

// Execute evaluates the named function body against the provided context.
func (e *CELExecutor) Execute(functionName, functionBody string,
	context map[string]any) (map[string]any, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("function", functionName))

	compiled, err := e.compile(functionName, functionBody)
	if err != nil {
		logger.Error("Failed to compile policy function", log.Error(err))
		return nil, err
	}

	activation := map[string]any{
		contextKeyScopes:     []string{},
		contextKeyUser:       map[string]any{},
		contextKeyClient:     map[string]any{},
		contextKeyExtensions: map[string]any{},
	}
	for key, value := range context {
		activation[key] = value
	}

	out, _, err := compiled.program.Eval(activation)
	if err != nil {
		logger.Error("Failed to evaluate policy function", log.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrFunctionEvaluation, err)
	}

	native, err := out.ConvertToNative(reflect.TypeOf(map[string]any{}))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResult, err)
	}
	result, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidResult, native)
	}
	return result, nil
}

// compile compiles the function body, serving repeated calls from the program cache.
func (e *CELExecutor) compile(functionName, functionBody string) (*compiledFunction, error) {
	if len(functionBody) > e.maxExpressionLength {
		return nil, fmt.Errorf("%w: length %d exceeds maximum of %d",
			ErrFunctionTooLong, len(functionBody), e.maxExpressionLength)
	}

	key := cache.CacheKey{Key: programCacheKey(functionName, functionBody)}
	if cached, ok := e.programCache.Get(key); ok {
		return cached, nil
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFunctionCompile, err)
	}

	ast, issues := env.Compile(functionBody)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %s", ErrFunctionCompile, issues.Err())
	}

	program, err := env.Program(ast, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFunctionCompile, err)
	}

	compiled := &compiledFunction{program: program}
	e.programCache.Set(key, compiled)
	return compiled, nil
}

// programCacheKey builds the cache key for a compiled function.
func programCacheKey(functionName, functionBody string) string {
	bodyHash := sha256.Sum256([]byte(functionBody))
	return functionName + ":" + hex.EncodeToString(bodyHash[:])
}
