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

package script

import "errors"

// Script execution errors.
var (
	// ErrFunctionTooLong is returned when a function body exceeds the configured length cap.
	ErrFunctionTooLong = errors.New("function body exceeds maximum length")
	// ErrFunctionCompile is returned when a function body fails to parse or type check.
	ErrFunctionCompile = errors.New("failed to compile function")
	// ErrFunctionEvaluation is returned when a compiled function fails during evaluation.
	ErrFunctionEvaluation = errors.New("failed to evaluate function")
	// ErrInvalidResult is returned when a function evaluates to something other than a map.
	ErrInvalidResult = errors.New("function result is not a map")
)
