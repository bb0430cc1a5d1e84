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

// Package rolematch implements matching of role authority strings of the form
// "context:role" against configured role patterns. The role segment is compared
// case-insensitively; the context segment of a pattern may contain '?' (any
// single character) and '*' (any sequence) glob wildcards.
//
// Authority strings may originate from federated identity providers, so both
// input length and star backtracking are capped; inputs over the limits never
// match.
package rolematch

import "strings"

const (
	// maxInputLength caps the length of authorities and patterns.
	maxInputLength = 256
	// maxStarDepth caps the backtracking depth of the '*' glob match.
	maxStarDepth = 32
)

// Matches checks a single authority against a single pattern.
// An authority without a ':' separator is invalid and never matches.
func Matches(pattern, authority string) bool {
	if len(pattern) > maxInputLength || len(authority) > maxInputLength {
		return false
	}

	separator := strings.Index(authority, ":")
	if separator < 0 {
		return false
	}
	context := authority[:separator]
	role := authority[separator+1:]

	patternSeparator := strings.Index(pattern, ":")
	if patternSeparator < 0 {
		// Bare role-name pattern: match the role segment only.
		return strings.EqualFold(role, pattern)
	}
	contextPattern := pattern[:patternSeparator]
	rolePattern := pattern[patternSeparator+1:]

	if !strings.EqualFold(role, rolePattern) {
		return false
	}
	return globMatch(contextPattern, context, 0)
}

// MatchesAny checks whether any subject authority satisfies any configured pattern.
func MatchesAny(patterns, authorities []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(pattern, authorities) {
			return true
		}
	}
	return false
}

// MatchesAll checks whether every configured pattern is satisfied by at least one
// subject authority.
func MatchesAll(patterns, authorities []string) bool {
	if len(patterns) == 0 {
		return false
	}
	for _, pattern := range patterns {
		if !matchesPattern(pattern, authorities) {
			return false
		}
	}
	return true
}

// matchesPattern checks a single pattern against all authorities.
func matchesPattern(pattern string, authorities []string) bool {
	for _, authority := range authorities {
		if Matches(pattern, authority) {
			return true
		}
	}
	return false
}

// globMatch matches a context pattern against a subject context. The pattern is
// split at the first '*': the prefix must match character-by-character (with '?'
// as any single character, case-insensitive); the remainder is then tried against
// every suffix of the subject. Without a '*', the lengths must match exactly.
func globMatch(pattern, subject string, depth int) bool {
	if depth > maxStarDepth {
		return false
	}

	star := strings.IndexByte(pattern, '*')
	if star < 0 {
		if len(pattern) != len(subject) {
			return false
		}
		return matchChars(pattern, subject)
	}

	if len(subject) < star {
		return false
	}
	if !matchChars(pattern[:star], subject[:star]) {
		return false
	}

	remainder := pattern[star+1:]
	for i := star; i <= len(subject); i++ {
		if globMatch(remainder, subject[i:], depth+1) {
			return true
		}
	}
	return false
}

// matchChars compares two equal-length strings character-by-character,
// case-insensitively, treating '?' in the pattern as any single character.
func matchChars(pattern, subject string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '?' {
			continue
		}
		if lowerByte(pattern[i]) != lowerByte(subject[i]) {
			return false
		}
	}
	return true
}

// lowerByte lowercases a single ASCII byte.
func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
