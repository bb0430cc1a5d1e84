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

package rolematch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RoleMatchTestSuite struct {
	suite.Suite
}

func TestRoleMatchSuite(t *testing.T) {
	suite.Run(t, new(RoleMatchTestSuite))
}

func (suite *RoleMatchTestSuite) TestMatches() {
	tests := []struct {
		name      string
		pattern   string
		authority string
		expected  bool
	}{
		{
			name:      "Exact match",
			pattern:   "myrealm:ROLE_ADMIN",
			authority: "myrealm:ROLE_ADMIN",
			expected:  true,
		},
		{
			name:      "Case insensitive role match",
			pattern:   "myrealm:ROLE_ADMIN",
			authority: "myrealm:role_admin",
			expected:  true,
		},
		{
			name:      "Different context does not match",
			pattern:   "myrealm:ROLE_ADMIN",
			authority: "otherrealm:ROLE_ADMIN",
			expected:  false,
		},
		{
			name:      "Bare role pattern matches role segment only",
			pattern:   "ROLE_ADMIN",
			authority: "anyrealm:role_admin",
			expected:  true,
		},
		{
			name:      "Bare role pattern does not match context segment",
			pattern:   "anyrealm",
			authority: "anyrealm:ROLE_ADMIN",
			expected:  false,
		},
		{
			name:      "Star context matches any context",
			pattern:   "*:ROLE_ADMIN",
			authority: "tenant-42:ROLE_ADMIN",
			expected:  true,
		},
		{
			name:      "Star context matches empty context",
			pattern:   "*:ROLE_ADMIN",
			authority: ":ROLE_ADMIN",
			expected:  true,
		},
		{
			name:      "Star with prefix",
			pattern:   "tenant-*:ROLE_USER",
			authority: "tenant-42:ROLE_USER",
			expected:  true,
		},
		{
			name:      "Star with prefix mismatch",
			pattern:   "tenant-*:ROLE_USER",
			authority: "realm-42:ROLE_USER",
			expected:  false,
		},
		{
			name:      "Star with suffix",
			pattern:   "*-prod:ROLE_DEPLOY",
			authority: "tenant-prod:ROLE_DEPLOY",
			expected:  true,
		},
		{
			name:      "Question mark matches single character",
			pattern:   "tenant-?:ROLE_USER",
			authority: "tenant-7:ROLE_USER",
			expected:  true,
		},
		{
			name:      "Question mark does not match two characters",
			pattern:   "tenant-?:ROLE_USER",
			authority: "tenant-42:ROLE_USER",
			expected:  false,
		},
		{
			name:      "Context comparison is case insensitive",
			pattern:   "MyRealm:ROLE_ADMIN",
			authority: "myrealm:role_admin",
			expected:  true,
		},
		{
			name:      "Authority without separator never matches",
			pattern:   "ROLE_ADMIN",
			authority: "ROLE_ADMIN",
			expected:  false,
		},
		{
			name:      "Role segment mismatch",
			pattern:   "*:ROLE_ADMIN",
			authority: "tenant-42:ROLE_USER",
			expected:  false,
		},
		{
			name:      "Multiple stars",
			pattern:   "t*-*d:ROLE_OPS",
			authority: "tenant-prod:ROLE_OPS",
			expected:  true,
		},
		{
			name:      "Context shorter than prefix",
			pattern:   "tenant-*:ROLE_USER",
			authority: "ten:ROLE_USER",
			expected:  false,
		},
		{
			name:      "Oversized authority never matches",
			pattern:   "*:ROLE_ADMIN",
			authority: strings.Repeat("a", 300) + ":ROLE_ADMIN",
			expected:  false,
		},
		{
			name:      "Oversized pattern never matches",
			pattern:   strings.Repeat("a", 300) + ":ROLE_ADMIN",
			authority: "myrealm:ROLE_ADMIN",
			expected:  false,
		},
	}

	for _, tc := range tests {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Matches(tc.pattern, tc.authority))
		})
	}
}

func (suite *RoleMatchTestSuite) TestMatchesAny() {
	patterns := []string{"myrealm:ROLE_ADMIN", "*:ROLE_AUDITOR"}

	assert.True(suite.T(), MatchesAny(patterns, []string{"myrealm:role_admin"}))
	assert.True(suite.T(), MatchesAny(patterns, []string{"anywhere:ROLE_AUDITOR"}))
	assert.False(suite.T(), MatchesAny(patterns, []string{"otherrealm:ROLE_ADMIN"}))
	assert.False(suite.T(), MatchesAny(patterns, nil))
	assert.False(suite.T(), MatchesAny(nil, []string{"myrealm:ROLE_ADMIN"}))
}

func (suite *RoleMatchTestSuite) TestMatchesAll() {
	patterns := []string{"myrealm:ROLE_ADMIN", "myrealm:ROLE_AUDITOR"}

	assert.True(suite.T(), MatchesAll(patterns,
		[]string{"myrealm:ROLE_ADMIN", "myrealm:ROLE_AUDITOR"}))
	assert.False(suite.T(), MatchesAll(patterns, []string{"myrealm:ROLE_ADMIN"}))
	assert.False(suite.T(), MatchesAll(nil, []string{"myrealm:ROLE_ADMIN"}))
}

func (suite *RoleMatchTestSuite) TestDeepBacktrackingIsBounded() {
	// A pattern of many stars against a long context stays within the depth cap
	// and simply reports no match instead of blowing the stack.
	pattern := strings.Repeat("*a", 40) + ":ROLE_X"
	authority := strings.Repeat("b", 200) + ":ROLE_X"
	assert.False(suite.T(), Matches(pattern, authority))
}
