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

package config

import "sync"

// SentraRuntime holds the runtime configuration for the Sentra server.
type SentraRuntime struct {
	SentraHome string `yaml:"sentra_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *SentraRuntime
	once          sync.Once
)

// InitializeSentraRuntime initializes the SentraRuntime configuration.
func InitializeSentraRuntime(sentraHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &SentraRuntime{
			SentraHome: sentraHome,
			Config:     *config,
		}
	})

	return nil
}

// GetSentraRuntime returns the SentraRuntime configuration.
func GetSentraRuntime() *SentraRuntime {
	if runtimeConfig == nil {
		panic("SentraRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetSentraRuntime resets the SentraRuntime.
// This should only be used in tests to reset the singleton state.
func ResetSentraRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
