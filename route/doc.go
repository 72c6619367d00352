// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package route defines the route configuration tree shared by the preloader
// and the navigation pipeline.
//
// A Route declares its subtree either statically (Children) or lazily
// (LoadChildren). Lazy subtrees carry a write-once cache of their load result
// (LoadedConfig) so that independent load attempts, such as a preload sweep
// racing an on-demand navigation, converge on a single cached value.
//
// The package also defines the two capabilities the loading machinery needs
// from its host: Injector (create child dependency scopes, instantiate
// modules) and Module (a lazily loaded route table plus its providers). Both
// are narrow interfaces so the host's container stays out of this package.
package route
