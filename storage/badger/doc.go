// Copyright 2025 Prospekt Labs
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

// Package badger implements the storage interfaces on top of BadgerDB.
//
// Records are stored under a primary key derived from their ID, with two
// secondary indexes: a recency index keyed by insertion timestamp for
// newest-first window fetches, and a source-document index for filtered
// fetches. All index maintenance happens inside the same transaction as
// the primary write.
package badger
