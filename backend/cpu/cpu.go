// Copyright 2025 The Depth Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU math backend, backed by gonum.
package cpu

import (
	"github.com/aspisov/depth/internal/backend/cpu"
)

// CPUBackend implements tensor.Backend on the CPU.
type CPUBackend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *CPUBackend {
	return cpu.New()
}
