// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package modelconfig builds immutable model configuration records from
// strongly-typed parameters and validates them before use.
//
// A build starts from [models.DefaultModelConfig] (or a caller-supplied base
// record), checks that no parameter kind is supplied twice, and then applies
// each parameter to the one field it owns. Because every parameter touches a
// disjoint field, argument order never changes the result:
//
//	cfg, err := modelconfig.Build(models.DevEnabled, models.MaxBatchSize(23))
//
// A malformed call produces no record at all:
//
//	_, err := modelconfig.Build(models.ExceptionsEnabled, models.ExceptionsDisabled)
//	// err matches validators.ErrDuplicateParameterType
//
// [Validate] resolves derived lengths and checks numeric constraints,
// returning a [models.ResolvedModelConfig] only when all of them hold.
//
// All functions are pure and safe for concurrent use.
package modelconfig
